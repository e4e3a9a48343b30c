package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kimhsiao/notedesk/internal/autosave"
	"github.com/kimhsiao/notedesk/internal/logging"
	"github.com/kimhsiao/notedesk/internal/models"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless session with periodic autosave",
	Long: `Run loads the most recently modified note as the current note and
autosaves it at the configured interval until interrupted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, store, err := setup()
		if err != nil {
			fatal("initialize", err)
		}
		defer store.Close()

		// The current note stands in for the note the GUI would have open.
		var current models.Note
		notes, err := store.GetAll()
		if err != nil {
			fatal("load notes", err)
		}
		if len(notes) > 0 {
			current = notes[0]
			fmt.Printf("Current note: %s\n", current)
		} else {
			fmt.Println("No notes yet; autosave will idle until one is created")
		}

		saver := autosave.New(cfg.Autosave.Interval, cfg.Autosave.StopGrace, func() error {
			if current == nil {
				return nil
			}
			return store.Update(current)
		})
		saver.Start()

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		<-ctx.Done()

		if !saver.Stop() {
			logging.Warn("shutting down with autosave still in flight")
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
