package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fatal("show note", err)
		}

		_, store, err := setup()
		if err != nil {
			fatal("initialize", err)
		}
		defer store.Close()

		note, err := store.GetByID(id)
		if err != nil {
			fatal("show note", err)
		}

		meta := note.Meta()
		fmt.Println(note)
		fmt.Printf("  created:  %s\n", meta.CreatedTime().Format(time.RFC3339))
		fmt.Printf("  modified: %s\n", meta.ModifiedTime().Format(time.RFC3339))
		fmt.Printf("  content:  %s\n", note.Content())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
