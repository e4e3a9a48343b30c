package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kimhsiao/notedesk/internal/config"
	"github.com/kimhsiao/notedesk/internal/db"
	"github.com/kimhsiao/notedesk/internal/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notedesk",
	Short: "A local note-taking app backed by embedded SQLite",
	Long: `NoteDesk keeps text and drawing notes in a single local SQLite file.
Notes are created, listed and edited through subcommands; run starts a
headless session that autosaves the current note periodically.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup parses configuration, initializes logging and opens the store with
// the schema migrated. The caller owns the returned store and must close it.
func setup() (config.Config, *db.Store, error) {
	cfg, err := config.Parse()
	if err != nil {
		return config.Config{}, nil, err
	}

	if err := logging.Init(os.Stderr, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
		return config.Config{}, nil, err
	}

	database, err := db.Open(cfg.Store.DataDir)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return config.Config{}, nil, err
	}

	return cfg, db.NewStore(database), nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}
