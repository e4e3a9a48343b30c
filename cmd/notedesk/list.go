package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, most recently modified first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, store, err := setup()
		if err != nil {
			fatal("initialize", err)
		}
		defer store.Close()

		notes, err := store.GetAll()
		if err != nil {
			fatal("list notes", err)
		}

		for _, note := range notes {
			fmt.Printf("%s | %s\n", note, note.Content())
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
