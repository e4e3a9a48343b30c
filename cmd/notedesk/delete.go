package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note permanently",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fatal("delete note", err)
		}

		_, store, err := setup()
		if err != nil {
			fatal("initialize", err)
		}
		defer store.Close()

		if err := store.Delete(id); err != nil {
			fatal("delete note", err)
		}

		fmt.Printf("Note deleted: %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
