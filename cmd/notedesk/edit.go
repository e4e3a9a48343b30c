package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update a note's title or content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fatal("edit note", err)
		}

		_, store, err := setup()
		if err != nil {
			fatal("initialize", err)
		}
		defer store.Close()

		note, err := store.GetByID(id)
		if err != nil {
			fatal("edit note", err)
		}

		if cmd.Flags().Changed("title") {
			note.Meta().SetTitle(editTitle)
		}
		if cmd.Flags().Changed("content") {
			// Drawing notes reject text content; surface that to the user.
			if err := note.SetContent(editContent); err != nil {
				fatal("edit note", err)
			}
		}

		if err := store.Update(note); err != nil {
			fatal("edit note", err)
		}

		fmt.Printf("Updated %s\n", note)
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	rootCmd.AddCommand(editCmd)
}
