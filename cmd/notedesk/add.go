package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kimhsiao/notedesk/internal/models"
)

var (
	addTitle   string
	addContent string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new text note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, store, err := setup()
		if err != nil {
			fatal("initialize", err)
		}
		defer store.Close()

		note := models.NewTextNote(addTitle, addContent)
		if err := store.Save(note); err != nil {
			fatal("save note", err)
		}

		fmt.Printf("Created %s\n", note)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Note content")
	addCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(addCmd)
}
