package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var promptDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeletePrompt(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete prompt: %w", err)
		}
		fmt.Printf("Deleted prompt: %s\n", args[0])
		return nil
	},
}
