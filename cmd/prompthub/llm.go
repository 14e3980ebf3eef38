// LLM commands manage the catalog of target models.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Manage target LLMs",
}

func init() {
	llmCmd.AddCommand(llmAddCmd)
	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmUpdateCmd)
	llmCmd.AddCommand(llmDeleteCmd)
}

var (
	llmAddURL    string
	llmUpdateURL string
)

var llmAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a target LLM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.AddLLM(cmd.Context(), args[0], llmAddURL)
		if err != nil {
			return fmt.Errorf("add llm: %w", err)
		}
		if flagJSON {
			return printJSON(types.LLM{ID: id, Name: args[0], URL: llmAddURL})
		}
		fmt.Printf("Added LLM: %s (%s)\n", args[0], id)
		return nil
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List target LLMs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		llms, err := store.LLMs(cmd.Context())
		if err != nil {
			return fmt.Errorf("list llms: %w", err)
		}
		if flagJSON {
			return printJSON(llms)
		}
		if len(llms) == 0 {
			fmt.Println("No LLMs found.")
			return nil
		}
		for _, l := range llms {
			if l.URL != "" {
				fmt.Printf("%s  %s  %s\n", l.ID, l.Name, l.URL)
				continue
			}
			fmt.Printf("%s  %s\n", l.ID, l.Name)
		}
		return nil
	},
}

var llmUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Update a target LLM",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.UpdateLLM(cmd.Context(), args[0], args[1], llmUpdateURL); err != nil {
			return fmt.Errorf("update llm: %w", err)
		}
		fmt.Printf("Updated LLM: %s\n", args[0])
		return nil
	},
}

var llmDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a target LLM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteLLM(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete llm: %w", err)
		}
		fmt.Printf("Deleted LLM: %s\n", args[0])
		return nil
	},
}

func init() {
	llmAddCmd.Flags().StringVar(&llmAddURL, "url", "", "model or vendor URL")
	llmUpdateCmd.Flags().StringVar(&llmUpdateURL, "url", "", "model or vendor URL")
}
