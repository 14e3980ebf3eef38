// Prompt update command edits an existing prompt.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	promptUpdateTitle    string
	promptUpdateContent  string
	promptUpdateCategory string
	promptUpdateLLM      string
	promptUpdateActive   string
)

var promptUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a prompt",
	Long: `Update replaces fields of an existing prompt. Only the flags given change;
the usage count is always preserved across an edit.

Example:
  prompthub prompt update <id> --title "Better title"
  prompthub prompt update <id> --active Inactive`,
	Args: cobra.ExactArgs(1),
	RunE: runPromptUpdate,
}

func init() {
	promptUpdateCmd.Flags().StringVar(&promptUpdateTitle, "title", "", "new title")
	promptUpdateCmd.Flags().StringVar(&promptUpdateContent, "content", "", "new content")
	promptUpdateCmd.Flags().StringVar(&promptUpdateCategory, "category", "", "new category id")
	promptUpdateCmd.Flags().StringVar(&promptUpdateLLM, "llm", "", "new target LLM id or \"generic\"")
	promptUpdateCmd.Flags().StringVar(&promptUpdateActive, "active", "", "Active or Inactive")
}

func runPromptUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	p, found, err := store.PromptByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get prompt: %w", err)
	}
	if !found {
		return fmt.Errorf("prompt %s not found", id)
	}

	// Overlay the changed flags on the stored record; everything else,
	// usage count included, passes through unchanged.
	flags := cmd.Flags()
	if flags.Changed("title") {
		p.Title = promptUpdateTitle
	}
	if flags.Changed("content") {
		p.Content = promptUpdateContent
	}
	if flags.Changed("category") {
		p.Category = promptUpdateCategory
	}
	if flags.Changed("llm") {
		p.LLM = promptUpdateLLM
	}
	if flags.Changed("active") {
		p.Active = promptUpdateActive
	}

	if err := store.UpdatePrompt(ctx, id, p); err != nil {
		return fmt.Errorf("update prompt: %w", err)
	}

	if flagJSON {
		updated, _, err := store.PromptByID(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(updated)
	}
	fmt.Printf("Updated prompt: %s\n", id)
	return nil
}
