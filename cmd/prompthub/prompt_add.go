// Prompt add command creates a new prompt template.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

var (
	promptAddTitle    string
	promptAddContent  string
	promptAddCategory string
	promptAddLLM      string
	promptAddInactive bool
)

var promptAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new prompt",
	Long: `Add creates a new prompt template. Content may contain {name} placeholders
that are filled in by "prompt copy".

Example:
  prompthub prompt add --title "Code review" --content "Review this {language} code: {code}"
  prompthub prompt add --title "Greeting" --content "Hi {name}" --category <category-id> --llm <llm-id>`,
	RunE: runPromptAdd,
}

func init() {
	promptAddCmd.Flags().StringVar(&promptAddTitle, "title", "", "prompt title (required)")
	promptAddCmd.Flags().StringVar(&promptAddContent, "content", "", "prompt content (required)")
	promptAddCmd.Flags().StringVar(&promptAddCategory, "category", "", "category id")
	promptAddCmd.Flags().StringVar(&promptAddLLM, "llm", "", "target LLM id (default: generic)")
	promptAddCmd.Flags().BoolVar(&promptAddInactive, "inactive", false, "create the prompt as inactive")
	_ = promptAddCmd.MarkFlagRequired("title")
	_ = promptAddCmd.MarkFlagRequired("content")
}

func runPromptAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	active := types.PromptActive
	if promptAddInactive {
		active = types.PromptInactive
	}

	id, err := store.AddPrompt(ctx, types.Prompt{
		Title:    promptAddTitle,
		Content:  promptAddContent,
		Category: promptAddCategory,
		LLM:      promptAddLLM,
		Active:   active,
	})
	if err != nil {
		return fmt.Errorf("create prompt: %w", err)
	}

	if flagJSON {
		p, _, err := store.PromptByID(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(p)
	}
	fmt.Printf("Created prompt: %s\n", id)
	return nil
}
