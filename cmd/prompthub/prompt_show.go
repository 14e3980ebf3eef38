// Prompt show command displays one prompt record and its placeholders.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prompthub/pkg/template"
)

var promptShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a prompt and its placeholders",
	Args:  cobra.ExactArgs(1),
	RunE:  runPromptShow,
}

func runPromptShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, found, err := store.PromptByID(ctx, args[0])
	if err != nil {
		return fmt.Errorf("get prompt: %w", err)
	}
	if !found {
		return fmt.Errorf("prompt %s not found", args[0])
	}

	if flagJSON {
		return printJSON(p)
	}

	fmt.Printf("ID:        %s\n", p.ID)
	fmt.Printf("Title:     %s\n", p.Title)
	fmt.Printf("Category:  %s\n", categoryLabel(ctx, p.Category))
	fmt.Printf("LLM:       %s\n", llmLabel(ctx, p.LLM))
	fmt.Printf("Status:    %s\n", p.Active)
	fmt.Printf("Used:      %d times\n", p.UsageCount)
	if names := template.Names(p.Content); len(names) > 0 {
		fmt.Printf("Arguments: %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("\n%s\n", p.Content)
	return nil
}
