// Prompt copy resolves a prompt's placeholders and records one use.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prompthub/internal/log"
	"github.com/mesh-intelligence/prompthub/pkg/template"
)

var promptCopySet []string

var promptCopyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Resolve a prompt's placeholders and print the result",
	Long: `Copy fills the {name} placeholders in a prompt's content with the values
given via --set and prints the resolved text. Placeholders without a value
resolve to the empty string. Each successful copy increments the prompt's
usage count.

Example:
  prompthub prompt copy <id> --set name=Ana --set day=Friday`,
	Args: cobra.ExactArgs(1),
	RunE: runPromptCopy,
}

func init() {
	promptCopyCmd.Flags().StringArrayVar(&promptCopySet, "set", nil, "placeholder value as name=value (repeatable)")
}

func runPromptCopy(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	p, found, err := store.PromptByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get prompt: %w", err)
	}
	if !found {
		return fmt.Errorf("prompt %s not found", id)
	}

	values, err := parseSetValues(promptCopySet)
	if err != nil {
		return err
	}

	resolved := template.Resolve(p.Content, values)
	fmt.Println(resolved)

	// Count the use only after the text has been produced.
	if _, err := store.IncrementUsageCount(ctx, id); err != nil {
		log.L().Warn("usage count not updated", slog.String("id", id), slog.Any("error", err))
	}
	return nil
}
