// Shared helpers for prompthub CLI commands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

// Display fallbacks for dangling references. The data layer stores the raw
// IDs; the labels are computed here, at the presentation boundary.
const (
	labelUnknown = "Unknown"
	labelGeneric = "Generic"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// categoryLabel resolves a category ID to its display name, degrading to
// "Unknown" for a dangling reference.
func categoryLabel(ctx context.Context, id string) string {
	cat, found, err := store.CategoryByID(ctx, id)
	if err != nil || !found {
		return labelUnknown
	}
	return cat.Name
}

// llmLabel resolves a prompt's LLM field to its display name: "Generic" for
// the sentinel, "Unknown" for a dangling ID.
func llmLabel(ctx context.Context, id string) string {
	if id == types.GenericLLM || id == "" {
		return labelGeneric
	}
	llm, found, err := store.LLMByID(ctx, id)
	if err != nil || !found {
		return labelUnknown
	}
	return llm.Name
}

// parseSetValues turns repeated --set name=value flags into a value map.
func parseSetValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set value %q, want name=value", pair)
		}
		values[name] = value
	}
	return values, nil
}

// printPromptLine writes the one-line listing format for a prompt.
func printPromptLine(ctx context.Context, p types.Prompt) {
	fmt.Printf("%s  %-24s  category=%s  llm=%s  used=%d\n",
		p.ID, p.Title, categoryLabel(ctx, p.Category), llmLabel(ctx, p.LLM), p.UsageCount)
}
