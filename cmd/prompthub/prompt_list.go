// Prompt list command shows library listings with optional filters.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

var (
	promptListCategory string
	promptListLLM      string
	promptListSearch   string
	promptListAll      bool
)

var promptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts",
	Long: `List shows the prompt library, most-used prompts first. By default only
active prompts appear; --all includes inactive ones, unfiltered and in
insertion order. The --category and --llm filters take record ids; the
value "All" means no filter, and --llm also accepts the literal
"generic". --search keeps only prompts whose title or content contains
the keyword.`,
	RunE: runPromptList,
}

func init() {
	promptListCmd.Flags().StringVar(&promptListCategory, "category", types.FilterAll, "filter by category id")
	promptListCmd.Flags().StringVar(&promptListLLM, "llm", types.FilterAll, "filter by LLM id or \"generic\"")
	promptListCmd.Flags().StringVar(&promptListSearch, "search", "", "filter by keyword in title or content")
	promptListCmd.Flags().BoolVar(&promptListAll, "all", false, "include inactive prompts, unfiltered")
}

func runPromptList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var prompts []types.Prompt
	var err error
	switch {
	case promptListAll:
		prompts, err = store.Prompts(ctx)
	case promptListSearch != "":
		prompts, err = store.SearchPrompts(ctx, promptListSearch)
	case promptListLLM != types.FilterAll:
		prompts, err = store.PromptsByLLM(ctx, promptListLLM)
	default:
		prompts, err = store.PromptsByCategory(ctx, promptListCategory)
	}
	if err != nil {
		return fmt.Errorf("list prompts: %w", err)
	}

	// Whatever query produced the base set, the remaining flags narrow it.
	if !promptListAll {
		if promptListSearch != "" && promptListLLM != types.FilterAll {
			prompts = keepPrompts(prompts, func(p types.Prompt) bool { return p.LLM == promptListLLM })
		}
		if promptListCategory != types.FilterAll && (promptListSearch != "" || promptListLLM != types.FilterAll) {
			prompts = keepPrompts(prompts, func(p types.Prompt) bool { return p.Category == promptListCategory })
		}
		// Library view ranks by use; ties keep the query's insertion order.
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].UsageCount > prompts[j].UsageCount
		})
	}

	if flagJSON {
		return printJSON(prompts)
	}
	if len(prompts) == 0 {
		fmt.Println("No prompts found")
		return nil
	}
	for _, p := range prompts {
		printPromptLine(ctx, p)
	}
	return nil
}

func keepPrompts(prompts []types.Prompt, keep func(types.Prompt) bool) []types.Prompt {
	filtered := prompts[:0]
	for _, p := range prompts {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
