package sqlite

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

func addPrompt(t *testing.T, s *Store, p types.Prompt) string {
	t.Helper()
	id, err := s.AddPrompt(context.Background(), p)
	require.NoError(t, err)
	return id
}

func TestAddPrompt(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "add assigns id and zero usage count",
			check: func(t *testing.T, s *Store) {
				ctx := context.Background()
				id, err := s.AddPrompt(ctx, types.Prompt{
					Title:    "Greeting",
					Content:  "Hello {name}",
					Category: "cat-1",
					LLM:      types.GenericLLM,
					Active:   types.PromptActive,
				})
				require.NoError(t, err)
				assert.NotEmpty(t, id)

				got, found, err := s.PromptByID(ctx, id)
				require.NoError(t, err)
				require.True(t, found)
				assert.Equal(t, id, got.ID)
				assert.Equal(t, "Greeting", got.Title)
				assert.Equal(t, "Hello {name}", got.Content)
				assert.Equal(t, 0, got.UsageCount)
			},
		},
		{
			name: "add forces usage count to zero",
			check: func(t *testing.T, s *Store) {
				ctx := context.Background()
				id, err := s.AddPrompt(ctx, types.Prompt{
					Title: "Counted", Content: "x", Active: types.PromptActive, UsageCount: 42,
				})
				require.NoError(t, err)

				got, _, err := s.PromptByID(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, 0, got.UsageCount)
			},
		},
		{
			name: "empty active and llm are defaulted",
			check: func(t *testing.T, s *Store) {
				ctx := context.Background()
				id, err := s.AddPrompt(ctx, types.Prompt{Title: "Bare", Content: "x"})
				require.NoError(t, err)

				got, _, err := s.PromptByID(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, types.PromptActive, got.Active)
				assert.Equal(t, types.GenericLLM, got.LLM)
			},
		},
		{
			name: "invalid record rejected",
			check: func(t *testing.T, s *Store) {
				_, err := s.AddPrompt(context.Background(), types.Prompt{Title: "no content"})
				assert.ErrorIs(t, err, types.ErrInvalidData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, newTestStore(t))
		})
	}
}

func TestUpdatePrompt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := addPrompt(t, s, types.Prompt{Title: "Old", Content: "old", Active: types.PromptActive})
	_, err := s.IncrementUsageCount(ctx, id)
	require.NoError(t, err)

	stored, _, err := s.PromptByID(ctx, id)
	require.NoError(t, err)

	// Edit title/content, passing the stored usage count through.
	stored.Title = "New"
	stored.Content = "new {arg}"
	stored.ID = "attacker-chosen" // ignored; the id is re-affixed
	require.NoError(t, s.UpdatePrompt(ctx, id, stored))

	got, found, err := s.PromptByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, 1, got.UsageCount, "usage count preserved across edit")

	_, found, err = s.PromptByID(ctx, "attacker-chosen")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeletePromptIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := addPrompt(t, s, types.Prompt{Title: "Gone", Content: "x", Active: types.PromptActive})
	require.NoError(t, s.DeletePrompt(ctx, id))
	require.NoError(t, s.DeletePrompt(ctx, id))
	require.NoError(t, s.DeletePrompt(ctx, "never-existed"))

	_, found, err := s.PromptByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIncrementUsageCount(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		t.Run("n="+strconv.Itoa(n), func(t *testing.T) {
			s := newTestStore(t)
			ctx := context.Background()
			id := addPrompt(t, s, types.Prompt{Title: "Counted", Content: "x", Active: types.PromptActive})

			for i := 0; i < n; i++ {
				found, err := s.IncrementUsageCount(ctx, id)
				require.NoError(t, err)
				require.True(t, found)
			}

			got, _, err := s.PromptByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, n, got.UsageCount)
		})
	}

	t.Run("missing prompt is a soft miss", func(t *testing.T) {
		s := newTestStore(t)
		found, err := s.IncrementUsageCount(context.Background(), "missing")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestPromptFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	catA, err := s.AddCategory(ctx, "writing")
	require.NoError(t, err)
	catB, err := s.AddCategory(ctx, "coding")
	require.NoError(t, err)
	llmID, err := s.AddLLM(ctx, "Claude", "https://claude.ai")
	require.NoError(t, err)

	p1 := addPrompt(t, s, types.Prompt{Title: "A", Content: "x", Category: catA, LLM: llmID, Active: types.PromptActive})
	p2 := addPrompt(t, s, types.Prompt{Title: "B", Content: "x", Category: catB, LLM: types.GenericLLM, Active: types.PromptActive})
	p3 := addPrompt(t, s, types.Prompt{Title: "C", Content: "x", Category: catA, LLM: types.GenericLLM, Active: types.PromptInactive})

	t.Run("All matches getAll filtered to active", func(t *testing.T) {
		byCat, err := s.PromptsByCategory(ctx, types.FilterAll)
		require.NoError(t, err)
		assert.Equal(t, []string{p1, p2}, promptIDs(byCat))

		all, err := s.Prompts(ctx)
		require.NoError(t, err)
		var activeIDs []string
		for _, p := range all {
			if p.IsActive() {
				activeIDs = append(activeIDs, p.ID)
			}
		}
		assert.Equal(t, activeIDs, promptIDs(byCat))
	})

	t.Run("category filter excludes inactive", func(t *testing.T) {
		got, err := s.PromptsByCategory(ctx, catA)
		require.NoError(t, err)
		assert.Equal(t, []string{p1}, promptIDs(got), "inactive prompt %s excluded", p3)
	})

	t.Run("generic llm filter matches exactly the generic prompts", func(t *testing.T) {
		got, err := s.PromptsByLLM(ctx, types.GenericLLM)
		require.NoError(t, err)
		assert.Equal(t, []string{p2}, promptIDs(got))
	})

	t.Run("specific llm filter", func(t *testing.T) {
		got, err := s.PromptsByLLM(ctx, llmID)
		require.NoError(t, err)
		assert.Equal(t, []string{p1}, promptIDs(got))
	})

	t.Run("unfiltered view includes inactive", func(t *testing.T) {
		all, err := s.Prompts(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{p1, p2, p3}, promptIDs(all))
	})
}

func TestSearchPrompts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p1 := addPrompt(t, s, types.Prompt{Title: "Code review", Content: "Review {file} carefully", Active: types.PromptActive})
	p2 := addPrompt(t, s, types.Prompt{Title: "Greeting", Content: "Hello {name}", Active: types.PromptActive})
	p3 := addPrompt(t, s, types.Prompt{Title: "Drafty review", Content: "x", Active: types.PromptInactive})

	// p2 used twice so it outranks p1 in the unfiltered view.
	for i := 0; i < 2; i++ {
		found, err := s.IncrementUsageCount(ctx, p2)
		require.NoError(t, err)
		require.True(t, found)
	}

	t.Run("keyword matches title", func(t *testing.T) {
		got, err := s.SearchPrompts(ctx, "review")
		require.NoError(t, err)
		assert.Equal(t, []string{p1}, promptIDs(got), "inactive prompt %s excluded", p3)
	})

	t.Run("keyword matches content", func(t *testing.T) {
		got, err := s.SearchPrompts(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, []string{p2}, promptIDs(got))
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		got, err := s.SearchPrompts(ctx, "REVIEW")
		require.NoError(t, err)
		assert.Equal(t, []string{p1}, promptIDs(got))
	})

	t.Run("empty keyword ranks all active prompts by use", func(t *testing.T) {
		got, err := s.SearchPrompts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{p2, p1}, promptIDs(got))
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		got, err := s.SearchPrompts(ctx, "nonexistent")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDanglingCategoryReference(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	catID, err := s.AddCategory(ctx, "ephemeral")
	require.NoError(t, err)
	promptID := addPrompt(t, s, types.Prompt{Title: "Ref", Content: "x", Category: catID, Active: types.PromptActive})

	// Deleting the category neither deletes nor blocks the prompt.
	require.NoError(t, s.DeleteCategory(ctx, catID))

	got, found, err := s.PromptByID(ctx, promptID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, catID, got.Category, "prompt keeps the dangling reference")

	// The lookup for the missing category degrades to a soft miss.
	_, found, err = s.CategoryByID(ctx, catID)
	require.NoError(t, err)
	assert.False(t, found)
}

func promptIDs(prompts []types.Prompt) []string {
	var ids []string
	for _, p := range prompts {
		ids = append(ids, p.ID)
	}
	return ids
}
