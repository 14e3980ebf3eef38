package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

func TestCategoryCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddCategory(ctx, "writing")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	id2, err := s.AddCategory(ctx, "coding")
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)

	// Rename replaces the record; the id stays fixed.
	require.NoError(t, s.UpdateCategory(ctx, id, "prose"))
	cat, found, err := s.CategoryByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, types.Category{ID: id, Name: "prose"}, cat)

	// Insertion order is preserved by the listing.
	cats, err := s.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, id, cats[0].ID)
	assert.Equal(t, id2, cats[1].ID)

	require.NoError(t, s.DeleteCategory(ctx, id))
	require.NoError(t, s.DeleteCategory(ctx, id), "delete is idempotent")

	_, found, err = s.CategoryByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCategoryValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddCategory(ctx, "")
	assert.ErrorIs(t, err, types.ErrInvalidName)

	err = s.UpdateCategory(ctx, "some-id", "")
	assert.ErrorIs(t, err, types.ErrInvalidName)

	err = s.UpdateCategory(ctx, "", "name")
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestLLMCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddLLM(ctx, "Claude", "https://claude.ai")
	require.NoError(t, err)

	require.NoError(t, s.UpdateLLM(ctx, id, "Claude 3", "https://claude.ai/new"))
	llm, found, err := s.LLMByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, types.LLM{ID: id, Name: "Claude 3", URL: "https://claude.ai/new"}, llm)

	llms, err := s.LLMs(ctx)
	require.NoError(t, err)
	require.Len(t, llms, 1)

	require.NoError(t, s.DeleteLLM(ctx, id))
	require.NoError(t, s.DeleteLLM(ctx, id))

	llms, err = s.LLMs(ctx)
	require.NoError(t, err)
	assert.Empty(t, llms)
}

func TestLLMValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddLLM(context.Background(), "", "https://x")
	assert.ErrorIs(t, err, types.ErrInvalidName)
}
