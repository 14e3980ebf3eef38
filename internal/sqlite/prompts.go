package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

const promptColumns = `id, title, content, category, llm, active, usage_count`

// AddPrompt stores a new prompt under a fresh ID and returns the ID. The
// usage count always starts at 0 regardless of the caller's record; an empty
// active field defaults to Active and an empty LLM field to the generic
// sentinel.
func (s *Store) AddPrompt(ctx context.Context, p types.Prompt) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	p.ID = newID()
	p.UsageCount = 0
	if p.Active == "" {
		p.Active = types.PromptActive
	}
	if p.LLM == "" {
		p.LLM = types.GenericLLM
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO prompts (id, title, content, category, llm, active, usage_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Content, p.Category, p.LLM, p.Active, p.UsageCount); err != nil {
		return "", fmt.Errorf("inserting prompt: %w", err)
	}
	return p.ID, nil
}

// UpdatePrompt replaces the prompt stored at id with the caller's record.
// The ID is re-affixed regardless of what the record carries; every other
// field, usage count included, comes from the caller. A caller editing
// title or content preserves the count by passing the stored value through.
func (s *Store) UpdatePrompt(ctx context.Context, id string, p types.Prompt) error {
	if id == "" {
		return types.ErrInvalidData
	}
	if err := p.Validate(); err != nil {
		return err
	}
	p.ID = id
	if p.Active == "" {
		p.Active = types.PromptActive
	}
	if p.LLM == "" {
		p.LLM = types.GenericLLM
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO prompts (id, title, content, category, llm, active, usage_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			category = excluded.category,
			llm = excluded.llm,
			active = excluded.active,
			usage_count = excluded.usage_count`,
		p.ID, p.Title, p.Content, p.Category, p.LLM, p.Active, p.UsageCount); err != nil {
		return fmt.Errorf("updating prompt: %w", err)
	}
	return nil
}

// DeletePrompt removes the prompt. Deleting an absent ID is a no-op.
func (s *Store) DeletePrompt(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM prompts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting prompt: %w", err)
	}
	return nil
}

// Prompts returns every prompt, inactive ones included, in insertion order.
// This is the unfiltered view used by record management and by export.
func (s *Store) Prompts(ctx context.Context) ([]types.Prompt, error) {
	return s.queryPrompts(ctx,
		`SELECT `+promptColumns+` FROM prompts ORDER BY rowid`)
}

// PromptByID looks up one prompt; the bool reports whether it exists.
func (s *Store) PromptByID(ctx context.Context, id string) (types.Prompt, bool, error) {
	var p types.Prompt
	err := s.db.QueryRowContext(ctx,
		`SELECT `+promptColumns+` FROM prompts WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.LLM, &p.Active, &p.UsageCount)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Prompt{}, false, nil
	}
	if err != nil {
		return types.Prompt{}, false, fmt.Errorf("scanning prompt: %w", err)
	}
	return p, true, nil
}

// PromptsByCategory returns the active prompts in the given category, or all
// active prompts when categoryID is the FilterAll sentinel. Inactive prompts
// never appear in listings regardless of caller.
func (s *Store) PromptsByCategory(ctx context.Context, categoryID string) ([]types.Prompt, error) {
	if categoryID == types.FilterAll {
		return s.queryPrompts(ctx,
			`SELECT `+promptColumns+` FROM prompts WHERE active = ? ORDER BY rowid`,
			types.PromptActive)
	}
	return s.queryPrompts(ctx,
		`SELECT `+promptColumns+` FROM prompts WHERE active = ? AND category = ? ORDER BY rowid`,
		types.PromptActive, categoryID)
}

// PromptsByLLM returns the active prompts targeting the given LLM, or all
// active prompts when llmID is the FilterAll sentinel. Filtering by the
// generic sentinel matches exactly the prompts with no specific target.
func (s *Store) PromptsByLLM(ctx context.Context, llmID string) ([]types.Prompt, error) {
	if llmID == types.FilterAll {
		return s.queryPrompts(ctx,
			`SELECT `+promptColumns+` FROM prompts WHERE active = ? ORDER BY rowid`,
			types.PromptActive)
	}
	return s.queryPrompts(ctx,
		`SELECT `+promptColumns+` FROM prompts WHERE active = ? AND llm = ? ORDER BY rowid`,
		types.PromptActive, llmID)
}

// SearchPrompts returns the active prompts whose title or content contains
// keyword (case-insensitive over ASCII, SQLite LIKE semantics), most-used
// first, insertion order breaking ties. An empty keyword matches every
// active prompt, so this is also the ranked library view.
func (s *Store) SearchPrompts(ctx context.Context, keyword string) ([]types.Prompt, error) {
	like := "%" + keyword + "%"
	return s.queryPrompts(ctx, `
		SELECT `+promptColumns+` FROM prompts
		WHERE active = ? AND (title LIKE ? OR content LIKE ?)
		ORDER BY usage_count DESC, rowid`,
		types.PromptActive, like, like)
}

// IncrementUsageCount reads the prompt, adds one to its usage count, and
// writes it back. The count never decreases and n calls raise it by exactly
// n; the read-modify-write relies on the single-writer model. The bool
// reports whether the prompt exists.
func (s *Store) IncrementUsageCount(ctx context.Context, id string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT usage_count FROM prompts WHERE id = ?`, id).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading usage count: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE prompts SET usage_count = ? WHERE id = ?`, count+1, id); err != nil {
		return false, fmt.Errorf("writing usage count: %w", err)
	}
	return true, nil
}

func (s *Store) queryPrompts(ctx context.Context, query string, args ...any) ([]types.Prompt, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching prompts: %w", err)
	}
	defer rows.Close()

	prompts := []types.Prompt{}
	for rows.Next() {
		var p types.Prompt
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.LLM, &p.Active, &p.UsageCount); err != nil {
			return nil, fmt.Errorf("scanning prompt: %w", err)
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}
