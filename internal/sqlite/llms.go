package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

// AddLLM stores a new model target under a fresh ID and returns the ID.
func (s *Store) AddLLM(ctx context.Context, name, url string) (string, error) {
	l := types.LLM{ID: newID(), Name: name, URL: url}
	if err := l.Validate(); err != nil {
		return "", err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO llms (id, name, url) VALUES (?, ?, ?)`, l.ID, l.Name, l.URL); err != nil {
		return "", fmt.Errorf("inserting llm: %w", err)
	}
	return l.ID, nil
}

// UpdateLLM replaces the record stored at id. The ID itself is immutable.
func (s *Store) UpdateLLM(ctx context.Context, id, name, url string) error {
	if id == "" {
		return types.ErrInvalidData
	}
	l := types.LLM{ID: id, Name: name, URL: url}
	if err := l.Validate(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO llms (id, name, url) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, url = excluded.url`,
		l.ID, l.Name, l.URL); err != nil {
		return fmt.Errorf("updating llm: %w", err)
	}
	return nil
}

// DeleteLLM removes the model target. Deleting an absent ID is a no-op;
// prompts referencing the LLM are left untouched.
func (s *Store) DeleteLLM(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM llms WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting llm: %w", err)
	}
	return nil
}

// LLMs returns all model targets in insertion order.
func (s *Store) LLMs(ctx context.Context) ([]types.LLM, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, url FROM llms ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("fetching llms: %w", err)
	}
	defer rows.Close()

	llms := []types.LLM{}
	for rows.Next() {
		var l types.LLM
		if err := rows.Scan(&l.ID, &l.Name, &l.URL); err != nil {
			return nil, fmt.Errorf("scanning llm: %w", err)
		}
		llms = append(llms, l)
	}
	return llms, rows.Err()
}

// LLMByID looks up one model target; the bool reports whether it exists.
func (s *Store) LLMByID(ctx context.Context, id string) (types.LLM, bool, error) {
	var l types.LLM
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, url FROM llms WHERE id = ?`, id).Scan(&l.ID, &l.Name, &l.URL)
	if errors.Is(err, sql.ErrNoRows) {
		return types.LLM{}, false, nil
	}
	if err != nil {
		return types.LLM{}, false, fmt.Errorf("scanning llm: %w", err)
	}
	return l, true, nil
}
