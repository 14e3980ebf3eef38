package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

// AddCategory stores a new category under a fresh ID and returns the ID.
func (s *Store) AddCategory(ctx context.Context, name string) (string, error) {
	c := types.Category{ID: newID(), Name: name}
	if err := c.Validate(); err != nil {
		return "", err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name) VALUES (?, ?)`, c.ID, c.Name); err != nil {
		return "", fmt.Errorf("inserting category: %w", err)
	}
	return c.ID, nil
}

// UpdateCategory replaces the category stored at id with the given name.
// The ID itself is immutable. Put semantics: a missing record is created.
func (s *Store) UpdateCategory(ctx context.Context, id, name string) error {
	if id == "" {
		return types.ErrInvalidData
	}
	c := types.Category{ID: id, Name: name}
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		c.ID, c.Name); err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	return nil
}

// DeleteCategory removes the category. Deleting an absent ID is a no-op;
// prompts referencing the category are left untouched.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

// Categories returns all categories in insertion order.
func (s *Store) Categories(ctx context.Context) ([]types.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM categories ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	defer rows.Close()

	cats := []types.Category{}
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// CategoryByID looks up one category. A miss is not an error: the second
// return value reports whether the record exists.
func (s *Store) CategoryByID(ctx context.Context, id string) (types.Category, bool, error) {
	var c types.Category
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE id = ?`, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Category{}, false, nil
	}
	if err != nil {
		return types.Category{}, false, fmt.Errorf("scanning category: %w", err)
	}
	return c, true, nil
}
