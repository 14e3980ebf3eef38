package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mesh-intelligence/prompthub/internal/log"
	"github.com/mesh-intelligence/prompthub/pkg/types"
)

// backupSchema describes the wire shape of a backup document: exactly three
// array-valued top-level keys. Record fields are not constrained here;
// records are restored verbatim.
const backupSchema = `{
  "type": "object",
  "required": ["prompts", "categories", "llms"],
  "properties": {
    "prompts":    {"type": "array"},
    "categories": {"type": "array"},
    "llms":       {"type": "array"}
  }
}`

// Export returns the full unfiltered contents of all three stores, inactive
// prompts included. Collections are never nil so an empty store serializes
// as an empty array.
func (s *Store) Export(ctx context.Context) (*types.BackupDocument, error) {
	prompts, err := s.Prompts(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	llms, err := s.LLMs(ctx)
	if err != nil {
		return nil, err
	}
	return &types.BackupDocument{
		Prompts:    prompts,
		Categories: categories,
		LLMs:       llms,
	}, nil
}

// ImportJSON validates raw backup bytes against the document schema, then
// applies them through Import. Malformed JSON and a document missing any of
// the three collections both fail with ErrInvalidBackup before any mutation.
func (s *Store) ImportJSON(ctx context.Context, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(backupSchema),
		gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidBackup, err)
	}
	if !result.Valid() {
		return fmt.Errorf("%w: %s", types.ErrInvalidBackup, result.Errors()[0])
	}

	var doc types.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidBackup, err)
	}
	return s.Import(ctx, &doc)
}

// Import atomically replaces the contents of all three stores with the
// document's records, IDs preserved. The clear and every insert run in one
// transaction: a failure partway rolls back all three stores together, so
// the database is always either fully old or fully new.
func (s *Store) Import(ctx context.Context, doc *types.BackupDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"prompts", "categories", "llms"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, p := range doc.Prompts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO prompts (id, title, content, category, llm, active, usage_count)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Content, p.Category, p.LLM, p.Active, p.UsageCount); err != nil {
			return fmt.Errorf("restoring prompt %s: %w", p.ID, err)
		}
	}
	for _, c := range doc.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES (?, ?)`, c.ID, c.Name); err != nil {
			return fmt.Errorf("restoring category %s: %w", c.ID, err)
		}
	}
	for _, l := range doc.LLMs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO llms (id, name, url) VALUES (?, ?, ?)`, l.ID, l.Name, l.URL); err != nil {
			return fmt.Errorf("restoring llm %s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	log.L().Info("backup imported",
		slog.Int("prompts", len(doc.Prompts)),
		slog.Int("categories", len(doc.Categories)),
		slog.Int("llms", len(doc.LLMs)))
	return nil
}

// WriteBackupFile serializes the document as indented JSON and writes it
// with the temp-file, fsync, rename pattern so a crash never leaves a
// truncated backup on disk.
func WriteBackupFile(path string, doc *types.BackupDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling backup: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".backup-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing backup: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
