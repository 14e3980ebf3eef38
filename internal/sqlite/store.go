package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/prompthub/internal/log"
	"github.com/mesh-intelligence/prompthub/pkg/types"
)

const (
	dbFileName = "prompthub.db"

	// schemaVersion is the structural version the code targets. Opening a
	// database recorded at a lower version runs the missing migration
	// steps; the version never decreases.
	schemaVersion = 2
)

const createVersion = `CREATE TABLE IF NOT EXISTS version (
    id INTEGER PRIMARY KEY CHECK(id = 1),
    schema INTEGER NOT NULL,
    updated_at TEXT NOT NULL
);`

// Store owns the database handle for the three record stores. One Store is
// opened per process and passed explicitly to callers; there is no ambient
// singleton. All repository and backup operations hang off this type.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the data directory if needed, opens (or creates) the
// database file, and upgrades the schema to the current version. Every
// failure to reach a usable handle wraps types.ErrStorageUnavailable;
// callers surface it as a terminal failure, never fall back to memory.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data dir: %v", types.ErrStorageUnavailable, err)
	}

	path := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", types.ErrStorageUnavailable, path, err)
	}

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: pinging %s: %v", types.ErrStorageUnavailable, path, err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migrating %s: %v", types.ErrStorageUnavailable, path, err)
	}

	log.L().Debug("store ready", slog.String("path", path))
	return &Store{db: db, path: path}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// migrate ensures the version row exists and applies each missing migration
// step inside its own transaction. A fresh database starts at version 0 and
// runs every step, so creation and upgrade share one code path.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createVersion); err != nil {
		return fmt.Errorf("creating version table: %w", err)
	}

	cur, err := currentVersion(ctx, db)
	if err != nil {
		return err
	}
	if cur > schemaVersion {
		// Never downgrade; a newer database is left as is.
		return nil
	}

	for cur < schemaVersion {
		next := cur + 1
		stmts, ok := migrations[next]
		if !ok {
			return fmt.Errorf("no migration step for version %d", next)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", next, err)
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d: %w", next, err)
			}
		}
		now := time.Now().UTC().Format(time.RFC3339)
		if _, err := tx.ExecContext(ctx,
			`UPDATE version SET schema = ?, updated_at = ? WHERE id = 1`, next, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", next, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", next, err)
		}

		log.L().Info("schema upgraded", slog.Int("version", next))
		cur = next
	}
	return nil
}

// currentVersion reads the recorded schema version, seeding the row at 0 for
// a fresh database.
func currentVersion(ctx context.Context, db *sql.DB) (int, error) {
	var cur int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id = 1`).Scan(&cur)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		now := time.Now().UTC().Format(time.RFC3339)
		if _, err := db.ExecContext(ctx,
			`INSERT INTO version (id, schema, updated_at) VALUES (1, 0, ?)`, now); err != nil {
			return 0, fmt.Errorf("seeding version row: %w", err)
		}
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return cur, nil
}

// newID generates a record ID: a UUID v7, time-ordered with a random
// component. Collisions are treated as negligible, not prevented.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
