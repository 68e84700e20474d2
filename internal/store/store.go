// Package store is the persistence boundary of the engine: learned-item
// records, domain events and statistics snapshots in a local SQLite
// database managed through ent.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/sagara/kotoba/ent"
	"github.com/sagara/kotoba/ent/learneditem"
	"github.com/sagara/kotoba/ent/reviewevent"
	"github.com/sagara/kotoba/ent/sessionevent"
	"github.com/sagara/kotoba/ent/statssnapshot"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// RecordRepo returns the learned-item repository, with bounded retry on
// writes.
func (s *Store) RecordRepo() RecordRepo {
	return WithRetry(&recordRepo{client: s.client}, DefaultRetryConfig())
}

// EventRepo returns the domain event repository.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// StatsRepo returns the statistics snapshot repository.
func (s *Store) StatsRepo() StatsRepo {
	return &statsRepo{client: s.client}
}

// ResetUser deletes all of a user's records, events and snapshots.
// The catalog is untouched; the user starts over from zero state.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	if _, err := s.client.LearnedItem.Delete().
		Where(learneditem.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete learned items: %w", err)
	}
	if _, err := s.client.ReviewEvent.Delete().
		Where(reviewevent.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete review events: %w", err)
	}
	if _, err := s.client.SessionEvent.Delete().
		Where(sessionevent.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete session events: %w", err)
	}
	if _, err := s.client.StatsSnapshot.Delete().
		Where(statssnapshot.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete stats snapshots: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user local performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. KOTOBA_DB environment variable
// 2. $XDG_DATA_HOME/kotoba/kotoba.db
// 3. ~/.local/share/kotoba/kotoba.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("KOTOBA_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "kotoba", "kotoba.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
