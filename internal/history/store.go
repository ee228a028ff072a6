// Package history keeps a durable record of completed episodes in a small
// sqlite database. The progress marker file remains the source of truth for
// the resume position; history is an audit log for the UI and CLI.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/epwatch/epwatch/internal/model"
)

// ErrNoHistory indicates no episodes have been recorded yet.
var ErrNoHistory = errors.New("no watch history")

const schema = `
CREATE TABLE IF NOT EXISTS watch_history (
	episode    INTEGER NOT NULL,
	path       TEXT    NOT NULL,
	watched_at TEXT    NOT NULL,
	PRIMARY KEY (episode, path)
);`

// Entry is one recorded watch event
type Entry struct {
	Episode   int
	Path      string
	WatchedAt time.Time
}

// Store persists watch events in sqlite
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	// Single desktop process; one connection avoids writer contention.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordWatched stores a watch event for the episode. Re-watching the same
// file updates the timestamp instead of adding a row.
func (s *Store) RecordWatched(ep model.Episode) error {
	_, err := s.db.Exec(
		`INSERT INTO watch_history (episode, path, watched_at) VALUES (?, ?, ?)
		 ON CONFLICT (episode, path) DO UPDATE SET watched_at = excluded.watched_at`,
		ep.Number, ep.Path, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record episode %d: %w", ep.Number, err)
	}
	return nil
}

// Entries returns all watch events, most recent first
func (s *Store) Entries() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT episode, path, watched_at FROM watch_history ORDER BY watched_at DESC, episode DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var watchedAt string
		if err := rows.Scan(&e.Episode, &e.Path, &watchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, watchedAt); err == nil {
			e.WatchedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LastWatched returns the most recent watch event
func (s *Store) LastWatched() (Entry, error) {
	entries, err := s.Entries()
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrNoHistory
	}
	return entries[0], nil
}
