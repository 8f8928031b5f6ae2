package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry represents one rendered plot
type Entry struct {
	ID        string    `json:"id"`
	Equation  string    `json:"equation"`
	Zoom      float64   `json:"zoom"`
	XOffset   float64   `json:"x_offset"`
	YOffset   float64   `json:"y_offset"`
	PlottedAt time.Time `json:"plotted_at"`
}

// HistoryStore defines the interface for plot history persistence
type HistoryStore interface {
	Record(ctx context.Context, entry *Entry) error
	List(ctx context.Context, limit int) ([]*Entry, error)
	Clear(ctx context.Context) error
	Close() error
}

// SQLiteHistoryStore implements HistoryStore using SQLite
type SQLiteHistoryStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteHistoryConfig holds configuration for the SQLite store
type SQLiteHistoryConfig struct {
	Path string
}

// DefaultHistoryConfig returns default configuration
func DefaultHistoryConfig() SQLiteHistoryConfig {
	return SQLiteHistoryConfig{
		Path: "./data/history.db",
	}
}

// NewSQLiteHistoryStore creates a new SQLite-based plot history store
func NewSQLiteHistoryStore(cfg SQLiteHistoryConfig) (*SQLiteHistoryStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteHistoryStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteHistoryStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plot_history (
		id TEXT PRIMARY KEY,
		equation TEXT NOT NULL,
		zoom REAL NOT NULL DEFAULT 1.0,
		x_offset REAL NOT NULL DEFAULT 0,
		y_offset REAL NOT NULL DEFAULT 0,
		plotted_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_plot_history_plotted_at
		ON plot_history(plotted_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores one plot entry. A missing ID or timestamp is filled in.
func (s *SQLiteHistoryStore) Record(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("entry must not be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.PlottedAt.IsZero() {
		entry.PlottedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plot_history (id, equation, zoom, x_offset, y_offset, plotted_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Equation, entry.Zoom, entry.XOffset, entry.YOffset, entry.PlottedAt)
	if err != nil {
		return fmt.Errorf("failed to record plot: %w", err)
	}

	return nil
}

// List returns the most recent entries, newest first. A non-positive
// limit falls back to 20.
func (s *SQLiteHistoryStore) List(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, equation, zoom, x_offset, y_offset, plotted_at
		FROM plot_history
		ORDER BY plotted_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list plot history: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(&entry.ID, &entry.Equation, &entry.Zoom,
			&entry.XOffset, &entry.YOffset, &entry.PlottedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plot history row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Clear removes all history entries
func (s *SQLiteHistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM plot_history`); err != nil {
		return fmt.Errorf("failed to clear plot history: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}
