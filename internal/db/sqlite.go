package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"xbench/internal/benchmark"
)

// SQLiteStore implements benchmark.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		input TEXT NOT NULL,
		input_bytes INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS samples (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		parser TEXT NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		ok INTEGER NOT NULL,
		diagnostic TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_samples_run ON samples(run_id);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save inserts a run and its samples in one transaction.
func (s *SQLiteStore) Save(run benchmark.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, timestamp, label, input, input_bytes) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Timestamp.UTC().Format(time.RFC3339Nano), run.Label, run.Input, run.InputBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, sample := range run.Samples {
		_, err = tx.Exec(
			`INSERT INTO samples (run_id, parser, elapsed_ns, ok, diagnostic) VALUES (?, ?, ?, ?, ?)`,
			run.ID, sample.Parser, sample.ElapsedNs, boolToInt(sample.OK), sample.Diagnostic,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sample: %w", err)
		}
	}

	return tx.Commit()
}

// LoadAll retrieves every run with its samples, oldest first.
func (s *SQLiteStore) LoadAll() ([]benchmark.Run, error) {
	rows, err := s.db.Query(`SELECT id, timestamp, label, input, input_bytes FROM runs ORDER BY timestamp ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []benchmark.Run
	for rows.Next() {
		var run benchmark.Run
		var ts string
		if err := rows.Scan(&run.ID, &ts, &run.Label, &run.Input, &run.InputBytes); err != nil {
			return nil, err
		}
		run.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		samples, err := s.loadSamples(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Samples = samples
	}
	if runs == nil {
		runs = []benchmark.Run{}
	}
	return runs, nil
}

// LoadLatest retrieves the most recent run, or nil if the store is empty.
func (s *SQLiteStore) LoadLatest() (*benchmark.Run, error) {
	runs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}

func (s *SQLiteStore) loadSamples(runID string) ([]benchmark.Sample, error) {
	rows, err := s.db.Query(
		`SELECT parser, elapsed_ns, ok, diagnostic FROM samples WHERE run_id = ? ORDER BY rowid ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []benchmark.Sample
	for rows.Next() {
		var sample benchmark.Sample
		var ok int
		if err := rows.Scan(&sample.Parser, &sample.ElapsedNs, &ok, &sample.Diagnostic); err != nil {
			return nil, err
		}
		sample.OK = ok != 0
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
