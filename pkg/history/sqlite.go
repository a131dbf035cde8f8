package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"passfort-hq/passfort/pkg/analyzer"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	source TEXT NOT NULL,
	password_length INTEGER NOT NULL,
	strength_level TEXT NOT NULL,
	total_score REAL NOT NULL,
	entropy REAL NOT NULL,
	is_common INTEGER NOT NULL,
	pattern_count INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

// Store persists analysis records in SQLite.
type Store struct {
	db *sql.DB

	saveStmt *sql.Stmt
	listStmt *sql.Stmt
}

// Open opens (creating if needed) the history database at path. WAL
// mode keeps readers from blocking the single writer.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("history db path cannot be empty")
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	s := &Store{db: db}
	if s.saveStmt, err = db.Prepare(
		`INSERT INTO analyses (id, created_at, source, password_length, strength_level,
			total_score, entropy, is_common, pattern_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare save statement: %w", err)
	}
	if s.listStmt, err = db.Prepare(
		`SELECT id, created_at, source, password_length, strength_level,
			total_score, entropy, is_common, pattern_count
		 FROM analyses ORDER BY created_at DESC, id LIMIT ?`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare list statement: %w", err)
	}
	return s, nil
}

// Save inserts one record.
func (s *Store) Save(ctx context.Context, record *Record) error {
	_, err := s.saveStmt.ExecContext(ctx,
		record.ID,
		record.CreatedAt.UnixMilli(),
		record.Source,
		record.Length,
		string(record.Strength),
		record.Score,
		record.EntropyBits,
		boolToInt(record.IsCommon),
		record.PatternCount,
	)
	if err != nil {
		return fmt.Errorf("failed to save history record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.listStmt.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var (
			r         Record
			createdAt int64
			strength  string
			isCommon  int
		)
		if err := rows.Scan(&r.ID, &createdAt, &r.Source, &r.Length, &strength,
			&r.Score, &r.EntropyBits, &isCommon, &r.PatternCount); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		r.CreatedAt = time.UnixMilli(createdAt).UTC()
		r.Strength = analyzer.Strength(strength)
		r.IsCommon = isCommon != 0
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history records: %w", err)
	}
	return records, nil
}

// Count returns the total number of stored records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count history records: %w", err)
	}
	return count, nil
}

// Stats summarizes the stored records.
type Stats struct {
	Total          int64                       `json:"total"`
	ByStrength     map[analyzer.Strength]int64 `json:"by_strength"`
	AverageScore   float64                     `json:"average_score"`
	AverageEntropy float64                     `json:"average_entropy"`
	CommonCount    int64                       `json:"common_count"`
}

// Aggregate computes summary statistics over all stored records.
func (s *Store) Aggregate(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByStrength: make(map[analyzer.Strength]int64)}
	for _, level := range analyzer.StrengthLevels {
		stats.ByStrength[level] = 0
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(AVG(total_score), 0),
			COALESCE(AVG(entropy), 0),
			COALESCE(SUM(is_common), 0)
		 FROM analyses`)
	if err := row.Scan(&stats.Total, &stats.AverageScore, &stats.AverageEntropy, &stats.CommonCount); err != nil {
		return nil, fmt.Errorf("failed to aggregate history records: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT strength_level, COUNT(*) FROM analyses GROUP BY strength_level`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate strength levels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			level string
			count int64
		)
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("failed to scan strength count: %w", err)
		}
		stats.ByStrength[analyzer.Strength(level)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read strength counts: %w", err)
	}
	return stats, nil
}

// DeleteBefore removes records created before cutoff and returns how
// many were deleted.
func (s *Store) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM analyses WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete history records: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted row count: %w", err)
	}
	return deleted, nil
}

// TrimTo keeps only the newest max records and returns how many were
// deleted.
func (s *Store) TrimTo(ctx context.Context, max int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM analyses WHERE id NOT IN (
			SELECT id FROM analyses ORDER BY created_at DESC, id LIMIT ?
		)`, max)
	if err != nil {
		return 0, fmt.Errorf("failed to trim history records: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted row count: %w", err)
	}
	return deleted, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.saveStmt != nil {
		s.saveStmt.Close()
	}
	if s.listStmt != nil {
		s.listStmt.Close()
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
