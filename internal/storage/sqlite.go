// Package storage provides SQLite-based persistence for match-3 scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Result is a finished game as reported by the platform.
type Result struct {
	ModeID    string
	Score     int
	Moves     int
	BestChain int
}

// ScoreEntry represents a single stored score.
type ScoreEntry struct {
	ID        int64
	ModeID    string
	Score     int
	Moves     int
	BestChain int
	CreatedAt time.Time
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	ModeID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalMoves int64
	BestChain  int
	LastPlayed time.Time
}

// DefaultPath is the score database used when none is given.
const DefaultPath = "~/.match3/scores.db"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			best_chain INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_mode_id ON scores(mode_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(r Result) (int64, error) {
	if r.ModeID == "" {
		return 0, fmt.Errorf("storage: cannot save score: empty mode id")
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (mode_id, score, moves, best_chain) VALUES (?, ?, ?, ?)",
		r.ModeID, r.Score, r.Moves, r.BestChain,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given mode.
// Ties are broken by fewer moves, then by age.
func (s *Store) TopScores(modeID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode_id, score, moves, best_chain, created_at
		 FROM scores
		 WHERE mode_id = ?
		 ORDER BY score DESC, moves ASC, id ASC
		 LIMIT ?`,
		modeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// AllScores retrieves all scores for the given mode (no limit).
func (s *Store) AllScores(modeID string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, mode_id, score, moves, best_chain, created_at
		 FROM scores
		 WHERE mode_id = ?
		 ORDER BY score DESC, moves ASC, id ASC`,
		modeID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ModeID, &e.Score, &e.Moves, &e.BestChain, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no scores exist.
func (s *Store) HighScore(modeID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode_id = ?",
		modeID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given mode.
func (s *Store) ClearScores(modeID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE mode_id = ?", modeID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// ModeStatsFor retrieves aggregated statistics for a specific mode.
func (s *Store) ModeStatsFor(modeID string) (*ModeStats, error) {
	stats := &ModeStats{ModeID: modeID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(moves), 0), COALESCE(MAX(best_chain), 0)
		 FROM scores WHERE mode_id = ?`,
		modeID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalMoves, &stats.BestChain)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE mode_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		modeID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllModeStats retrieves statistics for every mode that has been played.
func (s *Store) AllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode_id, COUNT(*), MAX(score), AVG(score), SUM(moves), MAX(best_chain), MAX(created_at)
		 FROM scores
		 GROUP BY mode_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.ModeID, &m.GamesCount, &m.HighScore, &m.AvgScore, &m.TotalMoves, &m.BestChain, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTime(lastPlayed)
		stats[m.ModeID] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
