package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when no run matches the requested ID.
var ErrRunNotFound = errors.New("storage: run not found")

// Run is a recorded headless session: enough to replay and verify it.
type Run struct {
	ID        string
	GameID    string
	Score     int
	Ticks     int
	Seed      int64
	Checksum  uint64
	Won       bool
	CreatedAt time.Time
}

// SaveRun records a run and returns its ID. A fresh UUID is assigned when
// r.ID is empty.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, score, ticks, seed, checksum, won)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Score, r.Ticks, r.Seed, formatChecksum(r.Checksum), r.Won,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RunByID loads a single run.
func (s *Store) RunByID(id string) (*Run, error) {
	runs, err := s.queryRuns(
		`SELECT run_id, game_id, score, ticks, seed, checksum, won, created_at
		 FROM runs WHERE run_id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrRunNotFound
	}
	return &runs[0], nil
}

// RecentRuns returns the newest runs first. An empty gameID lists every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	if gameID == "" {
		return s.queryRuns(
			`SELECT run_id, game_id, score, ticks, seed, checksum, won, created_at
			 FROM runs ORDER BY seq DESC LIMIT ?`,
			limit,
		)
	}
	return s.queryRuns(
		`SELECT run_id, game_id, score, ticks, seed, checksum, won, created_at
		 FROM runs WHERE game_id = ? ORDER BY seq DESC LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			sum       string
			won       sql.NullBool
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Ticks, &r.Seed, &sum, &won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Checksum, err = strconv.ParseUint(sum, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad checksum %q for run %s: %w", sum, r.ID, err)
		}
		r.Won = won.Valid && won.Bool
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Checksums are stored as hex text since SQLite integers are signed.
func formatChecksum(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
