package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BenchmarkEntry is one run of the sorting comparison.
type BenchmarkEntry struct {
	ID        int64
	RunID     uuid.UUID
	Length    int
	Bubble    time.Duration
	Insertion time.Duration
	Winner    string
	CreatedAt time.Time
}

// SaveBenchmark records a sorting comparison.
func (s *Store) SaveBenchmark(e BenchmarkEntry) (BenchmarkEntry, error) {
	if e.RunID == uuid.Nil {
		e.RunID = uuid.New()
	}
	stamp := s.stamp()

	result, err := s.db.Exec(
		`INSERT INTO benchmarks (run_id, length, bubble_ns, insertion_ns, winner, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Length, e.Bubble.Nanoseconds(), e.Insertion.Nanoseconds(), e.Winner, stamp,
	)
	if err != nil {
		return e, fmt.Errorf("storage: cannot save benchmark: %w", err)
	}

	e.ID, err = result.LastInsertId()
	if err != nil {
		return e, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	e.CreatedAt = fromStamp(stamp)
	return e, nil
}

// RecentBenchmarks returns the latest benchmark runs, newest first.
func (s *Store) RecentBenchmarks(limit int) ([]BenchmarkEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, length, bubble_ns, insertion_ns, winner, created_at
		 FROM benchmarks
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query benchmarks: %w", err)
	}
	defer rows.Close()

	var entries []BenchmarkEntry
	for rows.Next() {
		var e BenchmarkEntry
		var bubble, insertion, stamp int64
		if err := rows.Scan(&e.ID, &e.RunID, &e.Length, &bubble, &insertion, &e.Winner, &stamp); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Bubble = time.Duration(bubble)
		e.Insertion = time.Duration(insertion)
		e.CreatedAt = fromStamp(stamp)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// GuessEntry is one finished round of the guessing game.
type GuessEntry struct {
	ID        int64
	RunID     uuid.UUID
	Correct   bool
	Attempts  int // Attempts used
	CreatedAt time.Time
}

// SaveGuess records a guessing round.
func (s *Store) SaveGuess(e GuessEntry) (GuessEntry, error) {
	if e.RunID == uuid.Nil {
		e.RunID = uuid.New()
	}
	stamp := s.stamp()

	result, err := s.db.Exec(
		"INSERT INTO guesses (run_id, correct, attempts, created_at) VALUES (?, ?, ?, ?)",
		e.RunID, e.Correct, e.Attempts, stamp,
	)
	if err != nil {
		return e, fmt.Errorf("storage: cannot save guess: %w", err)
	}

	e.ID, err = result.LastInsertId()
	if err != nil {
		return e, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	e.CreatedAt = fromStamp(stamp)
	return e, nil
}

// GuessRecord returns how many rounds were played and how many were won.
func (s *Store) GuessRecord() (played, won int, err error) {
	err = s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM guesses",
	).Scan(&played, &won)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot query guesses: %w", err)
	}
	return played, won, nil
}
