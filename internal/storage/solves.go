package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Scramble   string
	Solution   string
	TotalTurns int
	CrossTurns int
	F2LTurns   int
	CrossTime  time.Duration
	F2LTime    time.Duration
	OLLTime    time.Duration
	PLLTime    time.Duration
	TotalTime  time.Duration
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solve and returns its ID. The SolveID and CreatedAt
// fields are assigned here.
func (r *SolveRepository) Create(s *Solve) (string, error) {
	s.SolveID = uuid.New().String()
	s.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, solution,
			total_turns, cross_turns, f2l_turns,
			cross_us, f2l_us, oll_us, pll_us, total_us)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.SolveID, s.CreatedAt.Format(time.RFC3339), s.Scramble, s.Solution,
		s.TotalTurns, s.CrossTurns, s.F2LTurns,
		s.CrossTime.Microseconds(), s.F2LTime.Microseconds(),
		s.OLLTime.Microseconds(), s.PLLTime.Microseconds(),
		s.TotalTime.Microseconds())

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return s.SolveID, nil
}

// Get retrieves a solve by ID. A missing row returns (nil, nil).
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution,
			total_turns, cross_turns, f2l_turns,
			cross_us, f2l_us, oll_us, pll_us, total_us
		FROM solves
		WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution,
			total_turns, cross_turns, f2l_turns,
			cross_us, f2l_us, oll_us, pll_us, total_us
		FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// Delete deletes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// Count returns the number of stored solves.
func (r *SolveRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (*Solve, error) {
	var s Solve
	var createdAtStr string
	var crossUs, f2lUs, ollUs, pllUs, totalUs int64

	err := row.Scan(
		&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution,
		&s.TotalTurns, &s.CrossTurns, &s.F2LTurns,
		&crossUs, &f2lUs, &ollUs, &pllUs, &totalUs,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	s.CrossTime = time.Duration(crossUs) * time.Microsecond
	s.F2LTime = time.Duration(f2lUs) * time.Microsecond
	s.OLLTime = time.Duration(ollUs) * time.Microsecond
	s.PLLTime = time.Duration(pllUs) * time.Microsecond
	s.TotalTime = time.Duration(totalUs) * time.Microsecond

	return &s, nil
}
