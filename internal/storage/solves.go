package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents a solve in the database.
type Solve struct {
	SolveID        string        `json:"solve_id" yaml:"solve_id"`
	CreatedAt      time.Time     `json:"created_at" yaml:"created_at"`
	Scramble       string        `json:"scramble" yaml:"scramble"`
	Facelets       string        `json:"facelets" yaml:"facelets"`
	Solution       string        `json:"solution" yaml:"solution"`
	RawMoves       int           `json:"raw_moves" yaml:"raw_moves"`
	OptimizedMoves int           `json:"optimized_moves" yaml:"optimized_moves"`
	Duration       time.Duration `json:"duration" yaml:"duration"`
	Source         string        `json:"source" yaml:"source"`
}

// Step is the part of a solution produced by one phase.
type Step struct {
	StepID     int64  `json:"step_id" yaml:"step_id"`
	SolveID    string `json:"solve_id" yaml:"solve_id"`
	PhaseKey   string `json:"phase" yaml:"phase"`
	OrderIndex int    `json:"order_index" yaml:"order_index"`
	MoveCount  int    `json:"move_count" yaml:"move_count"`
	Moves      string `json:"moves" yaml:"moves"`
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solve with its steps and returns the new solve ID.
// SolveID and CreatedAt are assigned here.
func (r *SolveRepository) Create(s *Solve, steps []Step) (string, error) {
	s.SolveID = uuid.New().String()
	s.CreatedAt = time.Now().UTC()
	if s.Source == "" {
		s.Source = "cli"
	}

	err := r.db.inTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO solves (solve_id, created_at, scramble, facelets, solution, raw_moves, optimized_moves, duration_us, source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, s.SolveID, s.CreatedAt.Format(timeLayout), s.Scramble, s.Facelets, s.Solution,
			s.RawMoves, s.OptimizedMoves, s.Duration.Microseconds(), s.Source)
		if err != nil {
			return fmt.Errorf("failed to create solve: %w", err)
		}

		for i, step := range steps {
			_, err := tx.Exec(`
				INSERT INTO solve_steps (solve_id, phase_key, order_index, move_count, moves)
				VALUES (?, ?, ?, ?, ?)
			`, s.SolveID, step.PhaseKey, i, step.MoveCount, step.Moves)
			if err != nil {
				return fmt.Errorf("failed to create step %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return s.SolveID, nil
}

// timeLayout has a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const solveColumns = `solve_id, created_at, scramble, facelets, solution, raw_moves, optimized_moves, duration_us, source`

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAt string
	var durationUs int64
	err := row.Scan(&s.SolveID, &createdAt, &s.Scramble, &s.Facelets, &s.Solution,
		&s.RawMoves, &s.OptimizedMoves, &durationUs, &s.Source)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.Duration = time.Duration(durationUs) * time.Microsecond
	return &s, nil
}

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`SELECT `+solveColumns+` FROM solves WHERE solve_id = ?`, solveID)
	s, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSolveNotFound, solveID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// List returns the most recent solves, newest first. limit <= 0 returns all.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	query := `SELECT ` + solveColumns + ` FROM solves ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
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

// Count returns the number of stored solves.
func (r *SolveRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return n, nil
}

// Delete removes a solve and its steps.
func (r *SolveRepository) Delete(solveID string) error {
	res, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrSolveNotFound, solveID)
	}
	return nil
}

// Steps returns the phase steps of a solve in order.
func (r *SolveRepository) Steps(solveID string) ([]Step, error) {
	rows, err := r.db.Query(`
		SELECT step_id, solve_id, phase_key, order_index, move_count, moves
		FROM solve_steps
		WHERE solve_id = ?
		ORDER BY order_index
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	defer rows.Close()

	var steps []Step
	for rows.Next() {
		var s Step
		if err := rows.Scan(&s.StepID, &s.SolveID, &s.PhaseKey, &s.OrderIndex, &s.MoveCount, &s.Moves); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, s)
	}

	return steps, rows.Err()
}
