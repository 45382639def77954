package storage

import "fmt"

// PhaseDef represents a phase definition.
type PhaseDef struct {
	PhaseKey    string
	DisplayName string
	OrderIndex  int
}

// PhaseStats aggregates the move counts of one phase over stored solves.
type PhaseStats struct {
	PhaseKey    string  `json:"phase" yaml:"phase"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	Solves      int     `json:"solves" yaml:"solves"`
	AvgMoves    float64 `json:"avg_moves" yaml:"avg_moves"`
	MinMoves    int     `json:"min_moves" yaml:"min_moves"`
	MaxMoves    int     `json:"max_moves" yaml:"max_moves"`
}

// PhaseRepository reads phase definitions and per-phase statistics.
type PhaseRepository struct {
	db *DB
}

// NewPhaseRepository creates a new phase repository.
func NewPhaseRepository(db *DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// Defs retrieves all phase definitions in order.
func (r *PhaseRepository) Defs() ([]PhaseDef, error) {
	rows, err := r.db.Query(`
		SELECT phase_key, display_name, order_index
		FROM phase_defs
		ORDER BY order_index
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase defs: %w", err)
	}
	defer rows.Close()

	var defs []PhaseDef
	for rows.Next() {
		var d PhaseDef
		if err := rows.Scan(&d.PhaseKey, &d.DisplayName, &d.OrderIndex); err != nil {
			return nil, fmt.Errorf("failed to scan phase def: %w", err)
		}
		defs = append(defs, d)
	}

	return defs, rows.Err()
}

// Stats returns move-count statistics per phase, in phase order. Phases
// without stored steps are omitted.
func (r *PhaseRepository) Stats() ([]PhaseStats, error) {
	rows, err := r.db.Query(`
		SELECT d.phase_key, d.display_name, COUNT(s.step_id),
		       AVG(s.move_count), MIN(s.move_count), MAX(s.move_count)
		FROM phase_defs d
		JOIN solve_steps s ON s.phase_key = d.phase_key
		GROUP BY d.phase_key, d.display_name, d.order_index
		ORDER BY d.order_index
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase stats: %w", err)
	}
	defer rows.Close()

	var stats []PhaseStats
	for rows.Next() {
		var s PhaseStats
		if err := rows.Scan(&s.PhaseKey, &s.DisplayName, &s.Solves, &s.AvgMoves, &s.MinMoves, &s.MaxMoves); err != nil {
			return nil, fmt.Errorf("failed to scan phase stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
