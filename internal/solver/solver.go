// Package solver solves a cube with the layer-by-layer beginner's method.
//
// Solving runs seven phases in order: white cross, first-layer corners,
// second-layer edges, last-layer cross, last-layer edge permutation,
// last-layer corner permutation and last-layer corner orientation. Each phase
// picks an unsolved target, applies a case algorithm re-aimed at the target
// with the orientation mapper, and repeats under a fixed cap. A phase whose
// exit condition does not hold afterwards fails with a *PhaseError.
package solver

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/optimize"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Option configures a Solver.
type Option func(*config)

type config struct {
	optimize bool
	logger   zerolog.Logger
	onPhase  func(phase cube.Phase, moves []types.Move)
}

func defaultConfig() *config {
	return &config{
		optimize: true,
		logger:   log.Logger,
	}
}

// WithOptimize enables or disables the final move-list optimization.
// Enabled by default.
func WithOptimize(enabled bool) Option {
	return func(c *config) {
		c.optimize = enabled
	}
}

// WithLogger sets the logger used for per-phase debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithPhaseCallback registers a callback invoked after each phase with the
// moves that phase applied.
func WithPhaseCallback(cb func(phase cube.Phase, moves []types.Move)) Option {
	return func(c *config) {
		c.onPhase = cb
	}
}

// Solver runs the seven phases. A Solver holds no per-cube state and may be
// shared across goroutines.
type Solver struct {
	cfg *config
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{cfg: cfg}
}

// Step holds the moves applied by one phase.
type Step struct {
	Phase cube.Phase   `json:"phase" yaml:"phase"`
	Moves []types.Move `json:"moves" yaml:"moves"`
}

// Solution is the result of a successful solve.
type Solution struct {
	Steps     []Step       `json:"steps" yaml:"steps"`
	Moves     []types.Move `json:"moves" yaml:"moves"`
	Optimized []types.Move `json:"optimized" yaml:"optimized"`
}

// Result returns the optimized moves when optimization ran, otherwise the
// raw moves.
func (s *Solution) Result() []types.Move {
	if s.Optimized != nil {
		return s.Optimized
	}
	return s.Moves
}

// String formats the result as notation.
func (s *Solution) String() string {
	return notation.FormatSequence(s.Result())
}

type phase struct {
	target cube.Phase
	run    func(*run) error
}

var phases = []phase{
	{cube.PhaseWhiteCross, (*run).whiteCross},
	{cube.PhaseFirstLayer, (*run).firstLayer},
	{cube.PhaseSecondLayer, (*run).secondLayer},
	{cube.PhaseLastLayerCross, (*run).lastLayerCross},
	{cube.PhaseLastLayerEdges, (*run).lastLayerEdges},
	{cube.PhaseLastLayerCorners, (*run).lastLayerCorners},
	{cube.PhaseSolved, (*run).lastLayerOrientation},
}

// Solve solves c in place and returns the moves applied.
func (s *Solver) Solve(c *cube.Cube) (*Solution, error) {
	r := &run{cube: c}
	sol := &Solution{}
	logger := s.cfg.logger

	for _, ph := range phases {
		start := len(r.moves)
		if err := ph.run(r); err != nil {
			logger.Debug().Str("phase", ph.target.String()).Err(err).Msg("phase-failed")
			return nil, &PhaseError{Phase: ph.target, Err: err}
		}
		if !c.Reached(ph.target) {
			logger.Debug().Str("phase", ph.target.String()).Msg("phase-invariant-violated")
			return nil, &PhaseError{Phase: ph.target, Err: ErrUnexpectedState}
		}

		step := Step{Phase: ph.target, Moves: append([]types.Move(nil), r.moves[start:]...)}
		sol.Steps = append(sol.Steps, step)
		logger.Debug().Str("phase", ph.target.String()).Int("moves", len(step.Moves)).Msg("phase-complete")
		if s.cfg.onPhase != nil {
			s.cfg.onPhase(step.Phase, step.Moves)
		}
	}

	sol.Moves = r.moves
	if s.cfg.optimize {
		sol.Optimized = optimize.Optimize(r.moves)
		if sol.Optimized == nil {
			sol.Optimized = []types.Move{}
		}
	}
	logger.Debug().Int("raw", len(sol.Moves)).Int("optimized", len(sol.Optimized)).Msg("solve-complete")
	return sol, nil
}

// SolveCopy solves a clone of c and leaves c untouched.
func (s *Solver) SolveCopy(c *cube.Cube) (*Solution, error) {
	return s.Solve(c.Clone())
}

// Solve solves c with a default Solver.
func Solve(c *cube.Cube) (*Solution, error) {
	return New().Solve(c)
}
