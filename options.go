package cubesolver

import (
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubesolver/internal/scramble"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
)

// Option configures Solve and SolveCopy.
type Option func(*config)

type config struct {
	solver []solver.Option
}

func defaultConfig() *config {
	return &config{}
}

// WithOptimize enables or disables the final move-list optimization.
// When enabled (default), Solution.Optimized holds the shortened sequence.
func WithOptimize(enabled bool) Option {
	return func(c *config) {
		c.solver = append(c.solver, solver.WithOptimize(enabled))
	}
}

// WithLogger sets the logger that receives per-phase debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.solver = append(c.solver, solver.WithLogger(l))
	}
}

// WithPhaseCallback registers a callback invoked after each phase with the
// moves that phase applied.
func WithPhaseCallback(cb func(phase Phase, moves []Move)) Option {
	return func(c *config) {
		c.solver = append(c.solver, solver.WithPhaseCallback(cb))
	}
}

func newSolver(opts []Option) *solver.Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return solver.New(cfg.solver...)
}

// Solve solves c in place.
func Solve(c *Cube, opts ...Option) (*Solution, error) {
	return newSolver(opts).Solve(c)
}

// SolveCopy solves a copy of c and leaves c unchanged.
func SolveCopy(c *Cube, opts ...Option) (*Solution, error) {
	return newSolver(opts).SolveCopy(c)
}

// Scramble returns n random quarter turns, never turning the same face twice
// in a row. n <= 0 yields a 20-move scramble.
func Scramble(n int) []Move {
	return scramble.Generate(n)
}
