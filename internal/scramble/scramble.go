// Package scramble generates random move sequences.
package scramble

import (
	"lukechampine.com/frand"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// DefaultLength is the number of moves in a scramble when none is given.
const DefaultLength = 20

// Source supplies random integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Option configures a Generator.
type Option func(*Generator)

// WithHalfTurns lets scrambles contain half turns.
func WithHalfTurns(enabled bool) Option {
	return func(g *Generator) {
		g.halfTurns = enabled
	}
}

// WithSeed makes the generator deterministic.
func WithSeed(seed []byte) Option {
	return func(g *Generator) {
		key := make([]byte, 32)
		copy(key, seed)
		g.src = frand.NewCustom(key, 1024, 12)
	}
}

// WithSource replaces the random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// Generator produces scrambles. Consecutive moves never turn the same face.
type Generator struct {
	src       Source
	halfTurns bool
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return frand.Intn(n) }

// New creates a generator backed by frand's global generator.
func New(opts ...Option) *Generator {
	g := &Generator{src: globalSource{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns n random moves. n <= 0 yields DefaultLength moves.
func (g *Generator) Generate(n int) []types.Move {
	if n <= 0 {
		n = DefaultLength
	}

	turns := []types.Turn{types.TurnCW, types.TurnCCW}
	if g.halfTurns {
		turns = append(turns, types.Turn180)
	}

	moves := make([]types.Move, 0, n)
	var last types.Face
	for len(moves) < n {
		face := types.Faces[g.src.Intn(len(types.Faces))]
		if face == last {
			continue
		}
		last = face
		moves = append(moves, types.Move{Face: face, Turn: turns[g.src.Intn(len(turns))]})
	}
	return moves
}

// Generate returns n random quarter-turn moves from the global generator.
func Generate(n int) []types.Move {
	return New().Generate(n)
}
