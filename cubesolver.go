// Package cubesolver models a 3x3x3 Rubik's Cube as 27 pieces and solves it
// with the beginner's layer-by-layer method.
//
// # Features
//
//   - Piece-level cube model with standard move notation
//   - Seven-phase solver with a move-list optimizer
//   - Solving phase detection and monotonic progress tracking
//   - Random scramble generation
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	cube := cubesolver.NewCube()
//	if err := cube.ApplyNotation("R U R' U' F2 D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	solution, err := cubesolver.Solve(cube)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", solution)
//	fmt.Println("Solved:", cube.IsSolved())
//
// Solve solves the cube in place. Use SolveCopy to keep the input untouched.
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubesolver.R      // Right clockwise
//	cubesolver.RPrime // Right counter-clockwise
//	cubesolver.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// # Solving Phases
//
// The solver works through these phases in order, each leaving the cube in
// the corresponding milestone:
//
//   - PhaseWhiteCross: White edges placed around the white centre
//   - PhaseFirstLayer: White corners placed
//   - PhaseSecondLayer: Middle-layer edges placed
//   - PhaseLastLayerCross: Yellow cross formed
//   - PhaseLastLayerEdges: Yellow edges matched to their centres
//   - PhaseLastLayerCorners: Yellow corners in their positions
//   - PhaseSolved: Cube is solved
package cubesolver

import (
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Cube is a 3x3x3 cube made of 27 pieces.
type Cube = cube.Cube

// Piece is one of the 27 cubies.
type Piece = cube.Piece

// Tracker follows a cube through a move sequence and reports the phases it
// reaches.
type Tracker = cube.Tracker

// Phase is a solving milestone, ordered from PhaseScrambled to PhaseSolved.
type Phase = cube.Phase

// Move is a single face turn.
type Move = types.Move

// Solution lists the moves of a solve, grouped by phase.
type Solution = solver.Solution

// Solving phases.
const (
	PhaseScrambled        = cube.PhaseScrambled
	PhaseWhiteCross       = cube.PhaseWhiteCross
	PhaseFirstLayer       = cube.PhaseFirstLayer
	PhaseSecondLayer      = cube.PhaseSecondLayer
	PhaseLastLayerCross   = cube.PhaseLastLayerCross
	PhaseLastLayerEdges   = cube.PhaseLastLayerEdges
	PhaseLastLayerCorners = cube.PhaseLastLayerCorners
	PhaseSolved           = cube.PhaseSolved
)

// NewCube returns a solved cube.
func NewCube() *Cube {
	return cube.New()
}

// NewTracker creates a tracker starting from a copy of start.
func NewTracker(start *Cube) *Tracker {
	return cube.NewTracker(start)
}

// ParseMoves parses a space-separated move sequence such as "R U' F2".
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats moves as space-separated notation.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}
