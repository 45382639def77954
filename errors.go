package cubesolver

import (
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
)

// Sentinel errors for the cubesolver package.
var (
	// Input errors
	ErrInvalidMove   = cube.ErrInvalidMove
	ErrInvalidFace   = cube.ErrInvalidFace
	ErrInvalidLayer  = cube.ErrInvalidLayer
	ErrPieceNotFound = cube.ErrPieceNotFound

	// Solver errors
	ErrInvalidOrientation = solver.ErrInvalidOrientation
	ErrUnexpectedState    = solver.ErrUnexpectedState
	ErrRetryExhausted     = solver.ErrRetryExhausted
)

// PhaseError reports the phase in which solving failed. It wraps
// ErrUnexpectedState or ErrRetryExhausted.
type PhaseError = solver.PhaseError
