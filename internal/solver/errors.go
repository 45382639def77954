package solver

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

// Sentinel errors for the solver package.
var (
	// ErrInvalidOrientation is returned for a (front, top) colour pair that
	// is not one of the eight supported frames.
	ErrInvalidOrientation = errors.New("solver: invalid orientation")

	// ErrUnexpectedState is returned when a phase meets a configuration it
	// cannot handle or finishes without its exit condition holding.
	ErrUnexpectedState = errors.New("solver: unexpected cube state")

	// ErrRetryExhausted is returned when a phase loop hits its cap.
	ErrRetryExhausted = errors.New("solver: retry limit exhausted")
)

// PhaseError reports the phase in which solving failed.
type PhaseError struct {
	Phase cube.Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("solver: phase %s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
