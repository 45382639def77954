package cube

import (
	"errors"

	"github.com/SeamusWaldron/cubesolver/internal/notation"
)

var (
	// ErrInvalidMove is returned for tokens outside the move alphabet.
	ErrInvalidMove = notation.ErrInvalidMove

	// ErrInvalidFace is returned when a face name or value is unknown.
	ErrInvalidFace = errors.New("cube: invalid face")

	// ErrInvalidLayer is returned when a layer name or value is unknown.
	ErrInvalidLayer = errors.New("cube: invalid layer")

	// ErrPieceNotFound is returned when no piece occupies a position.
	ErrPieceNotFound = errors.New("cube: piece not found")
)
