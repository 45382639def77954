package cube

import (
	"fmt"
	"strings"
)

// Face names both a side of the cube and the orientation slot that holds the
// sticker facing that side.
type Face uint8

const (
	Top Face = iota
	Front
	Right
	Back
	Left
	Bottom

	numFaces
)

// Faces lists the faces in slot order.
var Faces = [...]Face{Top, Front, Right, Back, Left, Bottom}

// exportOrder is the face order of the 54-character face string.
var exportOrder = [...]Face{Top, Right, Front, Bottom, Left, Back}

func (f Face) String() string {
	switch f {
	case Top:
		return "top"
	case Front:
		return "front"
	case Right:
		return "right"
	case Back:
		return "back"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("face(%d)", uint8(f))
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f < numFaces
}

// SolvedColor returns the colour a face shows on a solved cube.
func (f Face) SolvedColor() Color {
	switch f {
	case Top:
		return White
	case Front:
		return Red
	case Right:
		return Blue
	case Back:
		return Orange
	case Left:
		return Green
	case Bottom:
		return Yellow
	default:
		return NoColor
	}
}

// ParseFace resolves a face name such as "top" or "Front".
func ParseFace(name string) (Face, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return Top, nil
	case "front":
		return Front, nil
	case "right":
		return Right, nil
	case "back":
		return Back, nil
	case "left":
		return Left, nil
	case "bottom":
		return Bottom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, name)
}

// Layer is a horizontal slab of nine pieces.
type Layer int

const (
	LayerTop    Layer = 1
	LayerMiddle Layer = 0
	LayerBottom Layer = -1
)

func (l Layer) String() string {
	switch l {
	case LayerTop:
		return "top"
	case LayerMiddle:
		return "middle"
	case LayerBottom:
		return "bottom"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

// ParseLayer resolves "top", "middle" or "bottom".
func ParseLayer(name string) (Layer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return LayerTop, nil
	case "middle":
		return LayerMiddle, nil
	case "bottom":
		return LayerBottom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLayer, name)
}
