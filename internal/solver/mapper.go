package solver

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// frame is one of the eight ways an algorithm written for a red front can be
// re-aimed at another side. Algorithms for the first layer assume white on
// top; the rest assume yellow on top.
type frame uint8

const (
	frameRedWhite frame = iota
	frameBlueWhite
	frameOrangeWhite
	frameGreenWhite
	frameRedYellow
	frameBlueYellow
	frameOrangeYellow
	frameGreenYellow
)

func frameFor(front, top cube.Color) (frame, error) {
	switch top {
	case cube.White:
		switch front {
		case cube.Red:
			return frameRedWhite, nil
		case cube.Blue:
			return frameBlueWhite, nil
		case cube.Orange:
			return frameOrangeWhite, nil
		case cube.Green:
			return frameGreenWhite, nil
		}
	case cube.Yellow:
		switch front {
		case cube.Red:
			return frameRedYellow, nil
		case cube.Blue:
			return frameBlueYellow, nil
		case cube.Orange:
			return frameOrangeYellow, nil
		case cube.Green:
			return frameGreenYellow, nil
		}
	}
	return 0, fmt.Errorf("%w: front %s, top %s", ErrInvalidOrientation, front.Name(), top.Name())
}

// relabelOrder is the face order of the rows returned by table.
var relabelOrder = [6]types.Face{types.FaceF, types.FaceR, types.FaceB, types.FaceL, types.FaceU, types.FaceD}

const (
	fF = types.FaceF
	fR = types.FaceR
	fB = types.FaceB
	fL = types.FaceL
	fU = types.FaceU
	fD = types.FaceD
)

// table returns the physical face for each of F, R, B, L, U, D.
func (f frame) table() ([6]types.Face, bool) {
	switch f {
	case frameRedWhite:
		return [6]types.Face{fF, fR, fB, fL, fU, fD}, true
	case frameBlueWhite:
		return [6]types.Face{fR, fB, fL, fF, fU, fD}, true
	case frameOrangeWhite:
		return [6]types.Face{fB, fL, fF, fR, fU, fD}, true
	case frameGreenWhite:
		return [6]types.Face{fL, fF, fR, fB, fU, fD}, true
	case frameRedYellow:
		return [6]types.Face{fF, fL, fB, fR, fD, fU}, true
	case frameBlueYellow:
		return [6]types.Face{fR, fF, fL, fB, fD, fU}, true
	case frameOrangeYellow:
		return [6]types.Face{fB, fR, fF, fL, fD, fU}, true
	case frameGreenYellow:
		return [6]types.Face{fL, fB, fR, fF, fD, fU}, true
	}
	return [6]types.Face{}, false
}

// relabel maps one face of an algorithm to the physical face it turns.
func (f frame) relabel(face types.Face) (types.Face, error) {
	t, ok := f.table()
	if !ok {
		return "", fmt.Errorf("%w: frame %d", ErrInvalidOrientation, f)
	}
	for i, from := range relabelOrder {
		if from == face {
			return t[i], nil
		}
	}
	return "", fmt.Errorf("%w: %q", cube.ErrInvalidFace, face)
}

// Localize rewrites an algorithm for the given front and top colours. Turn
// directions are kept.
func Localize(alg []types.Move, front, top cube.Color) ([]types.Move, error) {
	fr, err := frameFor(front, top)
	if err != nil {
		return nil, err
	}
	out := make([]types.Move, len(alg))
	for i, m := range alg {
		face, err := fr.relabel(m.Face)
		if err != nil {
			return nil, err
		}
		out[i] = types.Move{Face: face, Turn: m.Turn}
	}
	return out, nil
}

// Inverse returns the sequence that undoes seq.
func Inverse(seq []types.Move) []types.Move {
	out := make([]types.Move, len(seq))
	for i, m := range seq {
		out[len(seq)-1-i] = m.Inverse()
	}
	return out
}
