package notation

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// Describe renders a move as a spoken instruction, for a holder looking at
// the front face with the top face up.
//
//	R  -> "right up"          R' -> "right down"
//	L  -> "left down"         L' -> "left up"
//	U  -> "top to the left"   U' -> "top to the right"
//	D  -> "bottom to the right"
//	F  -> "front clockwise"   B  -> "back clockwise"
//
// Half turns append " twice".
func Describe(m types.Move) string {
	base := m
	if m.Turn == types.Turn180 {
		base.Turn = types.TurnCW
	}

	var s string
	switch base.Face {
	case types.FaceR:
		s = pick(base.Turn, "right up", "right down")
	case types.FaceL:
		s = pick(base.Turn, "left down", "left up")
	case types.FaceU:
		s = pick(base.Turn, "top to the left", "top to the right")
	case types.FaceD:
		s = pick(base.Turn, "bottom to the right", "bottom to the left")
	case types.FaceF:
		s = pick(base.Turn, "front clockwise", "front anti-clockwise")
	case types.FaceB:
		s = pick(base.Turn, "back clockwise", "back anti-clockwise")
	default:
		return m.Notation()
	}

	if m.Turn == types.Turn180 {
		s += " twice"
	}
	return s
}

// DescribeSequence describes each move in order.
func DescribeSequence(moves []types.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = Describe(m)
	}
	return out
}

func pick(t types.Turn, cw, ccw string) string {
	if t == types.TurnCCW {
		return ccw
	}
	return cw
}
