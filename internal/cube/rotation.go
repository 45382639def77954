package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Vec is an integer position with components in {-1, 0, 1}.
// X grows to the right, Y grows towards the back, Z grows towards the top.
type Vec struct {
	X, Y, Z int
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// quarterTurn is one of the twelve primitive rotations. Half turns are two
// applications of the clockwise primitive.
type quarterTurn uint8

const (
	turnR quarterTurn = iota
	turnRPrime
	turnL
	turnLPrime
	turnU
	turnUPrime
	turnD
	turnDPrime
	turnF
	turnFPrime
	turnB
	turnBPrime

	numQuarterTurns
)

// rotation holds the action of a quarter turn on pieces in its slice:
// position' = matrix * position, and the colour in slot i moves to perm[i].
type rotation struct {
	matrix [3][3]int
	perm   [numFaces]Face
	axis   int // 0 x, 1 y, 2 z
	layer  int
}

func (r rotation) affects(v Vec) bool {
	return [3]int{v.X, v.Y, v.Z}[r.axis] == r.layer
}

func (r rotation) position(v Vec) Vec {
	p := [3]int{v.X, v.Y, v.Z}
	var out [3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i] += r.matrix[i][j] * p[j]
		}
	}
	return Vec{out[0], out[1], out[2]}
}

func (r rotation) orientation(o [numFaces]Color) [numFaces]Color {
	var out [numFaces]Color
	for i, c := range o {
		out[r.perm[i]] = c
	}
	return out
}

func (r rotation) inverse() rotation {
	inv := rotation{axis: r.axis, layer: r.layer}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv.matrix[i][j] = r.matrix[j][i]
		}
	}
	for i, to := range r.perm {
		inv.perm[to] = Face(i)
	}
	return inv
}

// Clockwise turns, viewed facing the turned side.
var (
	rotR = rotation{
		matrix: [3][3]int{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}},
		perm:   [numFaces]Face{Back, Top, Right, Bottom, Left, Front},
		axis:   0, layer: 1,
	}
	rotL = rotation{
		matrix: [3][3]int{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
		perm:   [numFaces]Face{Front, Bottom, Right, Top, Left, Back},
		axis:   0, layer: -1,
	}
	rotU = rotation{
		matrix: [3][3]int{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
		perm:   [numFaces]Face{Top, Left, Front, Right, Back, Bottom},
		axis:   2, layer: 1,
	}
	rotD = rotation{
		matrix: [3][3]int{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		perm:   [numFaces]Face{Top, Right, Back, Left, Front, Bottom},
		axis:   2, layer: -1,
	}
	rotF = rotation{
		matrix: [3][3]int{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
		perm:   [numFaces]Face{Right, Front, Bottom, Back, Top, Left},
		axis:   1, layer: -1,
	}
	rotB = rotation{
		matrix: [3][3]int{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
		perm:   [numFaces]Face{Left, Front, Top, Back, Bottom, Right},
		axis:   1, layer: 1,
	}
)

var rotations = [numQuarterTurns]rotation{
	turnR: rotR, turnRPrime: rotR.inverse(),
	turnL: rotL, turnLPrime: rotL.inverse(),
	turnU: rotU, turnUPrime: rotU.inverse(),
	turnD: rotD, turnDPrime: rotD.inverse(),
	turnF: rotF, turnFPrime: rotF.inverse(),
	turnB: rotB, turnBPrime: rotB.inverse(),
}

// quarterTurns expands a move into primitives.
func quarterTurns(m types.Move) ([]quarterTurn, error) {
	var cw, ccw quarterTurn
	switch m.Face {
	case types.FaceR:
		cw, ccw = turnR, turnRPrime
	case types.FaceL:
		cw, ccw = turnL, turnLPrime
	case types.FaceU:
		cw, ccw = turnU, turnUPrime
	case types.FaceD:
		cw, ccw = turnD, turnDPrime
	case types.FaceF:
		cw, ccw = turnF, turnFPrime
	case types.FaceB:
		cw, ccw = turnB, turnBPrime
	default:
		return nil, fmt.Errorf("%w: face %q", ErrInvalidMove, m.Face)
	}

	switch m.Turn {
	case types.TurnCW:
		return []quarterTurn{cw}, nil
	case types.TurnCCW:
		return []quarterTurn{ccw}, nil
	case types.Turn180:
		return []quarterTurn{cw, cw}, nil
	}
	return nil, fmt.Errorf("%w: turn %d", ErrInvalidMove, m.Turn)
}
