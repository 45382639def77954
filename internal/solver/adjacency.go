package solver

import "github.com/SeamusWaldron/cubesolver/internal/cube"

// dir is a horizontal direction from the vertical axis, seen from above.
type dir struct {
	x, y int
}

var (
	dirFront = dir{0, -1}
	dirRight = dir{1, 0}
	dirBack  = dir{0, 1}
	dirLeft  = dir{-1, 0}
)

// directions in counter-clockwise order seen from above.
var directions = []dir{dirFront, dirRight, dirBack, dirLeft}

func ccw(d dir) dir { return dir{-d.y, d.x} }

func cw(d dir) dir { return dir{d.y, -d.x} }

// isRightOf reports whether a is to the right of b for a holder facing b
// with white on top.
func isRightOf(a, b dir) bool {
	return ccw(b) == a
}

// face returns the side a direction points at.
func (d dir) face() cube.Face {
	switch d {
	case dirFront:
		return cube.Front
	case dirRight:
		return cube.Right
	case dirBack:
		return cube.Back
	default:
		return cube.Left
	}
}

func xy(v cube.Vec) dir {
	return dir{v.X, v.Y}
}

// sides splits the horizontal offset of a corner or middle edge into the
// two adjacent center directions.
func sides(v cube.Vec) (a, b dir) {
	return dir{v.X, 0}, dir{0, v.Y}
}

// cornerFront is the side to face so that a top or bottom corner at v sits
// on the front-right column with white on top.
func cornerFront(v cube.Vec) dir {
	a, b := sides(v)
	if isRightOf(a, b) {
		return b
	}
	return a
}
