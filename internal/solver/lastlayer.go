package solver

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

func (r *run) bottomEdge(d dir) *cube.Piece {
	return r.piece(cube.Vec{X: d.x, Y: d.y, Z: -1})
}

// yellowDown returns the directions whose bottom edge shows yellow downwards.
func (r *run) yellowDown() []dir {
	return lo.Filter(directions, func(d dir, _ int) bool {
		return r.bottomEdge(d).Color(cube.Bottom) == cube.Yellow
	})
}

// lastLayerCross orients the bottom edges with a single dot, line or L case.
func (r *run) lastLayerCross() error {
	up := r.yellowDown()
	switch len(up) {
	case 4:
		return nil
	case 0:
		if err := r.alg(algDot, cube.Red, cube.Yellow); err != nil {
			return err
		}
	case 2:
		down := lo.Without(directions, up...)
		if up[0] == ccw(ccw(up[1])) {
			if err := r.alg(algLine, r.centerColor(down[0]), cube.Yellow); err != nil {
				return err
			}
			break
		}
		front, _ := lo.Find(down, func(d dir) bool { return lo.Contains(down, cw(d)) })
		if err := r.alg(algEll, r.centerColor(front), cube.Yellow); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %d bottom edges oriented", ErrUnexpectedState, len(up))
	}

	if n := len(r.yellowDown()); n != 4 {
		return fmt.Errorf("%w: %d bottom edges oriented after cross", ErrUnexpectedState, n)
	}
	return nil
}

func (r *run) edgeMatches(d dir) bool {
	return r.bottomEdge(d).Color(d.face()) == r.centerColor(d)
}

// lastLayerEdges permutes the bottom edges. Turning the bottom layer finds
// an adjacent matching pair; the swap algorithm then fixes the other two.
func (r *run) lastLayerEdges() error {
	_, err := bounded(4, func() (bool, error) {
		for i := 0; i < 4; i++ {
			good := lo.Filter(directions, func(d dir, _ int) bool { return r.edgeMatches(d) })
			if len(good) == 4 {
				return true, nil
			}
			if len(good) == 2 && (ccw(good[0]) == good[1] || ccw(good[1]) == good[0]) {
				bad := lo.Without(directions, good...)
				front, _ := lo.Find(bad, func(d dir) bool { return lo.Contains(bad, ccw(d)) })
				return false, r.alg(algSwapEdges, r.centerColor(front), cube.Yellow)
			}
			if err := r.apply(moveD); err != nil {
				return false, err
			}
		}
		return false, r.alg(algSwapEdges, cube.Red, cube.Yellow)
	})
	return err
}

// lastLayerCorners cycles the bottom corners into place around the one
// already placed, or from the red side when none is.
func (r *run) lastLayerCorners() error {
	_, err := bounded(6, func() (bool, error) {
		placed := lo.Filter(r.cube.Pieces(), func(p *cube.Piece, _ int) bool {
			return p.Kind() == cube.Corner && p.Position().Z == -1 && p.IsPlaced()
		})

		switch len(placed) {
		case 4:
			return true, nil
		case 1:
			pos := xy(placed[0].Position())
			front, ok := lo.Find(directions, func(d dir) bool {
				return dir{d.x + cw(d).x, d.y + cw(d).y} == pos
			})
			if !ok {
				return false, fmt.Errorf("%w: corner at %s", ErrUnexpectedState, placed[0].Position())
			}
			return false, r.alg(algCycleCorner, r.centerColor(front), cube.Yellow)
		case 0:
			return false, r.alg(algCycleCorner, cube.Red, cube.Yellow)
		}
		return false, fmt.Errorf("%w: %d bottom corners placed", ErrUnexpectedState, len(placed))
	})
	return err
}

var twistAnchor = cube.Vec{X: -1, Y: -1, Z: -1}

// lastLayerOrientation twists each bottom corner in turn at the front-left
// slot, then turns the bottom layer home.
func (r *run) lastLayerOrientation() error {
	for i := 0; i < 4; i++ {
		_, err := bounded(7, func() (bool, error) {
			if r.piece(twistAnchor).Color(cube.Bottom) == cube.Yellow {
				return true, nil
			}
			return false, r.alg(algTwist, cube.Red, cube.Yellow)
		})
		if err != nil {
			return err
		}
		if err := r.alg(algTopTurn, cube.Red, cube.Yellow); err != nil {
			return err
		}
	}

	return r.turnBottomUntil(r.cube.IsSolved)
}
