package solver

import (
	"github.com/samber/lo"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var moveD = types.Move{Face: types.FaceD, Turn: types.TurnCW}

// run is the state of one solve: the cube and every move applied to it.
type run struct {
	cube  *cube.Cube
	moves []types.Move
}

func (r *run) apply(moves ...types.Move) error {
	if err := r.cube.Apply(moves...); err != nil {
		return err
	}
	r.moves = append(r.moves, moves...)
	return nil
}

// alg applies a canonical algorithm re-aimed for front and top.
func (r *run) alg(alg []types.Move, front, top cube.Color) error {
	moves, err := Localize(alg, front, top)
	if err != nil {
		return err
	}
	return r.apply(moves...)
}

// turnBottomUntil turns the bottom layer until cond holds, checking at most
// four times.
func (r *run) turnBottomUntil(cond func() bool) error {
	_, err := bounded(4, func() (bool, error) {
		if cond() {
			return true, nil
		}
		return false, r.apply(moveD)
	})
	return err
}

// piece returns the piece at a position that always exists.
func (r *run) piece(v cube.Vec) *cube.Piece {
	p, err := r.cube.Piece(v)
	if err != nil {
		panic(err)
	}
	return p
}

// centerColor returns the colour of the middle-layer center in direction d.
func (r *run) centerColor(d dir) cube.Color {
	return r.piece(cube.Vec{X: d.x, Y: d.y, Z: 0}).Color(d.face())
}

// directionOf finds the side whose center shows colour c.
func (r *run) directionOf(c cube.Color) (dir, bool) {
	return lo.Find(directions, func(d dir) bool {
		return r.centerColor(d) == c
	})
}

// pick returns the unsolved piece matching pred with the smallest
// signature, or nil.
func (r *run) pick(pred func(p *cube.Piece) bool) *cube.Piece {
	candidates := lo.Filter(r.cube.Pieces(), func(p *cube.Piece, _ int) bool {
		return pred(p) && !p.IsSolved()
	})
	if len(candidates) == 0 {
		return nil
	}
	return lo.MinBy(candidates, func(a, b *cube.Piece) bool {
		return a.Signature().Less(b.Signature())
	})
}

// otherColor returns the first colour of an edge that is not c.
func otherColor(p *cube.Piece, c cube.Color) cube.Color {
	for _, col := range p.Colors() {
		if col != c {
			return col
		}
	}
	return cube.NoColor
}
