package solver

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

// firstLayer places the four white corners. A corner stuck in the top layer
// is dropped out first; a bottom corner is turned beneath its slot and
// inserted from whichever side its white sticker faces.
func (r *run) firstLayer() error {
	_, err := bounded(16, func() (bool, error) {
		p := r.pick(func(p *cube.Piece) bool {
			return p.Kind() == cube.Corner && p.Has(cube.White)
		})
		if p == nil {
			return true, nil
		}

		if p.Position().Z == 1 {
			if err := r.alg(algDropRight, r.centerColor(cornerFront(p.Position())), cube.White); err != nil {
				return false, err
			}
		}

		target, ok := cube.SolvedPosition(p.Signature())
		if !ok {
			return false, fmt.Errorf("%w: no home for corner %s", ErrUnexpectedState, p.Signature())
		}
		err := r.turnBottomUntil(func() bool {
			return xy(p.Position()) == xy(target)
		})
		if err != nil {
			return false, err
		}

		pos := p.Position()
		if p.Color(cube.Bottom) == cube.White {
			return false, r.alg(algFlipCorner, r.centerColor(cornerFront(pos)), cube.White)
		}

		a, b := sides(pos)
		alg := algDropRight
		front := a
		if p.Color(a.face()) == r.centerColor(a) {
			if isRightOf(a, b) {
				alg = algInsertLeft
			}
		} else {
			front = b
			if !isRightOf(a, b) {
				alg = algInsertLeft
			}
		}
		return false, r.alg(alg, r.centerColor(front), cube.White)
	})
	return err
}
