package solver

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

// secondLayer inserts the four middle edges, working with yellow on top.
func (r *run) secondLayer() error {
	_, err := bounded(16, func() (bool, error) {
		p := r.pick(func(p *cube.Piece) bool {
			return p.Kind() == cube.Edge && !p.Has(cube.White) && !p.Has(cube.Yellow)
		})
		if p == nil {
			return true, nil
		}

		if pos := p.Position(); pos.Z == 0 {
			a, b := sides(pos)
			front := b
			if isRightOf(a, b) {
				front = a
			}
			if err := r.alg(algRightInsert, r.centerColor(front), cube.Yellow); err != nil {
				return false, err
			}
		}

		err := r.turnBottomUntil(func() bool {
			d := xy(p.Position())
			return p.Color(d.face()) == r.centerColor(d)
		})
		if err != nil {
			return false, err
		}

		d := xy(p.Position())
		target, ok := r.directionOf(p.Color(cube.Bottom))
		if !ok {
			return false, fmt.Errorf("%w: edge %s has no matching center", ErrUnexpectedState, p.Signature())
		}

		alg := algRightInsert
		if isRightOf(target, d) {
			alg = algLeftInsert
		}
		return false, r.alg(alg, r.centerColor(d), cube.Yellow)
	})
	return err
}
