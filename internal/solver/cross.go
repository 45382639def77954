package solver

import "github.com/SeamusWaldron/cubesolver/internal/cube"

// whiteCross brings each white edge down to the bottom layer, turns it under
// its own center and inserts it into the top layer.
func (r *run) whiteCross() error {
	_, err := bounded(12, func() (bool, error) {
		p := r.pick(func(p *cube.Piece) bool {
			return p.Kind() == cube.Edge && p.Has(cube.White)
		})
		if p == nil {
			return true, nil
		}

		pos := p.Position()
		switch pos.Z {
		case 1:
			if err := r.alg(algDropEdge, r.centerColor(xy(pos)), cube.White); err != nil {
				return false, err
			}
		case 0:
			a, b := sides(pos)
			front := a
			if isRightOf(a, b) {
				front = b
			}
			if err := r.alg(algDropRight, r.centerColor(front), cube.White); err != nil {
				return false, err
			}
		}

		side := otherColor(p, cube.White)
		err := r.turnBottomUntil(func() bool {
			return r.centerColor(xy(p.Position())) == side
		})
		if err != nil {
			return false, err
		}

		alg := algInsertEdge
		if p.Color(cube.Bottom) == cube.White {
			alg = algDropEdge
		}
		return false, r.alg(alg, side, cube.White)
	})
	return err
}
