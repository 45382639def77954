// Package cube models a 3x3x3 puzzle as 27 pieces with integer positions and
// per-slot sticker colours, turned by group-theoretic face rotations.
package cube

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Cube holds 27 pieces. Pointers returned by Piece, Pieces and Layer follow
// the same physical piece across moves.
type Cube struct {
	pieces [27]Piece
}

// New creates a solved cube: white top, red front, blue right.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns every piece to its solved position.
func (c *Cube) Reset() {
	for i, pos := range allPositions() {
		c.pieces[i] = newPiece(pos, solvedColors(pos))
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Pieces returns all 27 pieces.
func (c *Cube) Pieces() []*Piece {
	out := make([]*Piece, len(c.pieces))
	for i := range c.pieces {
		out[i] = &c.pieces[i]
	}
	return out
}

// Piece returns the piece at pos.
func (c *Cube) Piece(pos Vec) (*Piece, error) {
	for i := range c.pieces {
		if c.pieces[i].position == pos {
			return &c.pieces[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPieceNotFound, pos)
}

// at is Piece for positions known to be on the cube.
func (c *Cube) at(pos Vec) *Piece {
	p, err := c.Piece(pos)
	if err != nil {
		panic(err)
	}
	return p
}

// Layer returns the nine pieces of a horizontal layer.
func (c *Cube) Layer(l Layer) ([]*Piece, error) {
	if l < LayerBottom || l > LayerTop {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayer, int(l))
	}
	out := make([]*Piece, 0, 9)
	for i := range c.pieces {
		if c.pieces[i].position.Z == int(l) {
			out = append(out, &c.pieces[i])
		}
	}
	return out, nil
}

// Face returns the nine colours of a side, read head-on from the top-left.
func (c *Cube) Face(f Face) ([9]Color, error) {
	var out [9]Color
	if !f.Valid() {
		return out, fmt.Errorf("%w: %d", ErrInvalidFace, uint8(f))
	}
	for i, pos := range faceLoci[f] {
		out[i] = c.at(pos).orientation[f]
	}
	return out, nil
}

// FaceByName is Face for a face name such as "front".
func (c *Cube) FaceByName(name string) ([9]Color, error) {
	f, err := ParseFace(name)
	if err != nil {
		return [9]Color{}, err
	}
	return c.Face(f)
}

// Move applies a single notation token such as "R", "U'" or "F2".
func (c *Cube) Move(token string) error {
	m, err := notation.ParseNotation(token)
	if err != nil {
		return err
	}
	return c.ApplyMove(m)
}

// ApplyMove applies one typed move.
func (c *Cube) ApplyMove(m types.Move) error {
	turns, err := quarterTurns(m)
	if err != nil {
		return err
	}
	for _, t := range turns {
		c.turn(t)
	}
	return nil
}

// Apply applies moves in order. Every move is validated before the cube is
// touched, so an invalid sequence leaves the cube unchanged.
func (c *Cube) Apply(moves ...types.Move) error {
	for i, m := range moves {
		if _, err := quarterTurns(m); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
	}
	for _, m := range moves {
		_ = c.ApplyMove(m)
	}
	return nil
}

// ApplyNotation parses and applies a space separated sequence.
func (c *Cube) ApplyNotation(seq string) error {
	moves, err := notation.ParseSequence(seq)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

func (c *Cube) turn(t quarterTurn) {
	r := rotations[t]
	for i := range c.pieces {
		if r.affects(c.pieces[i].position) {
			c.pieces[i].turn(r)
		}
	}
}

// IsSolved reports whether every side shows a single colour.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		colors, _ := c.Face(f)
		for _, col := range colors[1:] {
			if col != colors[0] {
				return false
			}
		}
	}
	return true
}

// Notation exports the 54-character face string consumed by two-phase
// solvers: faces top, right, front, bottom, left, back.
func (c *Cube) Notation() string {
	var b strings.Builder
	b.Grow(54)
	for _, f := range exportOrder {
		colors, _ := c.Face(f)
		for _, col := range colors {
			b.WriteByte(col.FaceLetter())
		}
	}
	return b.String()
}

// String renders the six sides as an unfolded net.
func (c *Cube) String() string {
	var b strings.Builder
	row := func(f Face, r int) {
		colors, _ := c.Face(f)
		for col := 0; col < 3; col++ {
			b.WriteString(colors[r*3+col].String())
			b.WriteByte(' ')
		}
	}

	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(Top, r)
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		for _, f := range []Face{Left, Front, Right, Back} {
			row(f, r)
		}
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(Bottom, r)
		b.WriteByte('\n')
	}
	return b.String()
}

// faceLoci lists, per side, the nine piece positions in reading order.
var faceLoci = [numFaces][9]Vec{
	Top: {
		{-1, 1, 1}, {0, 1, 1}, {1, 1, 1},
		{-1, 0, 1}, {0, 0, 1}, {1, 0, 1},
		{-1, -1, 1}, {0, -1, 1}, {1, -1, 1},
	},
	Front: {
		{-1, -1, 1}, {0, -1, 1}, {1, -1, 1},
		{-1, -1, 0}, {0, -1, 0}, {1, -1, 0},
		{-1, -1, -1}, {0, -1, -1}, {1, -1, -1},
	},
	Right: {
		{1, -1, 1}, {1, 0, 1}, {1, 1, 1},
		{1, -1, 0}, {1, 0, 0}, {1, 1, 0},
		{1, -1, -1}, {1, 0, -1}, {1, 1, -1},
	},
	Back: {
		{1, 1, 1}, {0, 1, 1}, {-1, 1, 1},
		{1, 1, 0}, {0, 1, 0}, {-1, 1, 0},
		{1, 1, -1}, {0, 1, -1}, {-1, 1, -1},
	},
	Left: {
		{-1, 1, 1}, {-1, 0, 1}, {-1, -1, 1},
		{-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0},
		{-1, 1, -1}, {-1, 0, -1}, {-1, -1, -1},
	},
	Bottom: {
		{-1, -1, -1}, {0, -1, -1}, {1, -1, -1},
		{-1, 0, -1}, {0, 0, -1}, {1, 0, -1},
		{-1, 1, -1}, {0, 1, -1}, {1, 1, -1},
	},
}
