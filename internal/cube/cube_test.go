package cube

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
		t.Log(c.String())
	}
	if got := len(c.Pieces()); got != 27 {
		t.Errorf("cube has %d pieces, want 27", got)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, f := range types.Faces {
		c := New()
		if err := c.Move(string(f)); err != nil {
			t.Fatal(err)
		}
		if c.IsSolved() {
			t.Errorf("cube should not be solved after %s", f)
		}
	}
}

func TestFourQuarterTurnsReturnToSolved(t *testing.T) {
	for _, f := range types.Faces {
		for _, suffix := range []string{"", "'"} {
			c := New()
			for i := 0; i < 4; i++ {
				if err := c.Move(string(f) + suffix); err != nil {
					t.Fatal(err)
				}
			}
			if !c.IsSolved() {
				t.Errorf("%s%s x 4 should return to solved", f, suffix)
				t.Log(c.String())
			}
		}
	}
}

func TestPrimeUndoesMove(t *testing.T) {
	for _, f := range types.Faces {
		c := New()
		_ = c.Move(string(f))
		_ = c.Move(string(f) + "'")
		if !c.IsSolved() {
			t.Errorf("%s %s' should return to solved", f, f)
		}
	}
}

func TestDoubleEqualsTwoQuarters(t *testing.T) {
	for _, f := range types.Faces {
		a, b := New(), New()
		_ = a.ApplyNotation("R U F' " + string(f) + "2")
		_ = b.ApplyNotation("R U F' " + string(f) + " " + string(f))
		if a.Notation() != b.Notation() {
			t.Errorf("%s2 differs from %s %s", f, f, f)
		}
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	c := New()
	for i := 0; i < 6; i++ {
		if err := c.ApplyNotation("R U R' U'"); err != nil {
			t.Fatal(err)
		}
	}
	if !c.IsSolved() {
		t.Error("(R U R' U') x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestSolvedNotation(t *testing.T) {
	want := strings.Repeat("U", 9) + strings.Repeat("R", 9) + strings.Repeat("F", 9) +
		strings.Repeat("D", 9) + strings.Repeat("L", 9) + strings.Repeat("B", 9)
	if got := New().Notation(); got != want {
		t.Errorf("Notation() = %s, want %s", got, want)
	}
}

func TestRMoveFaces(t *testing.T) {
	c := New()
	if err := c.Move("R"); err != nil {
		t.Fatal(err)
	}

	front, err := c.Face(Front)
	if err != nil {
		t.Fatal(err)
	}
	top, _ := c.FaceByName("top")
	for row := 0; row < 3; row++ {
		if front[row*3] != Red || front[row*3+1] != Red {
			t.Errorf("front row %d left columns = %v, want red", row, front[row*3:row*3+3])
		}
		if front[row*3+2] != Yellow {
			t.Errorf("front row %d right column = %v, want yellow", row, front[row*3+2])
		}
		if top[row*3+2] != Red {
			t.Errorf("top row %d right column = %v, want red", row, top[row*3+2])
		}
	}

	right, _ := c.Face(Right)
	for i, col := range right {
		if col != Blue {
			t.Errorf("right[%d] = %v, want blue", i, col)
		}
	}
}

func TestInvalidInputs(t *testing.T) {
	c := New()
	if err := c.Move("X"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Move(X) error = %v, want ErrInvalidMove", err)
	}
	if err := c.ApplyMove(types.Move{Face: types.FaceR, Turn: 5}); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("ApplyMove(turn 5) error = %v, want ErrInvalidMove", err)
	}
	if _, err := c.Face(Face(9)); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("Face(9) error = %v, want ErrInvalidFace", err)
	}
	if _, err := c.FaceByName("side"); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("FaceByName(side) error = %v, want ErrInvalidFace", err)
	}
	if _, err := c.Layer(Layer(3)); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("Layer(3) error = %v, want ErrInvalidLayer", err)
	}
	if _, err := ParseLayer("upper"); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("ParseLayer(upper) error = %v, want ErrInvalidLayer", err)
	}
	if _, err := c.Piece(Vec{2, 0, 0}); !errors.Is(err, ErrPieceNotFound) {
		t.Errorf("Piece(2,0,0) error = %v, want ErrPieceNotFound", err)
	}
	if !c.IsSolved() {
		t.Error("failed operations must not change the cube")
	}
}

func TestApplyIsAtomic(t *testing.T) {
	c := New()
	err := c.Apply(types.Move{Face: types.FaceR, Turn: types.TurnCW}, types.Move{Face: "Q", Turn: types.TurnCW})
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("Apply error = %v, want ErrInvalidMove", err)
	}
	if !c.IsSolved() {
		t.Error("an invalid sequence should leave the cube unchanged")
	}
}

func TestLayers(t *testing.T) {
	c := New()
	_ = c.ApplyNotation("R U F")
	for _, l := range []Layer{LayerTop, LayerMiddle, LayerBottom} {
		pieces, err := c.Layer(l)
		if err != nil {
			t.Fatal(err)
		}
		if len(pieces) != 9 {
			t.Errorf("layer %s has %d pieces", l, len(pieces))
		}
		for _, p := range pieces {
			if p.Position().Z != int(l) {
				t.Errorf("piece %s reported in layer %s", p.Position(), l)
			}
		}
	}
}

func TestPieceIdentityFollowsMoves(t *testing.T) {
	c := New()
	p, err := c.Piece(Vec{1, -1, -1})
	if err != nil {
		t.Fatal(err)
	}
	sig := p.Signature()
	_ = c.Move("R")
	if p.Position() != (Vec{1, -1, 1}) {
		t.Errorf("after R the front-bottom-right corner is at %s, want (1,-1,1)", p.Position())
	}
	if p.Signature() != sig {
		t.Error("signature changed after a move")
	}
	if p.Color(Top) != Red || p.Color(Front) != Yellow {
		t.Errorf("orientation after R = %v", p.Orientation())
	}
}

func TestCanonicalMaps(t *testing.T) {
	c := New()
	seen := make(map[Signature]bool)
	for _, p := range c.Pieces() {
		if seen[p.Signature()] {
			t.Errorf("duplicate signature %s", p.Signature())
		}
		seen[p.Signature()] = true
		if !p.IsSolved() {
			t.Errorf("piece %s at %s not solved on a new cube", p.Signature(), p.Position())
		}
	}

	core, _ := c.Piece(Vec{0, 0, 0})
	if core.Kind() != Core || len(core.Colors()) != 0 {
		t.Errorf("core piece = %v %v", core.Kind(), core.Colors())
	}
	pos, ok := SolvedPosition(Signature{White, Red, Blue})
	if !ok || pos != (Vec{1, -1, 1}) {
		t.Errorf("SolvedPosition(WRB) = %s %v", pos, ok)
	}
}

func randomMoves(tokens []uint8) []types.Move {
	moves := make([]types.Move, len(tokens))
	for i, tok := range tokens {
		moves[i] = types.MoveFromToken(tok % 18)
	}
	return moves
}

func TestPositionsStayBijective(t *testing.T) {
	f := func(tokens []uint8) bool {
		c := New()
		if err := c.Apply(randomMoves(tokens)...); err != nil {
			return false
		}
		seen := make(map[Vec]bool, 27)
		for _, p := range c.Pieces() {
			v := p.Position()
			if v.X < -1 || v.X > 1 || v.Y < -1 || v.Y > 1 || v.Z < -1 || v.Z > 1 || seen[v] {
				return false
			}
			seen[v] = true
		}
		return len(seen) == 27
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestColorsAreConserved(t *testing.T) {
	f := func(tokens []uint8) bool {
		c := New()
		before := make(map[Signature]int)
		for _, p := range c.Pieces() {
			before[p.Signature()] = len(p.Colors())
		}
		_ = c.Apply(randomMoves(tokens)...)
		for _, p := range c.Pieces() {
			n, ok := before[p.Signature()]
			if !ok || n != len(p.Colors()) || Kind(n) != p.Kind() {
				return false
			}
		}
		counts := make(map[Color]int)
		for _, face := range Faces {
			colors, _ := c.Face(face)
			for _, col := range colors {
				counts[col]++
			}
		}
		for _, col := range Colors {
			if counts[col] != 9 {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestInverseSequenceRestores(t *testing.T) {
	f := func(tokens []uint8) bool {
		moves := randomMoves(tokens)
		c := New()
		_ = c.Apply(moves...)
		for i := len(moves) - 1; i >= 0; i-- {
			_ = c.ApplyMove(moves[i].Inverse())
		}
		return c.IsSolved()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	clone := c.Clone()
	_ = clone.Move("F")
	if !c.IsSolved() {
		t.Error("moving a clone changed the original")
	}
	clone.Reset()
	if !clone.IsSolved() {
		t.Error("Reset should solve the cube")
	}
}

func TestStringNet(t *testing.T) {
	lines := strings.Split(strings.TrimRight(New().String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("net has %d lines, want 9", len(lines))
	}
	if !strings.HasPrefix(lines[3], "G G G R R R B B B O O O") {
		t.Errorf("middle band = %q", lines[3])
	}
}
