package scramble

import (
	"testing"

	"github.com/matryer/is"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func TestGenerateLength(t *testing.T) {
	is := is.New(t)
	is.Equal(len(Generate(0)), DefaultLength)
	is.Equal(len(Generate(35)), 35)
}

func TestNoRepeatedFaces(t *testing.T) {
	is := is.New(t)
	moves := New(WithHalfTurns(true)).Generate(500)
	for i := 1; i < len(moves); i++ {
		is.True(moves[i].Face != moves[i-1].Face)
		is.True(moves[i].Valid())
	}
}

func TestQuarterTurnsOnlyByDefault(t *testing.T) {
	is := is.New(t)
	for _, m := range Generate(200) {
		is.True(m.Turn != types.Turn180)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	is := is.New(t)
	a := New(WithSeed([]byte("cube"))).Generate(40)
	b := New(WithSeed([]byte("cube"))).Generate(40)
	is.Equal(a, b)
}

type fixedSource []int

func (f *fixedSource) Intn(n int) int {
	v := (*f)[0] % n
	*f = (*f)[1:]
	return v
}

func TestCustomSource(t *testing.T) {
	is := is.New(t)
	// R, then R again is skipped, then U'.
	src := fixedSource{0, 0, 0, 2, 1}
	moves := New(WithSource(&src)).Generate(2)
	is.Equal(moves, []types.Move{
		{Face: types.FaceR, Turn: types.TurnCW},
		{Face: types.FaceU, Turn: types.TurnCCW},
	})
}
