package solver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/scramble"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func scrambled(t *testing.T, moves []types.Move) *cube.Cube {
	t.Helper()
	c := cube.New()
	if err := c.Apply(moves...); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSolveRandomScrambles(t *testing.T) {
	is := is.New(t)
	s := New(WithLogger(zerolog.Nop()))

	for i := 0; i < 150; i++ {
		gen := scramble.New(scramble.WithSeed([]byte(fmt.Sprintf("seed-%d", i))), scramble.WithHalfTurns(i%2 == 0))
		moves := gen.Generate(20 + i%21)
		c := scrambled(t, moves)
		start := c.Clone()

		sol, err := s.Solve(c)
		if err != nil {
			t.Fatalf("scramble %q: %v", notation.FormatSequence(moves), err)
		}
		is.True(c.IsSolved())

		raw := start.Clone()
		is.NoErr(raw.Apply(sol.Moves...))
		is.True(raw.IsSolved()) // raw moves solve the scramble

		opt := start.Clone()
		is.NoErr(opt.Apply(sol.Optimized...))
		is.True(opt.IsSolved()) // optimized moves solve the scramble
		is.True(len(sol.Optimized) <= len(sol.Moves))
	}
}

func TestSolveSingleTurnNetsToInverse(t *testing.T) {
	is := is.New(t)
	c := scrambled(t, notation.MustParse("R"))

	sol, err := Solve(c)
	is.NoErr(err)
	is.True(c.IsSolved())

	got := cube.New()
	is.NoErr(got.Apply(sol.Result()...))
	want := cube.New()
	is.NoErr(want.Move("R'"))
	is.Equal(got.Notation(), want.Notation())
}

func TestSolveSolvedCube(t *testing.T) {
	is := is.New(t)
	sol, err := New(WithLogger(zerolog.Nop())).Solve(cube.New())
	is.NoErr(err)
	is.Equal(len(sol.Steps), 7)
	is.Equal(len(sol.Result()), 0)
	is.Equal(sol.String(), "")
}

func TestStepsCoverEveryMove(t *testing.T) {
	is := is.New(t)
	c := scrambled(t, notation.MustParse("F R U' B2 L D' R2 U F' L2 B D"))

	var reached []cube.Phase
	var total int
	s := New(
		WithOptimize(false),
		WithPhaseCallback(func(p cube.Phase, moves []types.Move) {
			reached = append(reached, p)
			total += len(moves)
		}),
	)
	sol, err := s.Solve(c)
	is.NoErr(err)
	is.Equal(reached, cube.Phases[:])
	is.Equal(total, len(sol.Moves))
	is.True(sol.Optimized == nil) // optimization disabled

	replay := scrambled(t, notation.MustParse("F R U' B2 L D' R2 U F' L2 B D"))
	for _, step := range sol.Steps {
		is.NoErr(replay.Apply(step.Moves...))
		is.True(replay.Reached(step.Phase))
	}
}

func TestSolveCopyLeavesInputAlone(t *testing.T) {
	is := is.New(t)
	c := scrambled(t, notation.MustParse("R U R' U'"))
	before := c.Notation()
	_, err := New().SolveCopy(c)
	is.NoErr(err)
	is.Equal(c.Notation(), before)
}

func TestBounded(t *testing.T) {
	is := is.New(t)

	calls := 0
	used, err := bounded(5, func() (bool, error) {
		calls++
		return calls == 3, nil
	})
	is.NoErr(err)
	is.Equal(used, uint(3))

	_, err = bounded(4, func() (bool, error) { return false, nil })
	is.True(errors.Is(err, ErrRetryExhausted))

	boom := errors.New("boom")
	calls = 0
	_, err = bounded(4, func() (bool, error) {
		calls++
		return false, boom
	})
	is.Equal(err, boom)
	is.Equal(calls, 1) // a step error stops the loop
}

func TestPhaseError(t *testing.T) {
	is := is.New(t)
	var err error = &PhaseError{Phase: cube.PhaseSecondLayer, Err: fmt.Errorf("%w after 16 attempts", ErrRetryExhausted)}

	var pe *PhaseError
	is.True(errors.As(err, &pe))
	is.Equal(pe.Phase, cube.PhaseSecondLayer)
	is.True(errors.Is(err, ErrRetryExhausted))
	is.True(!errors.Is(err, ErrUnexpectedState))
	is.Equal(err.Error(), "solver: phase second_layer: solver: retry limit exhausted after 16 attempts")
}
