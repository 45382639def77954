package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/scramble"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func scrambles(n int) [][]types.Move {
	out := make([][]types.Move, n)
	for i := range out {
		out[i] = scramble.New(scramble.WithSeed([]byte(fmt.Sprintf("batch-%d", i)))).Generate(25)
	}
	return out
}

func TestRunSolvesEveryScramble(t *testing.T) {
	is := is.New(t)
	runner := New(solver.New(solver.WithLogger(zerolog.Nop())), 4)

	input := scrambles(40)
	report, err := runner.Run(context.Background(), input)
	is.NoErr(err)
	is.Equal(len(report.Results), 40)
	is.Equal(len(report.Failed()), 0)
	is.Equal(report.Aggregate.Solves, 40)

	for i, res := range report.Results {
		is.Equal(res.Index, i)
		c := cube.New()
		is.NoErr(c.Apply(input[i]...))
		is.NoErr(c.Apply(res.Solution.Result()...))
		is.True(c.IsSolved())
	}
	is.True(report.Aggregate.MinOptimized <= report.Aggregate.MaxOptimized)
	is.True(report.Aggregate.MeanOptimized > 0)
}

func TestRunRecordsInvalidScrambles(t *testing.T) {
	is := is.New(t)
	runner := New(solver.New(), 0)

	input := [][]types.Move{
		{{Face: types.FaceR, Turn: types.TurnCW}},
		{{Face: "Z", Turn: types.TurnCW}},
	}
	report, err := runner.Run(context.Background(), input)
	is.NoErr(err)
	is.Equal(len(report.Failed()), 1)
	is.True(errors.Is(report.Results[1].Err, cube.ErrInvalidMove))
	is.Equal(report.Aggregate.Failures, 1)
	is.Equal(report.Aggregate.Solves, 1)
}

func TestRunHonoursCancellation(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(solver.New(), 2).Run(ctx, scrambles(10))
	is.True(errors.Is(err, context.Canceled))
}
