package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func solveScramble(t *testing.T, seq string) (*Summary, []types.Move) {
	t.Helper()
	scramble := notation.MustParse(seq)
	c := cube.New()
	require.NoError(t, c.Apply(scramble...))
	sol, err := solver.Solve(c)
	require.NoError(t, err)
	return Summarize(scramble, sol, 2*time.Millisecond), sol.Moves
}

func TestSummarize(t *testing.T) {
	s, raw := solveScramble(t, "R U F' L2 D B")

	assert.Equal(t, "R U F' L2 D B", s.Scramble)
	assert.Equal(t, len(raw), s.RawMoves)
	assert.LessOrEqual(t, s.OptimizedMoves, s.RawMoves)
	assert.LessOrEqual(t, s.SimplifiedMoves, s.OptimizedMoves)
	assert.InDelta(t, float64(s.OptimizedMoves)/float64(s.RawMoves), s.Efficiency, 1e-9)
	assert.Equal(t, int64(2000), s.DurationUs)
	require.Len(t, s.Phases, 7)

	total := 0
	for _, p := range s.Phases {
		total += p.MoveCount
	}
	assert.Equal(t, s.RawMoves, total)
	assert.Equal(t, "white_cross", s.Phases[0].PhaseKey)
}

func TestAnalyzeMovementProfile(t *testing.T) {
	p := AnalyzeMovementProfile(notation.MustParse("R U R' U' R2 F"))
	assert.Equal(t, 3, p.FaceCounts[types.FaceR])
	assert.Equal(t, 2, p.FaceCounts[types.FaceU])
	assert.Equal(t, types.FaceR, p.MostUsedFace)
	assert.Equal(t, 3, p.TurnCounts["cw"])
	assert.Equal(t, 2, p.TurnCounts["ccw"])
	assert.Equal(t, 1, p.TurnCounts["half"])
	assert.Equal(t, 2, p.FaceSequences["RU"])
	assert.Equal(t, 2, p.FaceSequences["UR"])
}

func TestMineNGrams(t *testing.T) {
	moves := notation.MustParse("R U R' U' R U R' U' F R U R' U'")
	grams := MineNGrams(moves, 4, 2)
	require.Len(t, grams, 1)
	assert.Equal(t, "R U R' U'", grams[0].Sequence)
	assert.Equal(t, 3, grams[0].Count)
	assert.Equal(t, 0, grams[0].First)

	assert.Nil(t, MineNGrams(moves[:3], 4, 2))
	assert.Empty(t, MineNGrams(notation.MustParse("R U F D"), 2, 5))
}

func TestCombine(t *testing.T) {
	a := &Summary{RawMoves: 100, OptimizedMoves: 80, Efficiency: 0.8, DurationUs: 10,
		Phases: []PhaseStats{{PhaseKey: "white_cross", MoveCount: 10}}}
	b := &Summary{RawMoves: 120, OptimizedMoves: 90, Efficiency: 0.75, DurationUs: 30,
		Phases: []PhaseStats{{PhaseKey: "white_cross", MoveCount: 20}}}

	agg := Combine([]*Summary{a, b}, 1)
	assert.Equal(t, 2, agg.Solves)
	assert.Equal(t, 1, agg.Failures)
	assert.Equal(t, 110.0, agg.MeanRaw)
	assert.Equal(t, 85.0, agg.MeanOptimized)
	assert.Equal(t, 80, agg.MinOptimized)
	assert.Equal(t, 90, agg.MaxOptimized)
	assert.InDelta(t, 0.775, agg.MeanEfficiency, 1e-9)
	assert.Equal(t, 20.0, agg.MeanDurationUs)
	assert.Equal(t, 15.0, agg.PhaseMeans["white_cross"])
	assert.Equal(t, 0.0, agg.PhaseMeans["solved"])

	empty := Combine(nil, 0)
	assert.Equal(t, 0, empty.Solves)
}
