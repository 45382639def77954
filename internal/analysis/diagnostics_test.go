package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesolver/internal/notation"
)

func TestDiagnoseMoves(t *testing.T) {
	d := diagnoseMoves("x", notation.MustParse("R R' D D D' F"))
	assert.Equal(t, 6, d.MoveCount)
	assert.Equal(t, 2, d.ImmediateReversals)
	assert.InDelta(t, 2.0/6.0, d.ReversalRate, 1e-9)
	assert.Equal(t, 3, d.BaseTurns)
	assert.Equal(t, 3, d.LongestBaseRun)
	assert.Equal(t, 3, d.DistinctFaces)
}

func TestDiagnoseEmpty(t *testing.T) {
	d := diagnoseMoves("x", nil)
	assert.Zero(t, d.ReversalRate)
	assert.Zero(t, d.FaceEntropy)
}

func TestFullCycles(t *testing.T) {
	_, cycles := countReversals(notation.MustParse("R R R R"))
	assert.Equal(t, 1, cycles)
	_, cycles = countReversals(notation.MustParse("U' U' U' U' F"))
	assert.Equal(t, 1, cycles)
	_, cycles = countReversals(notation.MustParse("R R2 R U"))
	assert.Equal(t, 1, cycles)
	_, cycles = countReversals(notation.MustParse("R R R U"))
	assert.Zero(t, cycles)

	// a plain reversal is not a full rotation
	_, cycles = countReversals(notation.MustParse("R R' U"))
	assert.Zero(t, cycles)

	_, cycles = countReversals(notation.MustParse("U2 U2 F R R R R"))
	assert.Equal(t, 2, cycles)

	// R U R U R U R U never turns one face twice in a row
	_, cycles = countReversals(notation.MustParse("R U R U R U R U"))
	assert.Zero(t, cycles)
}

func TestShortLoops(t *testing.T) {
	assert.Equal(t, 1, countShortLoops(notation.MustParse("R U R'")))
	assert.Equal(t, 1, countShortLoops(notation.MustParse("R U F R'")))
	assert.Zero(t, countShortLoops(notation.MustParse("R U R")))
}

func TestFaceEntropy(t *testing.T) {
	h, n := faceEntropy(notation.MustParse("R U"))
	assert.InDelta(t, 1.0, h, 1e-9)
	assert.Equal(t, 2, n)

	h, n = faceEntropy(notation.MustParse("R R'"))
	assert.Zero(t, h)
	assert.Equal(t, 1, n)
}

func TestFindMerges(t *testing.T) {
	merges := FindMerges(notation.MustParse("R R U2 U2 F"))
	require.Len(t, merges, 2)
	assert.Equal(t, MergeOpportunity{Index: 0, Moves: "R R", Merged: "R2"}, merges[0])
	assert.Equal(t, MergeOpportunity{Index: 2, Moves: "U2 U2"}, merges[1])
}

func TestDiagnoseSolution(t *testing.T) {
	s, raw := solveScramble(t, "F R' U2 L D' B")
	require.NotNil(t, s.Diagnostics)
	require.Len(t, s.Diagnostics.Phases, 7)
	assert.Equal(t, len(raw), s.Diagnostics.Overall.MoveCount)

	total := 0
	for _, p := range s.Diagnostics.Phases {
		total += p.MoveCount
	}
	assert.Equal(t, len(raw), total)
}
