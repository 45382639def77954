package analysis

import (
	"math"

	"github.com/samber/lo"

	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// PhaseDiagnostics contains move-pattern metrics for one phase.
type PhaseDiagnostics struct {
	PhaseKey  string `json:"phase" yaml:"phase"`
	MoveCount int    `json:"move_count" yaml:"move_count"`

	// Reversal metrics
	ImmediateReversals int     `json:"immediate_reversals" yaml:"immediate_reversals"` // X X' patterns
	ReversalRate       float64 `json:"reversal_rate" yaml:"reversal_rate"`
	FullCycleWaste     int     `json:"full_cycle_waste" yaml:"full_cycle_waste"` // same-face runs that turn a full rotation

	// Base layer (D) metrics
	BaseTurns      int     `json:"base_turns" yaml:"base_turns"`
	BaseTurnRatio  float64 `json:"base_turn_ratio" yaml:"base_turn_ratio"`
	LongestBaseRun int     `json:"longest_base_run" yaml:"longest_base_run"`

	// A B A' and A B C A' patterns
	ShortLoops int `json:"short_loops" yaml:"short_loops"`

	// Shannon entropy of the face distribution, at most log2(6).
	FaceEntropy   float64 `json:"face_entropy" yaml:"face_entropy"`
	DistinctFaces int     `json:"distinct_faces" yaml:"distinct_faces"`
}

// Diagnostics contains per-phase metrics and the same metrics over the
// whole raw move list.
type Diagnostics struct {
	Phases  []PhaseDiagnostics `json:"phases" yaml:"phases"`
	Overall PhaseDiagnostics   `json:"overall" yaml:"overall"`
}

// Diagnose computes diagnostics for the raw moves of a solution.
func Diagnose(sol *solver.Solution) *Diagnostics {
	d := &Diagnostics{
		Phases: lo.Map(sol.Steps, func(s solver.Step, _ int) PhaseDiagnostics {
			return diagnoseMoves(s.Phase.String(), s.Moves)
		}),
		Overall: diagnoseMoves("overall", sol.Moves),
	}
	return d
}

func diagnoseMoves(key string, moves []types.Move) PhaseDiagnostics {
	diag := PhaseDiagnostics{
		PhaseKey:  key,
		MoveCount: len(moves),
	}
	if len(moves) == 0 {
		return diag
	}

	diag.ImmediateReversals, diag.FullCycleWaste = countReversals(moves)
	diag.ReversalRate = float64(diag.ImmediateReversals) / float64(len(moves))

	diag.BaseTurns, diag.LongestBaseRun = analyzeBaseTurns(moves)
	diag.BaseTurnRatio = float64(diag.BaseTurns) / float64(len(moves))

	diag.ShortLoops = countShortLoops(moves)
	diag.FaceEntropy, diag.DistinctFaces = faceEntropy(moves)
	return diag
}

// countReversals counts X X' pairs, and runs of consecutive same-face turns
// that add up to at least one full rotation and leave the face where it
// started.
func countReversals(moves []types.Move) (reversals, fullCycles int) {
	for i := 1; i < len(moves); i++ {
		if moves[i-1].IsCancellation(moves[i]) {
			reversals++
		}
	}

	for start := 0; start < len(moves); {
		end := start + 1
		for end < len(moves) && moves[end].Face == moves[start].Face {
			end++
		}
		run := moves[start:end]
		net := lo.SumBy(run, func(m types.Move) int { return int(m.Turn) })
		quarters := lo.SumBy(run, func(m types.Move) int { return abs(int(m.Turn)) })
		if net%4 == 0 && quarters >= 4 {
			fullCycles++
		}
		start = end
	}
	return reversals, fullCycles
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// analyzeBaseTurns counts D turns and the longest consecutive run of them.
func analyzeBaseTurns(moves []types.Move) (count, longestRun int) {
	run := 0
	for _, m := range moves {
		if m.Face != types.FaceD {
			run = 0
			continue
		}
		count++
		run++
		longestRun = max(longestRun, run)
	}
	return count, longestRun
}

func countShortLoops(moves []types.Move) int {
	loops := 0
	for i := 2; i < len(moves); i++ {
		if moves[i-2].IsCancellation(moves[i]) && moves[i-1].Face != moves[i].Face {
			loops++
		}
	}
	for i := 3; i < len(moves); i++ {
		a := moves[i-3]
		if a.IsCancellation(moves[i]) && moves[i-2].Face != a.Face && moves[i-1].Face != a.Face {
			loops++
		}
	}
	return loops
}

func faceEntropy(moves []types.Move) (entropy float64, distinct int) {
	counts := lo.CountValuesBy(moves, func(m types.Move) types.Face { return m.Face })
	total := float64(len(moves))
	for _, n := range counts {
		p := float64(n) / total
		entropy -= p * math.Log2(p)
	}
	return entropy, len(counts)
}

// MergeOpportunity is a pair of adjacent same-face moves that combine into
// one move or cancel.
type MergeOpportunity struct {
	Index  int    `json:"index" yaml:"index"`
	Moves  string `json:"moves" yaml:"moves"`
	Merged string `json:"merged" yaml:"merged"` // empty when the pair cancels
}

// FindMerges lists adjacent same-face pairs in moves.
func FindMerges(moves []types.Move) []MergeOpportunity {
	var out []MergeOpportunity
	for i := 0; i+1 < len(moves); i++ {
		a, b := moves[i], moves[i+1]
		if !a.CanMerge(b) {
			continue
		}
		op := MergeOpportunity{Index: i, Moves: a.Notation() + " " + b.Notation()}
		if merged := a.Merge(b); merged != nil {
			op.Merged = merged.Notation()
		}
		out = append(out, op)
	}
	return out
}
