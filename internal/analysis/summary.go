// Package analysis summarizes solutions: per-phase move counts, movement
// profiles, repeated sequences and batch aggregates.
package analysis

import (
	"time"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/optimize"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Summary contains statistics for a single solve.
type Summary struct {
	Scramble        string             `json:"scramble" yaml:"scramble"`
	Solution        string             `json:"solution" yaml:"solution"`
	RawMoves        int                `json:"raw_moves" yaml:"raw_moves"`
	OptimizedMoves  int                `json:"optimized_moves" yaml:"optimized_moves"`
	SimplifiedMoves int                `json:"simplified_moves" yaml:"simplified_moves"`
	Efficiency      float64            `json:"efficiency" yaml:"efficiency"`
	DurationUs      int64              `json:"duration_us" yaml:"duration_us"`
	Phases          []PhaseStats       `json:"phases" yaml:"phases"`
	Profile         *MovementProfile   `json:"profile,omitempty" yaml:"profile,omitempty"`
	Repeats         []NGram            `json:"repeats,omitempty" yaml:"repeats,omitempty"`
	Merges          []MergeOpportunity `json:"merges,omitempty" yaml:"merges,omitempty"`
	Diagnostics     *Diagnostics       `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// PhaseStats contains statistics for a single phase.
type PhaseStats struct {
	PhaseKey    string  `json:"phase" yaml:"phase"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	MoveCount   int     `json:"move_count" yaml:"move_count"`
	Share       float64 `json:"share" yaml:"share"`
}

// Summarize builds the summary of a solution.
func Summarize(scramble []types.Move, sol *solver.Solution, elapsed time.Duration) *Summary {
	result := sol.Result()
	s := &Summary{
		Scramble:        notation.FormatSequence(scramble),
		Solution:        notation.FormatSequence(result),
		RawMoves:        len(sol.Moves),
		OptimizedMoves:  len(result),
		SimplifiedMoves: len(optimize.Simplify(result)),
		DurationUs:      elapsed.Microseconds(),
		Profile:         AnalyzeMovementProfile(result),
		Repeats:         MineNGrams(sol.Moves, 4, 3),
		Merges:          FindMerges(sol.Moves),
		Diagnostics:     Diagnose(sol),
	}
	if s.RawMoves > 0 {
		s.Efficiency = float64(s.OptimizedMoves) / float64(s.RawMoves)
	}

	for _, step := range sol.Steps {
		ps := PhaseStats{
			PhaseKey:    step.Phase.String(),
			DisplayName: step.Phase.DisplayName(),
			MoveCount:   len(step.Moves),
		}
		if s.RawMoves > 0 {
			ps.Share = float64(ps.MoveCount) / float64(s.RawMoves)
		}
		s.Phases = append(s.Phases, ps)
	}
	return s
}

// MovementProfile records which faces and turns a sequence uses.
type MovementProfile struct {
	FaceCounts    map[types.Face]int `json:"face_counts" yaml:"face_counts"`
	TurnCounts    map[string]int     `json:"turn_counts" yaml:"turn_counts"`
	MostUsedFace  types.Face         `json:"most_used_face" yaml:"most_used_face"`
	FaceSequences map[string]int     `json:"face_sequences" yaml:"face_sequences"` // e.g. "RU" -> count
}

// turnName names a turn for profile keys.
func turnName(t types.Turn) string {
	switch t {
	case types.TurnCW:
		return "cw"
	case types.TurnCCW:
		return "ccw"
	case types.Turn180:
		return "half"
	}
	return "unknown"
}

// AnalyzeMovementProfile counts faces, turns and two-move face sequences.
// Ties for the most used face go to the earlier face in R L U D F B order.
func AnalyzeMovementProfile(moves []types.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts:    make(map[types.Face]int),
		TurnCounts:    make(map[string]int),
		FaceSequences: make(map[string]int),
	}

	for i, m := range moves {
		profile.FaceCounts[m.Face]++
		profile.TurnCounts[turnName(m.Turn)]++

		if i > 0 {
			profile.FaceSequences[string(moves[i-1].Face)+string(m.Face)]++
		}
	}

	maxFaceCount := 0
	for _, face := range types.Faces {
		if n := profile.FaceCounts[face]; n > maxFaceCount {
			maxFaceCount = n
			profile.MostUsedFace = face
		}
	}

	return profile
}

// Reached lists the phases a cube currently satisfies.
func Reached(c *cube.Cube) []string {
	var out []string
	for _, p := range cube.Phases {
		if c.Reached(p) {
			out = append(out, p.String())
		}
	}
	return out
}
