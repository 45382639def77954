package analysis

import (
	"github.com/samber/lo"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

// Aggregate describes many solves of independent scrambles.
type Aggregate struct {
	Solves         int                `json:"solves" yaml:"solves"`
	Failures       int                `json:"failures" yaml:"failures"`
	MeanRaw        float64            `json:"mean_raw_moves" yaml:"mean_raw_moves"`
	MeanOptimized  float64            `json:"mean_optimized_moves" yaml:"mean_optimized_moves"`
	MinOptimized   int                `json:"min_optimized_moves" yaml:"min_optimized_moves"`
	MaxOptimized   int                `json:"max_optimized_moves" yaml:"max_optimized_moves"`
	MeanEfficiency float64            `json:"mean_efficiency" yaml:"mean_efficiency"`
	MeanDurationUs float64            `json:"mean_duration_us" yaml:"mean_duration_us"`
	PhaseMeans     map[string]float64 `json:"phase_means" yaml:"phase_means"`
}

// Combine aggregates successful summaries. failures counts solves that
// returned an error.
func Combine(summaries []*Summary, failures int) Aggregate {
	agg := Aggregate{
		Solves:     len(summaries),
		Failures:   failures,
		PhaseMeans: make(map[string]float64),
	}
	if len(summaries) == 0 {
		return agg
	}

	n := float64(len(summaries))
	agg.MeanRaw = float64(lo.SumBy(summaries, func(s *Summary) int { return s.RawMoves })) / n
	agg.MeanOptimized = float64(lo.SumBy(summaries, func(s *Summary) int { return s.OptimizedMoves })) / n
	agg.MeanEfficiency = lo.SumBy(summaries, func(s *Summary) float64 { return s.Efficiency }) / n
	agg.MeanDurationUs = float64(lo.SumBy(summaries, func(s *Summary) int64 { return s.DurationUs })) / n

	optimized := lo.Map(summaries, func(s *Summary, _ int) int { return s.OptimizedMoves })
	agg.MinOptimized = lo.Min(optimized)
	agg.MaxOptimized = lo.Max(optimized)

	for _, p := range cube.Phases {
		key := p.String()
		total := lo.SumBy(summaries, func(s *Summary) int {
			stats, _ := lo.Find(s.Phases, func(ps PhaseStats) bool { return ps.PhaseKey == key })
			return stats.MoveCount
		})
		agg.PhaseMeans[key] = float64(total) / n
	}
	return agg
}
