// Package batch solves many independent scrambles concurrently. Every
// worker owns its cube; nothing mutable is shared between solves.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/cubesolver/internal/analysis"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Result is the outcome of one solve.
type Result struct {
	Index    int
	Scramble []types.Move
	Solution *solver.Solution
	Summary  *analysis.Summary
	Err      error
}

// Report collects every result in input order plus their aggregate.
type Report struct {
	Results   []Result
	Aggregate analysis.Aggregate
}

// Failed returns the results that ended in an error.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Runner solves scrambles with a bounded number of workers.
type Runner struct {
	Solver  *solver.Solver
	Workers int
}

// New creates a runner. workers <= 0 uses GOMAXPROCS.
func New(s *solver.Solver, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{Solver: s, Workers: workers}
}

// Run solves every scramble. Solver failures are recorded per result and do
// not stop the batch; cancelling ctx does, and its error is returned.
func (r *Runner) Run(ctx context.Context, scrambles [][]types.Move) (*Report, error) {
	results := make([]Result, len(scrambles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)

	var mu sync.Mutex
	done := 0
	for i, scramble := range scrambles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.solveOne(i, scramble)

			mu.Lock()
			done++
			n := done
			mu.Unlock()
			log.Debug().Int("index", i).Int("done", n).Bool("ok", results[i].Err == nil).Msg("batch-solve")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Results: results}
	var summaries []*analysis.Summary
	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			continue
		}
		summaries = append(summaries, res.Summary)
	}
	report.Aggregate = analysis.Combine(summaries, failures)
	return report, nil
}

func (r *Runner) solveOne(i int, scramble []types.Move) Result {
	res := Result{Index: i, Scramble: scramble}
	c := cube.New()
	if err := c.Apply(scramble...); err != nil {
		res.Err = fmt.Errorf("scramble %d: %w", i, err)
		return res
	}

	start := time.Now()
	sol, err := r.Solver.Solve(c)
	if err != nil {
		res.Err = fmt.Errorf("scramble %d (%s): %w", i, notation.FormatSequence(scramble), err)
		return res
	}
	res.Solution = sol
	res.Summary = analysis.Summarize(scramble, sol, time.Since(start))
	return res
}
