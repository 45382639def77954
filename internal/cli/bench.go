package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/analysis"
	"github.com/SeamusWaldron/cubesolver/internal/batch"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	benchCount int
	benchSave  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve many random scrambles in parallel",
	Long: `Generate random scrambles, solve them concurrently and report move-count
statistics per phase. Failed solves are listed with their scrambles.

Examples:
  cubesolver bench -n 1000
  cubesolver bench -n 200 --workers 4 --seed nightly --format json`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	addScrambleFlags(benchCmd)
	benchCmd.Flags().IntVarP(&benchCount, "count", "n", 100, "Number of scrambles to solve")
	benchCmd.Flags().IntP("workers", "w", 0, "Concurrent solves (default: GOMAXPROCS)")
	benchCmd.Flags().BoolVar(&benchSave, "save", false, "Save every successful solve to the history database")
	benchCmd.Flags().Bool("optimize", true, "Optimize the final move lists")
	benchCmd.Flags().String("format", "text", "Output format (text, json, yaml)")
}

type benchOutput struct {
	analysis.Aggregate `yaml:",inline"`

	Elapsed string         `json:"elapsed" yaml:"elapsed"`
	Failed  []benchFailure `json:"failed,omitempty" yaml:"failed,omitempty"`
	Saved   int            `json:"saved,omitempty" yaml:"saved,omitempty"`
}

type benchFailure struct {
	Scramble string `json:"scramble" yaml:"scramble"`
	Error    string `json:"error" yaml:"error"`
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchCount <= 0 {
		return fmt.Errorf("--count must be positive")
	}

	gen := newGenerator()
	scrambles := make([][]types.Move, benchCount)
	for i := range scrambles {
		scrambles[i] = gen.Generate(cfg.ScrambleLength)
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
	defer stop()

	runner := batch.New(newSolver(), cfg.Workers)
	log.Info().Int("scrambles", benchCount).Int("workers", runner.Workers).Msg("bench-start")

	start := time.Now()
	report, err := runner.Run(ctx, scrambles)
	if err != nil {
		return fmt.Errorf("bench interrupted: %w", err)
	}

	out := benchOutput{
		Aggregate: report.Aggregate,
		Elapsed:   time.Since(start).Round(time.Millisecond).String(),
	}
	for _, res := range report.Failed() {
		out.Failed = append(out.Failed, benchFailure{
			Scramble: notation.FormatSequence(res.Scramble),
			Error:    res.Err.Error(),
		})
	}

	if benchSave {
		n, err := saveReport(report)
		if err != nil {
			return err
		}
		out.Saved = n
	}

	return render(cmd.OutOrStdout(), cfg.Format, out, func(w io.Writer) error {
		printBench(w, &out)
		return nil
	})
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func saveReport(report *batch.Report) (int, error) {
	db, err := openDB()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	saved := 0
	for _, res := range report.Results {
		if res.Err != nil {
			continue
		}
		c := cube.New()
		if err := c.Apply(res.Scramble...); err != nil {
			return saved, err
		}
		record := &storage.Solve{
			Scramble:       res.Summary.Scramble,
			Facelets:       c.Notation(),
			Solution:       res.Solution.String(),
			RawMoves:       len(res.Solution.Moves),
			OptimizedMoves: len(res.Solution.Result()),
			Duration:       time.Duration(res.Summary.DurationUs) * time.Microsecond,
			Source:         "bench",
		}
		if _, err := repo.Create(record, storageSteps(res.Solution)); err != nil {
			return saved, fmt.Errorf("failed to save solve %d: %w", res.Index, err)
		}
		saved++
	}
	return saved, nil
}

func printBench(w io.Writer, out *benchOutput) {
	fmt.Fprintf(w, "Solved %d of %d scrambles in %s\n", out.Solves, out.Solves+out.Aggregate.Failures, out.Elapsed)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Moves:      mean %.1f (raw %.1f), min %d, max %d\n",
		out.MeanOptimized, out.MeanRaw, out.MinOptimized, out.MaxOptimized)
	fmt.Fprintf(w, "Efficiency: %.1f%%\n", out.MeanEfficiency*100)
	fmt.Fprintf(w, "Time:       %s mean per solve\n", formatDuration(time.Duration(out.MeanDurationUs)*time.Microsecond))

	if len(out.PhaseMeans) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Mean moves per phase")
		for _, p := range cube.Phases {
			mean, ok := out.PhaseMeans[p.String()]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "  %-26s %5.1f\n", p.DisplayName(), mean)
		}
	}

	if len(out.Failed) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Failed (%d)\n", len(out.Failed))
		sort.Slice(out.Failed, func(i, j int) bool { return out.Failed[i].Scramble < out.Failed[j].Scramble })
		for _, f := range out.Failed {
			fmt.Fprintf(w, "  %s\n    %s\n", f.Scramble, f.Error)
		}
	}

	if out.Saved > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Saved %d solves\n", out.Saved)
	}
}
