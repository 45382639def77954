package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/analysis"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	solveScramble string
	solveSave     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and solve it",
	Long: `Apply a scramble to a solved cube and solve it with the layer-by-layer
method. Without --scramble a random scramble is generated.

The result lists the moves of every phase:
  1. white_cross        - White edges around the white centre
  2. first_layer        - White corners
  3. second_layer       - Middle-layer edges
  4. last_layer_cross   - Yellow cross
  5. last_layer_edges   - Yellow edges matched to their centres
  6. last_layer_corners - Yellow corners in place
  7. solved             - Yellow corners twisted

Examples:
  cubesolver solve
  cubesolver solve --scramble "R U R' U'" --format yaml
  cubesolver solve --length 30 --save`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	addScrambleFlags(solveCmd)
	solveCmd.Flags().StringVarP(&solveScramble, "scramble", "s", "", "Scramble to solve (default: random)")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Save the solve to the history database")
	solveCmd.Flags().Bool("optimize", true, "Optimize the final move list")
	solveCmd.Flags().String("format", "text", "Output format (text, json, yaml)")
}

type solveOutput struct {
	analysis.Summary `yaml:",inline"`

	SolveID string       `json:"solve_id,omitempty" yaml:"solve_id,omitempty"`
	Steps   []stepOutput `json:"steps" yaml:"steps"`
}

type stepOutput struct {
	Phase string `json:"phase" yaml:"phase"`
	Moves string `json:"moves" yaml:"moves"`
}

func newSolver() *solver.Solver {
	return solver.New(
		solver.WithOptimize(cfg.Optimize),
		solver.WithLogger(log.Logger),
	)
}

func runSolve(cmd *cobra.Command, args []string) error {
	moves, err := resolveScramble(solveScramble)
	if err != nil {
		return err
	}

	c := cube.New()
	if err := c.Apply(moves...); err != nil {
		return err
	}
	facelets := c.Notation()

	start := time.Now()
	sol, err := newSolver().Solve(c)
	if err != nil {
		return fmt.Errorf("failed to solve %q: %w", notation.FormatSequence(moves), err)
	}
	elapsed := time.Since(start)
	summary := analysis.Summarize(moves, sol, elapsed)

	out := solveOutput{Summary: *summary}
	for _, step := range sol.Steps {
		out.Steps = append(out.Steps, stepOutput{
			Phase: step.Phase.String(),
			Moves: notation.FormatSequence(step.Moves),
		})
	}

	if solveSave {
		id, err := saveSolve(moves, facelets, sol, elapsed)
		if err != nil {
			return err
		}
		out.SolveID = id
	}

	return render(cmd.OutOrStdout(), cfg.Format, out, func(w io.Writer) error {
		printSolve(w, &out, sol)
		return nil
	})
}

func saveSolve(scramble []types.Move, facelets string, sol *solver.Solution, elapsed time.Duration) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	record := &storage.Solve{
		Scramble:       notation.FormatSequence(scramble),
		Facelets:       facelets,
		Solution:       sol.String(),
		RawMoves:       len(sol.Moves),
		OptimizedMoves: len(sol.Result()),
		Duration:       elapsed,
	}
	id, err := storage.NewSolveRepository(db).Create(record, storageSteps(sol))
	if err != nil {
		return "", fmt.Errorf("failed to save solve: %w", err)
	}
	log.Info().Str("solve_id", id).Msg("solve-saved")
	return id, nil
}

func storageSteps(sol *solver.Solution) []storage.Step {
	steps := make([]storage.Step, 0, len(sol.Steps))
	for _, step := range sol.Steps {
		steps = append(steps, storage.Step{
			PhaseKey:  step.Phase.String(),
			MoveCount: len(step.Moves),
			Moves:     notation.FormatSequence(step.Moves),
		})
	}
	return steps
}

func printSolve(w io.Writer, out *solveOutput, sol *solver.Solution) {
	fmt.Fprintf(w, "Scramble: %s\n", out.Scramble)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Phases")
	fmt.Fprintln(w, "------")
	for _, step := range sol.Steps {
		fmt.Fprintf(w, "%-26s %3d moves\n", step.Phase.DisplayName(), len(step.Moves))
		wrapMoves(w, "  ", step.Moves, 60)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Solution")
	fmt.Fprintln(w, "--------")
	fmt.Fprintf(w, "Moves:      %d (raw %d, %.0f%%)\n", out.OptimizedMoves, out.RawMoves, out.Efficiency*100)
	fmt.Fprintf(w, "Time:       %s\n", formatDuration(time.Duration(out.DurationUs)*time.Microsecond))
	wrapMoves(w, "  ", sol.Result(), 60)

	if len(out.Repeats) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Repeated sequences")
		for _, g := range out.Repeats {
			fmt.Fprintf(w, "  %-20s x%d\n", g.Sequence, g.Count)
		}
	}

	if out.SolveID != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Saved: %s\n", out.SolveID)
	}
}
