package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/analysis"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	reportScramble  string
	reportSolveID   string
	reportLast      bool
	reportOutputDir string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a solve analysis report",
	Long: `Generate a detailed analysis report for a solve. The solve is computed from
--scramble (random when empty) or re-solved from a saved solve's scramble.

Reports include:
  - solve_summary.json: Overview statistics
  - moves.txt: Solution in notation
  - diagnostics.json: Reversals, base turns, short loops and face entropy
  - repetition_report.json: Merge opportunities and repeated sequences
  - phase_moves/: Per-phase move sequences

Without --output the diagnostics are printed instead.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addScrambleFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportScramble, "scramble", "s", "", "Scramble to solve (default: random)")
	reportCmd.Flags().StringVar(&reportSolveID, "id", "", "Saved solve to report on")
	reportCmd.Flags().BoolVar(&reportLast, "last", false, "Report on the last saved solve")
	reportCmd.Flags().StringVarP(&reportOutputDir, "output", "o", "", "Output directory")
	reportCmd.Flags().String("format", "text", "Output format when printing (text, json, yaml)")
}

// RepetitionReport lists wasted motion in the raw moves.
type RepetitionReport struct {
	Merges   []analysis.MergeOpportunity `json:"merge_opportunities"`
	Repeated []analysis.NGram            `json:"repeated_sequences"`
}

func runReport(cmd *cobra.Command, args []string) error {
	scramble, solveID, err := reportInput()
	if err != nil {
		return err
	}

	c := cube.New()
	if err := c.Apply(scramble...); err != nil {
		return err
	}
	start := time.Now()
	sol, err := newSolver().Solve(c)
	if err != nil {
		return fmt.Errorf("failed to solve %q: %w", notation.FormatSequence(scramble), err)
	}
	summary := analysis.Summarize(scramble, sol, time.Since(start))

	if reportOutputDir == "" {
		return render(cmd.OutOrStdout(), cfg.Format, summary.Diagnostics, func(w io.Writer) error {
			printDiagnostics(w, summary.Diagnostics)
			return nil
		})
	}

	if err := writeReport(reportOutputDir, solveID, summary, sol); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", reportOutputDir)
	return nil
}

func reportInput() ([]types.Move, string, error) {
	if reportSolveID == "" && !reportLast {
		moves, err := resolveScramble(reportScramble)
		return moves, "", err
	}

	db, err := openDB()
	if err != nil {
		return nil, "", err
	}
	defer db.Close()

	solve, err := lookupSolve(storage.NewSolveRepository(db), reportSolveID, reportLast)
	if err != nil {
		return nil, "", err
	}
	moves, err := notation.ParseSequence(solve.Scramble)
	if err != nil {
		return nil, "", fmt.Errorf("stored scramble: %w", err)
	}
	return moves, solve.SolveID, nil
}

func writeReport(dir, solveID string, summary *analysis.Summary, sol *solver.Solution) error {
	phaseDir := filepath.Join(dir, "phase_moves")
	if err := os.MkdirAll(phaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	type solveSummary struct {
		SolveID string `json:"solve_id,omitempty"`
		*analysis.Summary
	}
	if err := writeJSON(filepath.Join(dir, "solve_summary.json"), solveSummary{SolveID: solveID, Summary: summary}); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, "diagnostics.json"), summary.Diagnostics); err != nil {
		return err
	}
	repetitions := RepetitionReport{
		Merges:   summary.Merges,
		Repeated: analysis.MineNGrams(sol.Moves, 4, 10),
	}
	if err := writeJSON(filepath.Join(dir, "repetition_report.json"), repetitions); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, "moves.txt"), []byte(sol.String()+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write moves.txt: %w", err)
	}
	for i, step := range sol.Steps {
		name := fmt.Sprintf("%d_%s.txt", i+1, step.Phase)
		body := notation.FormatSequence(step.Moves) + "\n"
		if err := os.WriteFile(filepath.Join(phaseDir, name), []byte(body), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

func printDiagnostics(w io.Writer, d *analysis.Diagnostics) {
	fmt.Fprintln(w, "Solve Diagnostics")
	fmt.Fprintln(w, "=================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-20s  %5s  %9s  %6s  %8s  %5s  %7s\n",
		"Phase", "Moves", "Reversals", "D", "D run", "Loops", "Entropy")
	rows := make([]analysis.PhaseDiagnostics, 0, len(d.Phases)+1)
	rows = append(rows, d.Phases...)
	for _, p := range append(rows, d.Overall) {
		fmt.Fprintf(w, "%-20s  %5d  %9d  %6d  %8d  %5d  %7.2f\n",
			p.PhaseKey, p.MoveCount, p.ImmediateReversals, p.BaseTurns, p.LongestBaseRun, p.ShortLoops, p.FaceEntropy)
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
