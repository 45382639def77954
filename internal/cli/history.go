package cli

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var (
	listLimit int
	showLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved solves",
	Long:  `Commands for listing, inspecting and deleting solves saved with --save.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	Long:  `Display a list of recent solves with their move counts.`,
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a solve",
	Long: `Display a saved solve including its scramble, the moves of every phase and
the final solution.

Use --last to show the most recent solve.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryShow,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-phase statistics over saved solves",
	Args:  cobra.NoArgs,
	RunE:  runHistoryStats,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solve-id>",
	Short: "Delete a saved solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "Number of solves to show (0 for all)")
	historyListCmd.Flags().String("format", "text", "Output format (text, json, yaml)")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent solve")
	historyShowCmd.Flags().String("format", "text", "Output format (text, json, yaml)")

	historyCmd.AddCommand(historyStatsCmd)
	historyStatsCmd.Flags().String("format", "text", "Output format (text, json, yaml)")

	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveRepo := storage.NewSolveRepository(db)
	solves, err := solveRepo.List(listLimit)
	if err != nil {
		return err
	}
	if solves == nil {
		solves = []storage.Solve{}
	}

	return render(cmd.OutOrStdout(), cfg.Format, solves, func(w io.Writer) error {
		if len(solves) == 0 {
			fmt.Fprintln(w, "No solves saved yet")
			fmt.Fprintln(w, "Save one with: cubesolver solve --save")
			return nil
		}

		total, err := solveRepo.Count()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Recent solves (showing %d of %d):\n", len(solves), total)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-36s  %-19s  %-10s  %-5s  %-5s\n", "ID", "Created", "Time", "Moves", "Raw")
		fmt.Fprintln(w, "------------------------------------  -------------------  ----------  -----  -----")
		for _, s := range solves {
			fmt.Fprintf(w, "%-36s  %-19s  %-10s  %-5d  %-5d\n",
				s.SolveID,
				s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				formatDuration(s.Duration),
				s.OptimizedMoves,
				s.RawMoves,
			)
		}
		return nil
	})
}

type historyDetail struct {
	Solve storage.Solve  `json:"solve" yaml:"solve"`
	Steps []storage.Step `json:"steps" yaml:"steps"`
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveRepo := storage.NewSolveRepository(db)
	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	solve, err := lookupSolve(solveRepo, id, showLast)
	if err != nil {
		return err
	}
	steps, err := solveRepo.Steps(solve.SolveID)
	if err != nil {
		return err
	}

	defs, err := storage.NewPhaseRepository(db).Defs()
	if err != nil {
		return err
	}
	names := lo.SliceToMap(defs, func(d storage.PhaseDef) (string, string) {
		return d.PhaseKey, d.DisplayName
	})

	detail := historyDetail{Solve: *solve, Steps: steps}
	return render(cmd.OutOrStdout(), cfg.Format, detail, func(w io.Writer) error {
		fmt.Fprintln(w, "Solve Details")
		fmt.Fprintln(w, "=============")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "ID:       %s\n", solve.SolveID)
		fmt.Fprintf(w, "Created:  %s\n", solve.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Scramble: %s\n", solve.Scramble)
		fmt.Fprintf(w, "State:    %s\n", solve.Facelets)
		fmt.Fprintf(w, "Time:     %s\n", formatDuration(solve.Duration))
		fmt.Fprintf(w, "Moves:    %d (raw %d)\n", solve.OptimizedMoves, solve.RawMoves)
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Phases")
		fmt.Fprintln(w, "------")
		for _, step := range steps {
			fmt.Fprintf(w, "%-26s %3d moves\n", lo.ValueOr(names, step.PhaseKey, step.PhaseKey), step.MoveCount)
			if moves, err := notation.ParseSequence(step.Moves); err == nil {
				wrapMoves(w, "  ", moves, 60)
			}
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Solution")
		fmt.Fprintln(w, "--------")
		if moves, err := notation.ParseSequence(solve.Solution); err == nil {
			wrapMoves(w, "  ", moves, 60)
		}
		return nil
	})
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := storage.NewPhaseRepository(db).Stats()
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Format, stats, func(w io.Writer) error {
		fmt.Fprintf(w, "%-26s  %-6s  %-7s  %-4s  %-4s\n", "Phase", "Solves", "Avg", "Min", "Max")
		fmt.Fprintln(w, "--------------------------  ------  -------  ----  ----")
		for _, s := range stats {
			fmt.Fprintf(w, "%-26s  %-6d  %-7.1f  %-4d  %-4d\n", s.DisplayName, s.Solves, s.AvgMoves, s.MinMoves, s.MaxMoves)
		}
		return nil
	})
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSolveRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
