package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/analysis"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
)

var (
	showScramble string
	showPlain    bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cube after a move sequence",
	Long: `Apply a move sequence to a solved cube and display the resulting net
together with the phases the cube currently satisfies.

Examples:
  cubesolver show --scramble "R U R' U'"
  cubesolver show --scramble "F2 B2" --plain
  cubesolver show --scramble "R U" --format json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showScramble, "scramble", "s", "", "Moves to apply")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print colour letters instead of coloured blocks")
	showCmd.Flags().String("format", "text", "Output format (text, json, yaml)")
}

type showOutput struct {
	Moves    string             `json:"moves" yaml:"moves"`
	Facelets string             `json:"facelets" yaml:"facelets"`
	Phase    string             `json:"phase" yaml:"phase"`
	Reached  []string           `json:"reached" yaml:"reached"`
	Progress cube.PhaseProgress `json:"progress" yaml:"progress"`
}

func runShow(cmd *cobra.Command, args []string) error {
	moves, err := notation.ParseSequence(showScramble)
	if err != nil {
		return fmt.Errorf("invalid moves: %w", err)
	}

	c := cube.New()
	if err := c.Apply(moves...); err != nil {
		return err
	}

	out := showOutput{
		Moves:    notation.FormatSequence(moves),
		Facelets: c.Notation(),
		Phase:    c.DetectPhase().String(),
		Reached:  analysis.Reached(c),
		Progress: c.Progress(),
	}

	return render(cmd.OutOrStdout(), cfg.Format, out, func(w io.Writer) error {
		if showPlain {
			fmt.Fprint(w, c.String())
		} else {
			fmt.Fprint(w, renderNet(c))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Phase: %s\n", c.DetectPhase().DisplayName())
		fmt.Fprintf(w, "Face string: %s\n", out.Facelets)
		return nil
	})
}
