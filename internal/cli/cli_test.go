package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the command line against a temporary home directory and
// returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, "args: %v", args)
	return out
}

func TestScrambleIsReproducibleWithSeed(t *testing.T) {
	a := mustRun(t, "scramble", "--length", "7", "--seed", "abc")
	b := mustRun(t, "scramble", "--length", "7", "--seed", "abc")
	assert.Equal(t, a, b)

	moves, err := notation.ParseSequence(strings.TrimSpace(a))
	require.NoError(t, err)
	assert.Len(t, moves, 7)
}

func TestScrambleJSON(t *testing.T) {
	out := mustRun(t, "scramble", "-l", "5", "--format", "json")
	var got scrambleOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Moves, 5)
	assert.Equal(t, strings.Join(got.Moves, " "), got.Scramble)
}

func TestSolveJSONSolvesTheScramble(t *testing.T) {
	out := mustRun(t, "solve", "--scramble", "R U R' U' F2 D", "--format", "json")

	var got struct {
		Scramble string       `json:"scramble"`
		Solution string       `json:"solution"`
		RawMoves int          `json:"raw_moves"`
		Steps    []stepOutput `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "R U R' U' F2 D", got.Scramble)
	assert.Len(t, got.Steps, 7)
	assert.Positive(t, got.RawMoves)

	c := cube.New()
	require.NoError(t, c.ApplyNotation(got.Scramble))
	require.NoError(t, c.ApplyNotation(got.Solution))
	assert.True(t, c.IsSolved())
}

func TestSolveText(t *testing.T) {
	out := mustRun(t, "solve", "--scramble", "F R")
	assert.Contains(t, out, "Scramble: F R")
	assert.Contains(t, out, "White Cross")
	assert.Contains(t, out, "Solution")
}

func TestSolveRejectsInvalidScramble(t *testing.T) {
	_, err := run(t, "solve", "--scramble", "R X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scramble")
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "scramble", "--format", "xml")
	require.Error(t, err)
}

func TestShowYAML(t *testing.T) {
	out := mustRun(t, "show", "--scramble", "R", "--format", "yaml")
	var got showOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "R", got.Moves)
	assert.Len(t, got.Facelets, 54)
	assert.Equal(t, "scrambled", got.Phase)
	assert.False(t, got.Progress.Solved)
}

func TestShowSolvedPlain(t *testing.T) {
	out := mustRun(t, "show", "--plain")
	assert.Contains(t, out, "Phase: Solved")
	assert.Contains(t, out, "Face string: UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB")
}

func TestExportScramble(t *testing.T) {
	out := mustRun(t, "export", "--scramble", "R U")
	c := cube.New()
	require.NoError(t, c.ApplyNotation("R U"))
	assert.Equal(t, c.Notation()+"\n", out)
}

func TestHistoryRoundTrip(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	out := mustRun(t, "solve", "--db", db, "--scramble", "L D' B2", "--save", "--format", "json")
	var saved struct {
		SolveID string `json:"solve_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	require.NotEmpty(t, saved.SolveID)

	out = mustRun(t, "history", "list", "--db", db, "--format", "json")
	var solves []struct {
		SolveID  string `json:"solve_id"`
		Scramble string `json:"scramble"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &solves))
	require.Len(t, solves, 1)
	assert.Equal(t, saved.SolveID, solves[0].SolveID)
	assert.Equal(t, "L D' B2", solves[0].Scramble)

	out = mustRun(t, "history", "show", "--db", db, "--last")
	assert.Contains(t, out, saved.SolveID)
	assert.Contains(t, out, "White Cross")

	out = mustRun(t, "export", "--db", db, "--id", saved.SolveID)
	c := cube.New()
	require.NoError(t, c.ApplyNotation("L D' B2"))
	assert.Equal(t, c.Notation()+"\n", out)

	out = mustRun(t, "history", "stats", "--db", db)
	assert.Contains(t, out, "Second Layer")

	mustRun(t, "history", "delete", "--db", db, saved.SolveID)
	_, err := run(t, "history", "show", "--db", db, saved.SolveID)
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	out := mustRun(t, "bench", "-n", "6", "--workers", "2", "--seed", "bench", "--format", "json")
	var got struct {
		Solves   int                `json:"solves"`
		Failures int                `json:"failures"`
		Phases   map[string]float64 `json:"phase_means"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 6, got.Solves)
	assert.Zero(t, got.Failures)
	assert.Len(t, got.Phases, 7)
}

func TestBenchSave(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	out := mustRun(t, "bench", "--db", db, "-n", "3", "--save")
	assert.Contains(t, out, "Saved 3 solves")

	out = mustRun(t, "history", "list", "--db", db, "--format", "json")
	assert.Equal(t, 3, strings.Count(out, `"source": "bench"`))
}

func TestReportWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "report")
	mustRun(t, "report", "--scramble", "F R U' B", "-o", dir)

	for _, name := range []string{"solve_summary.json", "diagnostics.json", "repetition_report.json", "moves.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "phase_moves"))
	require.NoError(t, err)
	assert.Len(t, entries, 7)
}

func TestReportPrintsDiagnostics(t *testing.T) {
	out := mustRun(t, "report", "--scramble", "F R U' B")
	assert.Contains(t, out, "Solve Diagnostics")
	assert.Contains(t, out, "white_cross")
	assert.Contains(t, out, "overall")
}
