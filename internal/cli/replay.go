package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	replayScramble string
	replaySolveID  string
	replayLast     bool
	replaySpeed    float64
	replayStep     bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Step through a solve move by move",
	Long: `Replay a solve in the terminal. Each move is applied to the scrambled cube
and the net, the current phase and the spoken form of the move are shown.

The solve is either computed from --scramble (random when empty) or loaded
from the history with --id or --last.

Usage:
  cubesolver replay                          # Replay a random scramble
  cubesolver replay --scramble "R U R' U'"   # Replay a given scramble
  cubesolver replay --last --speed 2.0       # Replay the last saved solve at 2x
  cubesolver replay --step                   # Step through moves manually`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	addScrambleFlags(replayCmd)
	replayCmd.Flags().StringVarP(&replayScramble, "scramble", "s", "", "Scramble to solve and replay")
	replayCmd.Flags().StringVar(&replaySolveID, "id", "", "Saved solve to replay")
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the last saved solve")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

// replayMove is one move of the replay tagged with the phase it belongs to.
type replayMove struct {
	move  types.Move
	phase cube.Phase
}

func runReplay(cmd *cobra.Command, args []string) error {
	var (
		start *cube.Cube
		moves []replayMove
		err   error
	)
	if replaySolveID != "" || replayLast {
		start, moves, err = loadReplay(replaySolveID, replayLast)
	} else {
		start, moves, err = computeReplay(replayScramble)
	}
	if err != nil {
		return err
	}

	model := newReplayModel(start, moves, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

func computeReplay(seq string) (*cube.Cube, []replayMove, error) {
	scramble, err := resolveScramble(seq)
	if err != nil {
		return nil, nil, err
	}
	start := cube.New()
	if err := start.Apply(scramble...); err != nil {
		return nil, nil, err
	}

	sol, err := newSolver().SolveCopy(start)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to solve %q: %w", notation.FormatSequence(scramble), err)
	}

	var moves []replayMove
	for _, step := range sol.Steps {
		for _, m := range step.Moves {
			moves = append(moves, replayMove{move: m, phase: step.Phase})
		}
	}
	return start, moves, nil
}

func loadReplay(id string, last bool) (*cube.Cube, []replayMove, error) {
	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solve, err := lookupSolve(repo, id, last)
	if err != nil {
		return nil, nil, err
	}
	scramble, err := notation.ParseSequence(solve.Scramble)
	if err != nil {
		return nil, nil, fmt.Errorf("stored scramble: %w", err)
	}
	start := cube.New()
	if err := start.Apply(scramble...); err != nil {
		return nil, nil, err
	}

	steps, err := repo.Steps(solve.SolveID)
	if err != nil {
		return nil, nil, err
	}
	var moves []replayMove
	for _, step := range steps {
		phase := phaseByKey(step.PhaseKey)
		seq, err := notation.ParseSequence(step.Moves)
		if err != nil {
			return nil, nil, fmt.Errorf("stored step %d: %w", step.OrderIndex, err)
		}
		for _, m := range seq {
			moves = append(moves, replayMove{move: m, phase: phase})
		}
	}
	return start, moves, nil
}

func phaseByKey(key string) cube.Phase {
	for _, p := range cube.Phases {
		if p.String() == key {
			return p
		}
	}
	return cube.PhaseScrambled
}

// Replay model
type replayModel struct {
	start    *cube.Cube
	moves    []replayMove
	index    int
	tracker  *cube.Tracker
	speed    float64
	stepMode bool
	paused   bool
	quitting bool
}

func newReplayModel(start *cube.Cube, moves []replayMove, speed float64, stepMode bool) *replayModel {
	if speed <= 0 {
		speed = 1
	}
	return &replayModel{
		start:    start,
		moves:    moves,
		tracker:  cube.NewTracker(start),
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
}

type replayTickMsg time.Time

const baseInterval = 500 * time.Millisecond

func (m *replayModel) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return m.tick()
}

func (m *replayModel) tick() tea.Cmd {
	if m.done() {
		return nil
	}
	delay := time.Duration(float64(baseInterval) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m *replayModel) done() bool {
	return m.index >= len(m.moves)
}

// advance applies the next move.
func (m *replayModel) advance() {
	if m.done() {
		return
	}
	// Moves come from the solver or a parsed history row.
	_ = m.tracker.ApplyMove(m.moves[m.index].move)
	m.index++
}

// rewind replays all but the last applied move on a fresh tracker.
func (m *replayModel) rewind() {
	if m.index == 0 {
		return
	}
	target := m.index - 1
	m.reset()
	for m.index < target {
		m.advance()
	}
}

func (m *replayModel) reset() {
	m.tracker = cube.NewTracker(m.start)
	m.index = 0
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			if m.stepMode || m.paused {
				m.advance()
				return m, nil
			}
			m.paused = true

		case "b", "left":
			m.paused = true
			m.rewind()

		case "p":
			if m.stepMode {
				return m, nil
			}
			m.paused = !m.paused
			if !m.paused {
				return m, m.tick()
			}

		case "r":
			m.reset()
			if !m.paused {
				return m, m.tick()
			}

		case "+", "=":
			m.speed = min(m.speed*2, 16)

		case "-", "_":
			m.speed = max(m.speed/2, 0.125)
		}

	case replayTickMsg:
		if m.paused {
			return m, nil
		}
		m.advance()
		return m, m.tick()
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("cubesolver replay"))
	b.WriteString("\n\n")

	// Replay status
	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.moves))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n\n", m.speed))

	// Last applied move
	if m.index > 0 {
		last := m.moves[m.index-1]
		b.WriteString(fmt.Sprintf("Move: %s  %s\n",
			moveStyle.Render(last.move.Notation()),
			statusStyle.Render(notation.Describe(last.move))))
		b.WriteString(fmt.Sprintf("Phase: %s\n", phaseStyle.Render(last.phase.DisplayName())))
	}

	// Phase detection (monotonic)
	c := m.tracker.Cube()
	if c.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", phaseStyle.Render("SOLVED!")))
	} else if highest := m.tracker.HighestPhase(); highest != cube.PhaseScrambled {
		b.WriteString(fmt.Sprintf("Completed: %s\n", statusStyle.Render(highest.DisplayName())))
	}
	b.WriteString("\n")

	b.WriteString(renderNet(c))
	b.WriteString("\n")

	// Moves around the current one
	if len(m.moves) > 0 {
		from := max(0, m.index-10)
		to := min(len(m.moves), m.index+10)
		var notations []string
		if from > 0 {
			notations = append(notations, "...")
		}
		for i := from; i < to; i++ {
			n := m.moves[i].move.Notation()
			if i == m.index-1 {
				n = currentMoveStyle.Render(n)
			}
			notations = append(notations, n)
		}
		if to < len(m.moves) {
			notations = append(notations, "...")
		}
		b.WriteString(moveStyle.Render(strings.Join(notations, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	// Help
	help := "SPACE/n=next  b=back  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  b=back  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
