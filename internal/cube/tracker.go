package cube

import (
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Tracker replays moves on a cube and reports phase milestones.
type Tracker struct {
	cube          *Cube
	moves         int
	highestPhase  Phase // monotonic
	phaseCallback func(phase Phase, moveIndex int)
}

// NewTracker creates a tracker over a copy of start.
func NewTracker(start *Cube) *Tracker {
	t := &Tracker{cube: start.Clone()}
	t.highestPhase = t.cube.DetectPhase()
	return t
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached. moveIndex is the number of moves applied so far.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase, moveIndex int)) {
	t.phaseCallback = cb
}

// ApplyMove applies a move and checks for phase transitions.
func (t *Tracker) ApplyMove(m types.Move) error {
	if err := t.cube.ApplyMove(m); err != nil {
		return err
	}
	t.moves++
	t.checkPhaseTransition()
	return nil
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []types.Move) error {
	for _, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses and applies a sequence.
func (t *Tracker) ApplyNotation(seq string) error {
	moves, err := notation.ParseSequence(seq)
	if err != nil {
		return err
	}
	return t.ApplyMoves(moves)
}

func (t *Tracker) checkPhaseTransition() {
	current := t.cube.DetectPhase()
	if current <= t.highestPhase {
		return
	}
	t.highestPhase = current
	if t.phaseCallback != nil {
		t.phaseCallback(current, t.moves)
	}
}

// CurrentPhase returns the phase of the cube as it is now.
func (t *Tracker) CurrentPhase() Phase {
	return t.cube.DetectPhase()
}

// HighestPhase returns the furthest phase reached. It never goes backwards.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// Moves returns the number of moves applied.
func (t *Tracker) Moves() int {
	return t.moves
}

// Cube returns the tracked cube.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
