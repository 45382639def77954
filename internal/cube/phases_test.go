package cube

import "testing"

func TestSolvedCubeReachesEveryPhase(t *testing.T) {
	c := New()
	for _, p := range Phases {
		if !c.Reached(p) {
			t.Errorf("solved cube should satisfy %s", p)
		}
	}
	if got := c.DetectPhase(); got != PhaseSolved {
		t.Errorf("DetectPhase() = %s, want solved", got)
	}
}

func TestBottomTurnKeepsFirstTwoLayers(t *testing.T) {
	c := New()
	_ = c.Move("D")
	progress := c.Progress()
	if !progress.WhiteCross || !progress.FirstLayer || !progress.SecondLayer {
		t.Errorf("D should not disturb the top two layers: %+v", progress)
	}
	if !progress.LastLayerCross {
		t.Error("D keeps yellow facing down on the bottom edges")
	}
	if progress.LastLayerEdges || progress.Solved {
		t.Errorf("D misplaces the bottom edges: %+v", progress)
	}
	if got := c.DetectPhase(); got != PhaseLastLayerCross {
		t.Errorf("DetectPhase() = %s, want last_layer_cross", got)
	}
}

func TestTopTurnBreaksCross(t *testing.T) {
	c := New()
	_ = c.Move("U")
	if c.IsWhiteCrossComplete() {
		t.Error("U misplaces the white edges")
	}
	if got := c.DetectPhase(); got != PhaseScrambled {
		t.Errorf("DetectPhase() = %s, want scrambled", got)
	}
}

func TestPhaseNames(t *testing.T) {
	for _, p := range Phases {
		if p.String() == "unknown" || p.DisplayName() == "Unknown" {
			t.Errorf("phase %d has no name", int(p))
		}
	}
}

func TestTrackerReportsMilestones(t *testing.T) {
	c := New()
	_ = c.ApplyNotation("D")

	tr := NewTracker(c)
	if tr.HighestPhase() != PhaseLastLayerCross {
		t.Fatalf("initial phase = %s", tr.HighestPhase())
	}

	var reached []Phase
	var at []int
	tr.SetPhaseCallback(func(p Phase, n int) {
		reached = append(reached, p)
		at = append(at, n)
	})

	if err := tr.ApplyNotation("U D'"); err != nil {
		t.Fatal(err)
	}
	if len(reached) != 0 {
		t.Errorf("callbacks fired for a regression: %v", reached)
	}

	if err := tr.ApplyNotation("U'"); err != nil {
		t.Fatal(err)
	}
	if len(reached) != 1 || reached[0] != PhaseSolved || at[0] != 3 {
		t.Errorf("reached = %v at %v, want [solved] at [3]", reached, at)
	}
	if !c.Reached(PhaseLastLayerCross) || c.IsSolved() {
		t.Error("tracker must not mutate the starting cube")
	}
}
