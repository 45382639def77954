package cube

// Phase detection for the layer-by-layer method. The cube is never
// re-gripped: white stays on top and yellow on the bottom throughout.

// Phase represents the furthest solving milestone a cube satisfies.
// Phases are ordered from Scrambled to Solved.
type Phase int

const (
	PhaseScrambled Phase = iota
	PhaseWhiteCross
	PhaseFirstLayer
	PhaseSecondLayer
	PhaseLastLayerCross
	PhaseLastLayerEdges
	PhaseLastLayerCorners
	PhaseSolved
)

// Phases lists every milestone after Scrambled in solving order.
var Phases = [...]Phase{
	PhaseWhiteCross,
	PhaseFirstLayer,
	PhaseSecondLayer,
	PhaseLastLayerCross,
	PhaseLastLayerEdges,
	PhaseLastLayerCorners,
	PhaseSolved,
}

// String returns a short key for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseLastLayerCross:
		return "last_layer_cross"
	case PhaseLastLayerEdges:
		return "last_layer_edges"
	case PhaseLastLayerCorners:
		return "last_layer_corners"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseLastLayerCross:
		return "Yellow Cross"
	case PhaseLastLayerEdges:
		return "Yellow Edges"
	case PhaseLastLayerCorners:
		return "Yellow Corners Positioned"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsWhiteCrossComplete checks that the four white edges are solved.
func (c *Cube) IsWhiteCrossComplete() bool {
	for i := range c.pieces {
		p := &c.pieces[i]
		if p.kind == Edge && p.Has(White) && !p.IsSolved() {
			return false
		}
	}
	return true
}

// IsFirstLayerComplete checks that every top-layer piece is solved.
func (c *Cube) IsFirstLayerComplete() bool {
	return c.layersSolved(LayerTop)
}

// IsSecondLayerComplete checks that the top and middle layers are solved.
func (c *Cube) IsSecondLayerComplete() bool {
	return c.layersSolved(LayerMiddle)
}

// IsLastLayerCrossComplete checks that the first two layers are solved and
// the four bottom edges show yellow downwards.
func (c *Cube) IsLastLayerCrossComplete() bool {
	if !c.IsSecondLayerComplete() {
		return false
	}
	for i := range c.pieces {
		p := &c.pieces[i]
		if p.kind == Edge && p.position.Z == -1 && p.orientation[Bottom] != Yellow {
			return false
		}
	}
	return true
}

// AreLastLayerEdgesSolved checks the yellow cross with every edge matching
// its side centers.
func (c *Cube) AreLastLayerEdgesSolved() bool {
	if !c.IsLastLayerCrossComplete() {
		return false
	}
	for i := range c.pieces {
		p := &c.pieces[i]
		if p.kind == Edge && p.position.Z == -1 && !p.IsSolved() {
			return false
		}
	}
	return true
}

// AreLastLayerCornersPlaced checks that the bottom corners sit in their
// solved positions. They may still be twisted.
func (c *Cube) AreLastLayerCornersPlaced() bool {
	if !c.AreLastLayerEdgesSolved() {
		return false
	}
	for i := range c.pieces {
		p := &c.pieces[i]
		if p.kind == Corner && p.position.Z == -1 && !p.IsPlaced() {
			return false
		}
	}
	return true
}

// layersSolved reports whether every piece at or above layer l is solved.
func (c *Cube) layersSolved(l Layer) bool {
	for i := range c.pieces {
		p := &c.pieces[i]
		if p.position.Z >= int(l) && !p.IsSolved() {
			return false
		}
	}
	return true
}

// Reached reports whether the cube satisfies the exit condition of phase p.
func (c *Cube) Reached(p Phase) bool {
	switch p {
	case PhaseScrambled:
		return true
	case PhaseWhiteCross:
		return c.IsWhiteCrossComplete()
	case PhaseFirstLayer:
		return c.IsFirstLayerComplete()
	case PhaseSecondLayer:
		return c.IsSecondLayerComplete()
	case PhaseLastLayerCross:
		return c.IsLastLayerCrossComplete()
	case PhaseLastLayerEdges:
		return c.AreLastLayerEdgesSolved()
	case PhaseLastLayerCorners:
		return c.AreLastLayerCornersPlaced()
	case PhaseSolved:
		return c.IsSolved()
	}
	return false
}

// DetectPhase returns the furthest phase whose condition holds.
func (c *Cube) DetectPhase() Phase {
	for i := len(Phases) - 1; i >= 0; i-- {
		if c.Reached(Phases[i]) {
			return Phases[i]
		}
	}
	return PhaseScrambled
}

// PhaseProgress reports which phases are complete.
type PhaseProgress struct {
	WhiteCross       bool `json:"white_cross" yaml:"white_cross"`
	FirstLayer       bool `json:"first_layer" yaml:"first_layer"`
	SecondLayer      bool `json:"second_layer" yaml:"second_layer"`
	LastLayerCross   bool `json:"last_layer_cross" yaml:"last_layer_cross"`
	LastLayerEdges   bool `json:"last_layer_edges" yaml:"last_layer_edges"`
	LastLayerCorners bool `json:"last_layer_corners" yaml:"last_layer_corners"`
	Solved           bool `json:"solved" yaml:"solved"`
}

// Progress returns the current progress through all phases.
func (c *Cube) Progress() PhaseProgress {
	return PhaseProgress{
		WhiteCross:       c.IsWhiteCrossComplete(),
		FirstLayer:       c.IsFirstLayerComplete(),
		SecondLayer:      c.IsSecondLayerComplete(),
		LastLayerCross:   c.IsLastLayerCrossComplete(),
		LastLayerEdges:   c.AreLastLayerEdgesSolved(),
		LastLayerCorners: c.AreLastLayerCornersPlaced(),
		Solved:           c.IsSolved(),
	}
}
