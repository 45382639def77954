// Package types contains the move vocabulary shared by the cube model, the
// solver and the command line tools.
package types

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six faces in token order.
var Faces = [...]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Valid reports whether f is one of the six face letters.
func (f Face) Valid() bool {
	switch f {
	case FaceR, FaceL, FaceU, FaceD, FaceF, FaceB:
		return true
	}
	return false
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Valid reports whether t is a quarter or half turn.
func (t Turn) Valid() bool {
	return t == TurnCW || t == TurnCCW || t == Turn180
}

// Suffix returns the notation suffix for the turn.
func (t Turn) Suffix() string {
	switch t {
	case TurnCCW:
		return "'"
	case Turn180:
		return "2"
	}
	return ""
}

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face Face `json:"face" yaml:"face"`
	Turn Turn `json:"turn" yaml:"turn"`
}

// Valid reports whether both face and turn are known.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Turn.Valid()
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return string(m.Face) + m.Turn.Suffix()
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
		// Turn180 is its own inverse
	}
	return inv
}

// Quarters expands the move into quarter turns. A half turn becomes two
// clockwise quarter turns.
func (m Move) Quarters() []Move {
	if m.Turn == Turn180 {
		q := Move{Face: m.Face, Turn: TurnCW}
		return []Move{q, q}
	}
	return []Move{m}
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Face != other.Face {
		return false
	}
	return m.Turn == -other.Turn ||
		(m.Turn == Turn180 && other.Turn == Turn180)
}

// CanMerge returns true if two adjacent same-face moves can be merged.
func (m Move) CanMerge(other Move) bool {
	return m.Face == other.Face
}

// Merge combines two same-face moves into one.
// Returns nil if the moves cannot be merged or if they cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Face != other.Face {
		return nil
	}

	// Quarter turns modulo 4: 0 cancels, 2 is a half turn, 3 is one CCW turn.
	combined := (int(m.Turn) + int(other.Turn)) % 4
	if combined < 0 {
		combined += 4
	}

	switch combined {
	case 1:
		return &Move{Face: m.Face, Turn: TurnCW}
	case 2:
		return &Move{Face: m.Face, Turn: Turn180}
	case 3:
		return &Move{Face: m.Face, Turn: TurnCCW}
	}
	return nil
}

// Token encodes the move as a single byte for compact profiling.
// Encoding: face*3 + turn_code where:
//   - face: R=0, L=1, U=2, D=3, F=4, B=5
//   - turn_code: CCW=0, CW=1, 180=2
func (m Move) Token() uint8 {
	var faceCode uint8
	switch m.Face {
	case FaceR:
		faceCode = 0
	case FaceL:
		faceCode = 1
	case FaceU:
		faceCode = 2
	case FaceD:
		faceCode = 3
	case FaceF:
		faceCode = 4
	case FaceB:
		faceCode = 5
	}

	var turnCode uint8
	switch m.Turn {
	case TurnCCW:
		turnCode = 0
	case TurnCW:
		turnCode = 1
	case Turn180:
		turnCode = 2
	}

	return faceCode*3 + turnCode
}

// MoveFromToken decodes a token back into a Move.
func MoveFromToken(token uint8) Move {
	return Move{Face: Faces[(token/3)%6], Turn: [...]Turn{TurnCCW, TurnCW, Turn180}[token%3]}
}
