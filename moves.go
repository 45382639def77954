package cubesolver

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(cubesolver.R, cubesolver.U, cubesolver.RPrime, cubesolver.UPrime)
var (
	// Right face moves
	R      = Move{Face: types.FaceR, Turn: types.TurnCW}  // Right clockwise
	RPrime = Move{Face: types.FaceR, Turn: types.TurnCCW} // Right counter-clockwise
	R2     = Move{Face: types.FaceR, Turn: types.Turn180} // Right 180

	// Left face moves
	L      = Move{Face: types.FaceL, Turn: types.TurnCW}  // Left clockwise
	LPrime = Move{Face: types.FaceL, Turn: types.TurnCCW} // Left counter-clockwise
	L2     = Move{Face: types.FaceL, Turn: types.Turn180} // Left 180

	// Up face moves
	U      = Move{Face: types.FaceU, Turn: types.TurnCW}  // Up clockwise
	UPrime = Move{Face: types.FaceU, Turn: types.TurnCCW} // Up counter-clockwise
	U2     = Move{Face: types.FaceU, Turn: types.Turn180} // Up 180

	// Down face moves
	D      = Move{Face: types.FaceD, Turn: types.TurnCW}  // Down clockwise
	DPrime = Move{Face: types.FaceD, Turn: types.TurnCCW} // Down counter-clockwise
	D2     = Move{Face: types.FaceD, Turn: types.Turn180} // Down 180

	// Front face moves
	F      = Move{Face: types.FaceF, Turn: types.TurnCW}  // Front clockwise
	FPrime = Move{Face: types.FaceF, Turn: types.TurnCCW} // Front counter-clockwise
	F2     = Move{Face: types.FaceF, Turn: types.Turn180} // Front 180

	// Back face moves
	B      = Move{Face: types.FaceB, Turn: types.TurnCW}  // Back clockwise
	BPrime = Move{Face: types.FaceB, Turn: types.TurnCCW} // Back counter-clockwise
	B2     = Move{Face: types.FaceB, Turn: types.Turn180} // Back 180
)

// SexyMove is R U R' U'. Six repetitions return a cube to its start.
var SexyMove = []Move{R, U, RPrime, UPrime}

// InverseSexyMove is U R U' R'.
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// TPerm swaps two adjacent top corners and two top edges.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
