package cube

// Solved colour scheme, read as the colour of every side.
var scheme = [numFaces]Color{
	Top:    White,
	Front:  Red,
	Right:  Blue,
	Back:   Orange,
	Left:   Green,
	Bottom: Yellow,
}

var (
	solvedPositions    map[Signature]Vec
	solvedOrientations map[Signature][numFaces]Color
)

func init() {
	solvedPositions = make(map[Signature]Vec, 27)
	solvedOrientations = make(map[Signature][numFaces]Color, 27)
	for _, pos := range allPositions() {
		p := newPiece(pos, solvedColors(pos))
		solvedPositions[p.signature] = pos
		solvedOrientations[p.signature] = p.orientation
	}
}

// solvedColors returns the orientation of the piece that belongs at pos.
func solvedColors(pos Vec) [numFaces]Color {
	var o [numFaces]Color
	if pos.Z == 1 {
		o[Top] = scheme[Top]
	}
	if pos.Z == -1 {
		o[Bottom] = scheme[Bottom]
	}
	if pos.Y == -1 {
		o[Front] = scheme[Front]
	}
	if pos.Y == 1 {
		o[Back] = scheme[Back]
	}
	if pos.X == 1 {
		o[Right] = scheme[Right]
	}
	if pos.X == -1 {
		o[Left] = scheme[Left]
	}
	return o
}

// allPositions enumerates {-1,0,1}^3 in x, y, z order.
func allPositions() []Vec {
	out := make([]Vec, 0, 27)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				out = append(out, Vec{x, y, z})
			}
		}
	}
	return out
}

// SolvedPosition returns where the piece with signature sig belongs.
func SolvedPosition(sig Signature) (Vec, bool) {
	pos, ok := solvedPositions[sig]
	return pos, ok
}

// SolvedOrientation returns the orientation of the piece with signature sig
// on a solved cube.
func SolvedOrientation(sig Signature) ([6]Color, bool) {
	o, ok := solvedOrientations[sig]
	return o, ok
}
