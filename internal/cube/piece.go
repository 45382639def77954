package cube

import "sort"

// Kind classifies a piece by how many stickers it carries.
type Kind uint8

const (
	Core   Kind = iota // hidden (0,0,0) piece, no stickers
	Center             // one sticker
	Edge               // two stickers
	Corner             // three stickers
)

func (k Kind) String() string {
	switch k {
	case Core:
		return "core"
	case Center:
		return "center"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// Signature identifies a piece by its colours, sorted ascending and padded
// with NoColor. Signatures are comparable and ordered lexicographically.
type Signature [3]Color

// Less orders signatures lexicographically.
func (s Signature) Less(o Signature) bool {
	for i := range s {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return false
}

// Has reports whether the signature contains colour c.
func (s Signature) Has(c Color) bool {
	for _, x := range s {
		if x == c && c != NoColor {
			return true
		}
	}
	return false
}

func (s Signature) String() string {
	out := ""
	for _, c := range s {
		if c != NoColor {
			out += c.String()
		}
	}
	if out == "" {
		return "-"
	}
	return out
}

// Piece is one of the 27 cubies. Its colours never change; moves update the
// position and the slot each colour occupies.
type Piece struct {
	kind        Kind
	position    Vec
	orientation [numFaces]Color
	signature   Signature
}

func newPiece(pos Vec, orientation [numFaces]Color) Piece {
	p := Piece{position: pos, orientation: orientation}
	colors := make([]Color, 0, 3)
	for _, c := range orientation {
		if c != NoColor {
			colors = append(colors, c)
		}
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
	copy(p.signature[:], colors)
	p.kind = Kind(len(colors))
	return p
}

// Kind returns the piece kind.
func (p *Piece) Kind() Kind { return p.kind }

// Position returns the current position.
func (p *Piece) Position() Vec { return p.position }

// Orientation returns the colour in every slot.
func (p *Piece) Orientation() [6]Color { return p.orientation }

// Color returns the colour facing side f, or NoColor.
func (p *Piece) Color(f Face) Color {
	if !f.Valid() {
		return NoColor
	}
	return p.orientation[f]
}

// Signature returns the sorted colour set.
func (p *Piece) Signature() Signature { return p.signature }

// Has reports whether the piece carries colour c.
func (p *Piece) Has(c Color) bool { return p.signature.Has(c) }

// Colors returns the non-sentinel colours in slot order.
func (p *Piece) Colors() []Color {
	out := make([]Color, 0, 3)
	for _, c := range p.orientation {
		if c != NoColor {
			out = append(out, c)
		}
	}
	return out
}

// FaceOf returns the side that colour c faces.
func (p *Piece) FaceOf(c Color) (Face, bool) {
	for i, x := range p.orientation {
		if x == c && c != NoColor {
			return Face(i), true
		}
	}
	return 0, false
}

// IsPlaced reports whether the piece sits at its solved position.
func (p *Piece) IsPlaced() bool {
	pos, ok := SolvedPosition(p.signature)
	return ok && pos == p.position
}

// IsSolved reports whether the piece sits at its solved position with its
// solved orientation.
func (p *Piece) IsSolved() bool {
	ori, ok := SolvedOrientation(p.signature)
	return ok && p.IsPlaced() && ori == p.orientation
}

func (p *Piece) turn(r rotation) {
	p.position = r.position(p.position)
	p.orientation = r.orientation(p.orientation)
}
