package cube

// Color represents a sticker colour.
type Color uint8

const (
	NoColor Color = iota // unused orientation slot
	White                // Top when solved
	Yellow               // Bottom when solved
	Red                  // Front when solved
	Orange               // Back when solved
	Green                // Left when solved
	Blue                 // Right when solved
)

// Colors lists the six sticker colours in enum order.
var Colors = [...]Color{White, Yellow, Red, Orange, Green, Blue}

// String returns the single-letter code of the colour.
func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "."
	}
}

// Name returns the lowercase colour name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// FaceLetter returns the face-string letter used by Notation:
// white U, yellow D, red F, orange B, green L, blue R.
func (c Color) FaceLetter() byte {
	switch c {
	case White:
		return 'U'
	case Yellow:
		return 'D'
	case Red:
		return 'F'
	case Orange:
		return 'B'
	case Green:
		return 'L'
	case Blue:
		return 'R'
	default:
		return '?'
	}
}

// Opposite returns the colour on the opposite face of a solved cube.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Yellow
	case Yellow:
		return White
	case Red:
		return Orange
	case Orange:
		return Red
	case Green:
		return Blue
	case Blue:
		return Green
	default:
		return NoColor
	}
}
