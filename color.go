package cfop

// Color identifies a face color. The numeric order is fixed because the
// geometry tables and the turn encoding index faces by color.
type Color byte

const (
	Green  Color = 0 // Front face when solved
	Red    Color = 1 // Right face when solved
	White  Color = 2 // Up face when solved
	Blue   Color = 3 // Back face when solved
	Orange Color = 4 // Left face when solved
	Yellow Color = 5 // Down face when solved

	numColors = 6
)

// Opposite returns the color on the other side of the cube.
// Green/Blue, Red/Orange and White/Yellow are opposite pairs.
func (c Color) Opposite() Color {
	return (c + 3) % numColors
}

func (c Color) String() string {
	switch c {
	case Green:
		return "G"
	case Red:
		return "R"
	case White:
		return "W"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Notation returns the face letter in standard cube notation for the
// solved orientation (White up, Green front).
func (c Color) Notation() string {
	switch c {
	case Green:
		return "F"
	case Red:
		return "R"
	case White:
		return "U"
	case Blue:
		return "B"
	case Orange:
		return "L"
	case Yellow:
		return "D"
	default:
		return "?"
	}
}

// ParseColor parses a single-letter color name (W, Y, G, B, R, O).
func ParseColor(b byte) (Color, error) {
	switch b {
	case 'G', 'g':
		return Green, nil
	case 'R', 'r':
		return Red, nil
	case 'W', 'w':
		return White, nil
	case 'B', 'b':
		return Blue, nil
	case 'O', 'o':
		return Orange, nil
	case 'Y', 'y':
		return Yellow, nil
	default:
		return 0, ErrInvalidColor
	}
}
