package cfop

import "strings"

// Dir represents the direction and magnitude of a face turn.
type Dir byte

const (
	CW     Dir = 0 // Clockwise (90 degrees)
	CCW    Dir = 1 // Counter-clockwise (90 degrees)
	Double Dir = 2 // Half turn (180 degrees)
)

// Turn represents one of the 18 face turns. The encoding is face-major:
// turn % 6 is the face color, turn / 6 is the direction.
type Turn byte

const (
	F Turn = iota // Front clockwise
	R             // Right clockwise
	U             // Up clockwise
	B             // Back clockwise
	L             // Left clockwise
	D             // Down clockwise

	FPrime // Front counter-clockwise
	RPrime // Right counter-clockwise
	UPrime // Up counter-clockwise
	BPrime // Back counter-clockwise
	LPrime // Left counter-clockwise
	DPrime // Down counter-clockwise

	F2 // Front 180
	R2 // Right 180
	U2 // Up 180
	B2 // Back 180
	L2 // Left 180
	D2 // Down 180

	numTurns
)

// Face returns the color of the face this turn rotates.
func (t Turn) Face() Color {
	return Color(t % numColors)
}

// Dir returns the direction of the turn.
func (t Turn) Dir() Dir {
	return Dir(t / numColors)
}

// Inverse returns the turn that undoes this one.
// F becomes F', F' becomes F, F2 stays F2.
func (t Turn) Inverse() Turn {
	switch t.Dir() {
	case CW:
		return t + numColors
	case CCW:
		return t - numColors
	default:
		return t
	}
}

// Notation returns the standard cube notation string for this turn.
// Examples: R, R', R2, U, U', U2
func (t Turn) Notation() string {
	suffix := ""
	switch t.Dir() {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return t.Face().Notation() + suffix
}

// String returns the notation string (alias for Notation).
func (t Turn) String() string {
	return t.Notation()
}

// ParseTurn parses a standard notation string into a Turn.
// Examples: R, R', R2, U, U', U2
// Returns an error if the notation is invalid.
func ParseTurn(s string) (Turn, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, ErrInvalidNotation
	}

	var face Color
	switch s[0] {
	case 'F', 'f':
		face = Green
	case 'R', 'r':
		face = Red
	case 'U', 'u':
		face = White
	case 'B', 'b':
		face = Blue
	case 'L', 'l':
		face = Orange
	case 'D', 'd':
		face = Yellow
	default:
		return 0, ErrInvalidNotation
	}

	dir := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			dir = CCW
		case "2":
			dir = Double
		case "2'", "2`":
			dir = Double
		default:
			return 0, ErrInvalidNotation
		}
	}

	return Turn(face) + Turn(dir)*numColors, nil
}

// ParseTurns parses a space-separated sequence of turns.
// Example: "R U R' U'"
func ParseTurns(s string) ([]Turn, error) {
	parts := strings.Fields(s)
	turns := make([]Turn, 0, len(parts))

	for _, part := range parts {
		t, err := ParseTurn(part)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}

	return turns, nil
}

// FormatTurns formats a slice of turns as a space-separated notation string.
func FormatTurns(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}

	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.Notation()
	}

	return strings.Join(parts, " ")
}
