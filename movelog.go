package cfop

import "github.com/mackworth/cfop/internal/container"

// moveLogCap bounds a full solve's move log. The cross contributes at
// most 8 turns; each F2L pair costs at most a handful of retrievals plus
// a 12-turn lookup sequence. Observed solves stay well under 150.
const moveLogCap = 300

// quarterTurns maps a Dir to its quarter-turn count, the unit tidying
// does its arithmetic in.
var quarterTurns = [3]int{CW: 1, CCW: 3, Double: 2}

// MoveLog accumulates the turns of a solve, algebraically combining
// consecutive turns of the same face as they are pushed: F F becomes F2,
// F F' vanishes, F F2 becomes F', F2 F2 vanishes.
type MoveLog struct {
	stack *container.Stack[Turn]
}

// NewMoveLog creates an empty move log.
func NewMoveLog() *MoveLog {
	return &MoveLog{stack: container.NewStack[Turn](moveLogCap)}
}

// newMoveLogOver creates a move log over a caller-provided backing slice.
func newMoveLogOver(backing []Turn) *MoveLog {
	return &MoveLog{stack: container.NewStackOver(backing)}
}

// Push appends a turn and tidies the tail.
func (l *MoveLog) Push(t Turn) {
	l.stack.Push(t)
	l.tidy()
}

// tidy combines the last two turns if they rotate the same face. Summing
// their quarter-turn counts mod 4 gives the replacement: 0 removes both.
func (l *MoveLog) tidy() {
	n := l.stack.Len()
	if n < 2 {
		return
	}
	a := l.stack.At(n - 1)
	b := l.stack.At(n - 2)
	if a.Face() != b.Face() {
		return
	}
	face := Turn(a.Face())
	total := (quarterTurns[a.Dir()] + quarterTurns[b.Dir()]) % 4
	l.stack.Pop()
	l.stack.Pop()
	switch total {
	case 1:
		l.stack.Push(face)
	case 2:
		l.stack.Push(face + 2*numColors)
	case 3:
		l.stack.Push(face + numColors)
	}
}

// Len returns the number of logged turns.
func (l *MoveLog) Len() int {
	return l.stack.Len()
}

// Turns returns a copy of the logged turns in order.
func (l *MoveLog) Turns() []Turn {
	out := make([]Turn, l.stack.Len())
	copy(out, l.stack.Items())
	return out
}

// Clear empties the log.
func (l *MoveLog) Clear() {
	l.stack.Clear()
}

// String returns the logged turns in notation.
func (l *MoveLog) String() string {
	return FormatTurns(l.stack.Items())
}
