package cfop

// Stage detection for the CFOP method.

// Stage represents how far along the CFOP method a cube state is. Stages
// progress from Scrambled (0) to Solved (4), allowing comparison with <
// and > operators.
type Stage int

const (
	// StageScrambled indicates no CFOP stage is complete.
	StageScrambled Stage = iota

	// StageCross indicates the white cross is complete: the four white
	// edges sit home with matching side colors.
	StageCross

	// StageF2L indicates the first two layers are complete: the cross
	// plus all four corner/edge pairs.
	StageF2L

	// StageOLL indicates the last layer is oriented: yellow shows on
	// every Down sticker.
	StageOLL

	// StageSolved indicates the cube is completely solved.
	StageSolved
)

// String returns a short identifier for the stage.
func (s Stage) String() string {
	switch s {
	case StageScrambled:
		return "scrambled"
	case StageCross:
		return "cross"
	case StageF2L:
		return "f2l"
	case StageOLL:
		return "oll"
	case StageSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageScrambled:
		return "Scrambled"
	case StageCross:
		return "Cross"
	case StageF2L:
		return "First Two Layers"
	case StageOLL:
		return "Last Layer Oriented"
	case StageSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (s Stage) IsComplete() bool {
	return s == StageSolved
}

// IsCrossSolved reports whether the four white edges are home.
func (c *Cube) IsCrossSolved() bool {
	for i := 0; i < 4; i++ {
		for _, s := range edgeTable[i] {
			if c.Tile(s.face, int(s.pos)) != s.face {
				return false
			}
		}
	}
	return true
}

// IsF2LSolved reports whether the first two layers are complete: the
// cross, the four middle edges and the four white corners.
func (c *Cube) IsF2LSolved() bool {
	if !c.IsCrossSolved() {
		return false
	}
	for i := 4; i < 8; i++ {
		for _, s := range edgeTable[i] {
			if c.Tile(s.face, int(s.pos)) != s.face {
				return false
			}
		}
	}
	for i := 0; i < 4; i++ {
		for _, s := range cornerTable[i] {
			if c.Tile(s.face, int(s.pos)) != s.face {
				return false
			}
		}
	}
	return true
}

// IsOLLSolved reports whether the first two layers are complete and the
// Down face shows yellow everywhere.
func (c *Cube) IsOLLSolved() bool {
	if !c.IsF2LSolved() {
		return false
	}
	return c.faces[Yellow] == SolidFace(Yellow)
}

// IsPLLSolved reports whether the cube is solved.
func (c *Cube) IsPLLSolved() bool {
	return c.IsSolved()
}

// DetectStage returns the furthest stage the current state satisfies.
func (c *Cube) DetectStage() Stage {
	switch {
	case c.IsSolved():
		return StageSolved
	case c.IsOLLSolved():
		return StageOLL
	case c.IsF2LSolved():
		return StageF2L
	case c.IsCrossSolved():
		return StageCross
	default:
		return StageScrambled
	}
}

// Progress reports which stages the current state satisfies.
type Progress struct {
	Cross  bool
	F2L    bool
	OLL    bool
	Solved bool
}

// GetProgress returns the detailed stage progress.
func (c *Cube) GetProgress() Progress {
	return Progress{
		Cross:  c.IsCrossSolved(),
		F2L:    c.IsF2LSolved(),
		OLL:    c.IsOLLSolved(),
		Solved: c.IsSolved(),
	}
}

// Tracker wraps a Cube and provides stage change detection.
type Tracker struct {
	cube          *Cube
	lastStage     Stage
	highestStage  Stage // Monotonic - never goes backwards
	stageCallback func(stage Stage, stageKey string)
}

// NewTracker creates a new cube tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{
		cube:      NewCube(),
		lastStage: StageSolved,
	}
}

// SetStageCallback sets a callback that fires when a stage is completed.
func (t *Tracker) SetStageCallback(cb func(stage Stage, stageKey string)) {
	t.stageCallback = cb
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.cube = NewCube()
	t.lastStage = StageSolved
	t.highestStage = StageScrambled
}

// ApplyTurn applies a turn and checks for stage transitions.
func (t *Tracker) ApplyTurn(turn Turn) {
	t.cube.Turn(turn)
	t.checkStageTransition()
}

// ApplyTurns applies multiple turns.
func (t *Tracker) ApplyTurns(turns []Turn) {
	for _, turn := range turns {
		t.ApplyTurn(turn)
	}
}

// checkStageTransition checks if we've completed a new stage.
func (t *Tracker) checkStageTransition() {
	currentStage := t.cube.DetectStage()

	// Track current state for display purposes
	t.lastStage = currentStage

	// Only trigger the callback and update highest stage at a NEW high.
	// Once a stage has been reached we don't go backwards.
	if currentStage > t.highestStage {
		t.highestStage = currentStage
		if t.stageCallback != nil {
			t.stageCallback(currentStage, currentStage.String())
		}
	}
}

// CurrentStage returns the current detected stage. This reflects the raw
// cube state and may go backwards during solving.
func (t *Tracker) CurrentStage() Stage {
	return t.cube.DetectStage()
}

// HighestStage returns the highest stage reached. This is monotonic and
// never goes backwards.
func (t *Tracker) HighestStage() Stage {
	return t.highestStage
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
