package cfop

import (
	"testing"

	"lukechampine.com/frand"
)

func TestCrossStateMatchesCube(t *testing.T) {
	// The packed transition function must track the real cube.
	for trial := 0; trial < 20; trial++ {
		c := NewCube()
		state := crossState(c)
		for i := 0; i < 40; i++ {
			turn := Turn(frand.Intn(int(numTurns)))
			c.Turn(turn)
			state = crossTurn(state, turn)
			if state != crossState(c) {
				t.Fatalf("Packed state diverged from cube after %v (trial %d)", turn, trial)
			}
		}
	}
}

func TestSolvedCrossState(t *testing.T) {
	if crossState(NewCube()) != solvedCrossState() {
		t.Error("Solved cube should produce the solved cross state")
	}
}

func TestSolveCrossOnSolvedCube(t *testing.T) {
	s := NewSolver()
	c := NewCube()
	log := NewMoveLog()
	s.solveCross(c, log)
	if log.Len() != 0 {
		t.Errorf("Solving a solved cross should produce no turns, got %v", log.Turns())
	}
}

func TestSolveCrossSingleTurnScrambles(t *testing.T) {
	s := NewSolver()
	for turn := Turn(0); turn < numTurns; turn++ {
		s.arena.Reset()
		c := NewCube()
		c.Turn(turn)
		log := NewMoveLog()
		s.solveCross(c, log)
		if !c.IsCrossSolved() {
			t.Errorf("Cross should be solved after scramble %v", turn)
		}
		if log.Len() > 1 {
			t.Errorf("Single-turn scramble %v should need at most 1 turn, got %v", turn, log.Turns())
		}
	}
}

func TestSolveCrossRandomScrambles(t *testing.T) {
	s := NewSolver()
	for trial := 0; trial < 20; trial++ {
		s.arena.Reset()
		c := NewCube()
		for i := 0; i < 30; i++ {
			c.Turn(Turn(frand.Intn(int(numTurns))))
		}
		log := NewMoveLog()
		s.solveCross(c, log)
		if !c.IsCrossSolved() {
			t.Fatalf("Cross should be solved (trial %d)", trial)
		}
		if log.Len() > crossMaxDepth {
			t.Fatalf("Cross solution of %d turns exceeds the depth bound (trial %d)", log.Len(), trial)
		}
	}
}
