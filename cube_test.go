package cfop

import (
	"strings"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleTurnBreaksSolved(t *testing.T) {
	c := NewCube()
	c.Turn(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R turn")
	}
}

func TestQuarterTurnFourTimes_AllFaces(t *testing.T) {
	for f := Turn(0); f < numColors; f++ {
		c := NewCube()
		c.Apply(f, f, f, f)
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", f)
			t.Log(c.String())
		}
	}
}

func TestTurnThenInverse_AllTurns(t *testing.T) {
	for turn := Turn(0); turn < numTurns; turn++ {
		c := NewCube()
		c.Apply(turn, turn.Inverse())
		if !c.IsSolved() {
			t.Errorf("%v then %v should return to solved", turn, turn.Inverse())
			t.Log(c.String())
		}
	}
}

func TestDoubleTwice_AllFaces(t *testing.T) {
	for f := Turn(0); f < numColors; f++ {
		c := NewCube()
		c.Apply(f+12, f+12)
		if !c.IsSolved() {
			t.Errorf("%v x 2 should return to solved", f+12)
			t.Log(c.String())
		}
	}
}

func TestDoubleEqualsTwoQuarters_AllFaces(t *testing.T) {
	for f := Turn(0); f < numColors; f++ {
		a := NewCube()
		a.Apply(R, U, F) // start off-solved so the swap path is exercised
		b := a.Clone()
		a.Turn(f + 12)
		b.Apply(f, f)
		if *a != *b {
			t.Errorf("%v should equal %v %v", f+12, f, f)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(R, U, RPrime, UPrime)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	c := NewCube()
	scramble := []Turn{R, U, RPrime, UPrime, F, D, L2, BPrime, U2}

	c.Apply(scramble...)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}

	for i := len(scramble) - 1; i >= 0; i-- {
		c.Turn(scramble[i].Inverse())
	}
	if !c.IsSolved() {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
}

func TestApplyNotation(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("ApplyNotation failed: %v", err)
	}
	if err := c.ApplyNotation("U R U' R'"); err != nil {
		t.Fatalf("ApplyNotation failed: %v", err)
	}
	if !c.IsSolved() {
		t.Error("Sexy move then inverse should return to solved")
	}

	if err := c.ApplyNotation("R X"); err == nil {
		t.Error("ApplyNotation should reject invalid notation")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCube()
	c.Apply(R, U)
	clone := c.Clone()
	clone.Turn(F)
	if *c == *clone {
		t.Error("Turning a clone should not affect the original")
	}
}

func TestNetRoundTrip(t *testing.T) {
	c := NewCube()
	c.Apply(R, U, FPrime, D2, L)

	parsed, err := ParseNet(c.Net())
	if err != nil {
		t.Fatalf("ParseNet failed: %v", err)
	}
	if *parsed != *c {
		t.Error("ParseNet(Net()) should reproduce the cube")
	}

	if _, err := ParseNet("GGG"); err == nil {
		t.Error("ParseNet should reject short input")
	}
	if _, err := ParseNet(c.Net() + " W"); err == nil {
		t.Error("ParseNet should reject long input")
	}
}

func TestStringKeepsCentersFixed(t *testing.T) {
	c := NewCube()
	c.Apply(R, U, FPrime, D2, L, B)

	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Net should have 9 rows, got %d", len(lines))
	}

	centerAt := func(line string, cell int) string {
		return strings.Fields(line)[cell]
	}

	if got := centerAt(lines[1], 1); got != White.String() {
		t.Errorf("Up center should be %v, got %s", White, got)
	}
	for i, face := range []Color{Orange, Green, Red, Blue} {
		if got := centerAt(lines[4], i*3+1); got != face.String() {
			t.Errorf("Middle band center %d should be %v, got %s", i, face, got)
		}
	}
	if got := centerAt(lines[7], 1); got != Yellow.String() {
		t.Errorf("Down center should be %v, got %s", Yellow, got)
	}
}

func TestTilePanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Tile with bad position should panic")
		}
	}()
	c := NewCube()
	c.Tile(White, 8)
}

func TestSetTileReturnsPrevious(t *testing.T) {
	c := NewCube()
	prev := c.SetTile(White, Green, 3)
	if prev != White {
		t.Errorf("Expected previous color White, got %v", prev)
	}
	if c.Tile(White, 3) != Green {
		t.Error("SetTile should write the new color")
	}
}
