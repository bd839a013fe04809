package cfop

import "testing"

func TestTurnNotationRoundTrip(t *testing.T) {
	for turn := Turn(0); turn < numTurns; turn++ {
		parsed, err := ParseTurn(turn.Notation())
		if err != nil {
			t.Fatalf("ParseTurn(%q) failed: %v", turn.Notation(), err)
		}
		if parsed != turn {
			t.Errorf("ParseTurn(%q) = %v, want %v", turn.Notation(), parsed, turn)
		}
	}
}

func TestTurnFaceAndDir(t *testing.T) {
	if R.Face() != Red || R.Dir() != CW {
		t.Error("R should be a clockwise Red-face turn")
	}
	if UPrime.Face() != White || UPrime.Dir() != CCW {
		t.Error("U' should be a counter-clockwise White-face turn")
	}
	if F2.Face() != Green || F2.Dir() != Double {
		t.Error("F2 should be a double Green-face turn")
	}
}

func TestTurnInverse(t *testing.T) {
	cases := []struct{ turn, want Turn }{
		{R, RPrime},
		{RPrime, R},
		{R2, R2},
		{D, DPrime},
	}
	for _, tc := range cases {
		if got := tc.turn.Inverse(); got != tc.want {
			t.Errorf("%v.Inverse() = %v, want %v", tc.turn, got, tc.want)
		}
	}
}

func TestParseTurnInvalid(t *testing.T) {
	for _, s := range []string{"", "X", "R3", "RR", "2"} {
		if _, err := ParseTurn(s); err == nil {
			t.Errorf("ParseTurn(%q) should fail", s)
		}
	}
}

func TestParseTurnsAndFormat(t *testing.T) {
	turns, err := ParseTurns("R U2 R' F")
	if err != nil {
		t.Fatalf("ParseTurns failed: %v", err)
	}
	want := []Turn{R, U2, RPrime, F}
	if len(turns) != len(want) {
		t.Fatalf("Expected %d turns, got %d", len(want), len(turns))
	}
	for i := range want {
		if turns[i] != want[i] {
			t.Errorf("turns[%d] = %v, want %v", i, turns[i], want[i])
		}
	}
	if FormatTurns(turns) != "R U2 R' F" {
		t.Errorf("FormatTurns = %q", FormatTurns(turns))
	}

	if _, err := ParseTurns("R Q"); err == nil {
		t.Error("ParseTurns should reject invalid notation")
	}
}

func TestColorOpposite(t *testing.T) {
	pairs := [][2]Color{{Green, Blue}, {Red, Orange}, {White, Yellow}}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%v and %v should be opposite", p[0], p[1])
		}
	}
}
