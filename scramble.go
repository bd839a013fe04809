package cfop

import "lukechampine.com/frand"

// DefaultScrambleLen is the default scramble length in turns.
const DefaultScrambleLen = 25

// Scramble applies random turns to the cube, never turning the same face
// twice in a row, and returns the turns it applied.
func (s *Solver) Scramble(c *Cube) []Turn {
	turns := make([]Turn, s.scrambleLen)
	lastFace := Color(numColors)
	for i := range turns {
		face := Color(frand.Intn(numColors))
		for face == lastFace {
			face = Color(frand.Intn(numColors))
		}
		lastFace = face
		turns[i] = Turn(face) + Turn(frand.Intn(3))*numColors
		c.Turn(turns[i])
	}
	return turns
}
