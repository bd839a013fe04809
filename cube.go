package cfop

import "strings"

// Cube represents a 3x3 Rubik's cube as six packed faces indexed by color.
// The solved orientation is White up, Green front.
type Cube struct {
	faces [numColors]Face
}

// NewCube creates a solved cube.
func NewCube() *Cube {
	c := &Cube{}
	c.SetSolved()
	return c
}

// SetSolved resets every face to its own color.
func (c *Cube) SetSolved() {
	for f := Color(0); f < numColors; f++ {
		c.faces[f] = SolidFace(f)
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Tile returns the sticker color at the given face and position.
func (c *Cube) Tile(face Color, pos int) Color {
	return c.faces[face].Tile(pos)
}

// SetTile writes a sticker and returns the color it replaced.
func (c *Cube) SetTile(face Color, color Color, pos int) Color {
	return c.faces[face].SetTile(color, pos)
}

// IsSolved returns true if every face is a solid color.
func (c *Cube) IsSolved() bool {
	for f := Color(0); f < numColors; f++ {
		if c.faces[f] != SolidFace(f) {
			return false
		}
	}
	return true
}

// Turn applies a single face turn.
func (c *Cube) Turn(t Turn) {
	if t >= numTurns {
		panic("cfop: turn out of range")
	}
	face := t.Face()
	switch t.Dir() {
	case CW:
		c.turnCW(face)
	case CCW:
		c.turnCCW(face)
	case Double:
		c.turnDouble(face)
	}
}

// Apply applies a sequence of turns.
func (c *Cube) Apply(turns ...Turn) {
	for _, t := range turns {
		c.Turn(t)
	}
}

// ApplyNotation parses a notation string and applies it.
func (c *Cube) ApplyNotation(s string) error {
	turns, err := ParseTurns(s)
	if err != nil {
		return err
	}
	c.Apply(turns...)
	return nil
}

// turnCW rotates a face clockwise: the face's own two 4-cycles shift
// forward, and the three side rings shift forward. Each cycle is walked by
// chaining SetTile's previous-color return.
func (c *Cube) turnCW(face Color) {
	for _, cyc := range faceCycles {
		tmp := c.faces[face].Tile(int(cyc[0]))
		for i := 1; i <= 4; i++ {
			tmp = c.faces[face].SetTile(tmp, int(cyc[i%4]))
		}
	}
	for _, ring := range sideRings[face] {
		tmp := c.Tile(ring[0].face, int(ring[0].pos))
		for i := 1; i <= 4; i++ {
			s := ring[i%4]
			tmp = c.faces[s.face].SetTile(tmp, int(s.pos))
		}
	}
}

// turnCCW is turnCW with the cycles walked in reverse.
func (c *Cube) turnCCW(face Color) {
	for _, cyc := range faceCycles {
		tmp := c.faces[face].Tile(int(cyc[0]))
		for i := 3; i >= 0; i-- {
			tmp = c.faces[face].SetTile(tmp, int(cyc[i]))
		}
	}
	for _, ring := range sideRings[face] {
		tmp := c.Tile(ring[0].face, int(ring[0].pos))
		for i := 3; i >= 0; i-- {
			s := ring[i]
			tmp = c.faces[s.face].SetTile(tmp, int(s.pos))
		}
	}
}

// turnDouble is a 180 degree turn: every 4-cycle degenerates into two
// disjoint swaps of opposite entries.
func (c *Cube) turnDouble(face Color) {
	for _, cyc := range faceCycles {
		for i := 0; i < 2; i++ {
			a, b := int(cyc[i]), int(cyc[i+2])
			ca := c.faces[face].Tile(a)
			cb := c.faces[face].SetTile(ca, b)
			c.faces[face].SetTile(cb, a)
		}
	}
	for _, ring := range sideRings[face] {
		for i := 0; i < 2; i++ {
			a, b := ring[i], ring[i+2]
			ca := c.Tile(a.face, int(a.pos))
			cb := c.faces[b.face].SetTile(ca, int(b.pos))
			c.faces[a.face].SetTile(cb, int(a.pos))
		}
	}
}

// tileAt resolves a 3x3 grid coordinate on a face, including the fixed
// center. Used for rendering only.
func (c *Cube) tileAt(face Color, row, col int) Color {
	// grid coordinate to clockwise winding, -1 for the fixed center
	gridPos := [3][3]int{{0, 1, 2}, {7, -1, 3}, {6, 5, 4}}
	pos := gridPos[row][col]
	if pos < 0 {
		return face
	}
	return c.faces[face].Tile(pos)
}

// String returns a text net of the cube: Up on top, then the
// Left/Front/Right/Back band, then Down.
func (c *Cube) String() string {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.tileAt(White, row, col).String() + " ")
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		for _, face := range []Color{Orange, Green, Red, Blue} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.tileAt(face, row, col).String() + " ")
			}
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.tileAt(Yellow, row, col).String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
