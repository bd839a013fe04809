package cfop

import (
	"testing"

	"lukechampine.com/frand"
)

func TestSolvedCubeIsValid(t *testing.T) {
	if !NewCube().Valid() {
		t.Error("Solved cube should be valid")
	}
}

func TestValidityClosedUnderTurns(t *testing.T) {
	// Any legal turn sequence keeps the cube reachable.
	for trial := 0; trial < 50; trial++ {
		c := NewCube()
		for i := 0; i < 40; i++ {
			c.Turn(Turn(frand.Intn(int(numTurns))))
		}
		if !c.Valid() {
			t.Fatalf("Cube should stay valid under legal turns (trial %d)", trial)
		}
	}
}

func TestFlippedEdgeIsInvalid(t *testing.T) {
	c := NewCube()
	a, b := edgeTable[edgeFR][0], edgeTable[edgeFR][1]
	ca := c.Tile(a.face, int(a.pos))
	cb := c.Tile(b.face, int(b.pos))
	c.SetTile(a.face, cb, int(a.pos))
	c.SetTile(b.face, ca, int(b.pos))
	if c.Valid() {
		t.Error("Single flipped edge should be invalid")
	}
}

func TestImpossibleEdgeIsInvalid(t *testing.T) {
	// Same color on both stickers of one edge
	c := NewCube()
	a, b := edgeTable[edgeUB][0], edgeTable[edgeUB][1]
	c.SetTile(b.face, c.Tile(a.face, int(a.pos)), int(b.pos))
	if c.Valid() {
		t.Error("Edge with a duplicated color should be invalid")
	}

	// Opposite colors on one edge
	c = NewCube()
	c.SetTile(b.face, c.Tile(a.face, int(a.pos)).Opposite(), int(b.pos))
	if c.Valid() {
		t.Error("Edge with opposite colors should be invalid")
	}
}

func TestTwistedCornerIsInvalid(t *testing.T) {
	c := NewCube()
	trip := cornerTable[0]
	var vals [3]Color
	for k := 0; k < 3; k++ {
		vals[k] = c.Tile(trip[k].face, int(trip[k].pos))
	}
	for k := 0; k < 3; k++ {
		c.SetTile(trip[k].face, vals[(k+1)%3], int(trip[k].pos))
	}
	if c.Valid() {
		t.Error("Single twisted corner should be invalid")
	}
}

// paintEdge writes the canonical colors of edge piece `piece` into edge
// slot `slot`.
func paintEdge(c *Cube, slot, piece int) {
	for k := 0; k < 2; k++ {
		s := edgeTable[slot][k]
		c.SetTile(s.face, edgeTable[piece][k].face, int(s.pos))
	}
}

// paintCorner writes the canonical colors of corner piece `piece` into
// corner slot `slot`.
func paintCorner(c *Cube, slot, piece int) {
	for k := 0; k < 3; k++ {
		s := cornerTable[slot][k]
		c.SetTile(s.face, cornerTable[piece][k].face, int(s.pos))
	}
}

func TestSwappedEdgesAreInvalid(t *testing.T) {
	c := NewCube()
	paintEdge(c, 0, 1)
	paintEdge(c, 1, 0)
	if c.Valid() {
		t.Error("Two swapped edges alone should be invalid")
	}
}

func TestSwappedEdgesAndCornersAreValid(t *testing.T) {
	// An edge swap and a corner swap cancel out to even parity.
	c := NewCube()
	paintEdge(c, 0, 1)
	paintEdge(c, 1, 0)
	paintCorner(c, 0, 1)
	paintCorner(c, 1, 0)
	if !c.Valid() {
		t.Error("Edge swap plus corner swap should be valid")
	}
}

func TestMissingPieceIsInvalid(t *testing.T) {
	// Two slots holding the same piece
	c := NewCube()
	paintEdge(c, 0, 1)
	if c.Valid() {
		t.Error("Duplicated edge piece should be invalid")
	}
}
