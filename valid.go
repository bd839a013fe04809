package cfop

// Valid reports whether the sticker configuration is physically reachable
// from the solved cube. It checks three things: every slot holds a real
// piece and every piece appears exactly once, the orientation sums are
// conserved (edge flips even, corner twists a multiple of three), and the
// combined permutation parity of edges and corners is even.
func (c *Cube) Valid() bool {
	edgePiece, edgeFlip, ok := c.classifyEdges()
	if !ok {
		return false
	}
	cornerPiece, cornerTwist, ok := c.classifyCorners()
	if !ok {
		return false
	}

	var seen uint16
	for _, j := range edgePiece {
		if seen&(1<<j) != 0 {
			return false
		}
		seen |= 1 << j
	}
	if seen != 1<<numEdges-1 {
		return false
	}
	seen = 0
	for _, j := range cornerPiece {
		if seen&(1<<j) != 0 {
			return false
		}
		seen |= 1 << j
	}
	if seen != 1<<8-1 {
		return false
	}

	flips := 0
	for _, f := range edgeFlip {
		flips += f
	}
	if flips%2 != 0 {
		return false
	}
	twists := 0
	for _, r := range cornerTwist {
		twists += r
	}
	if twists%3 != 0 {
		return false
	}

	return (swapCount(edgePiece[:])+swapCount(cornerPiece[:]))%2 == 0
}

// classifyEdges identifies the piece and flip at every edge slot. A slot
// whose two stickers are equal or opposite colors holds no real piece.
func (c *Cube) classifyEdges() (piece [numEdges]uint8, flip [numEdges]int, ok bool) {
	for i := 0; i < numEdges; i++ {
		c1 := c.Tile(edgeTable[i][0].face, int(edgeTable[i][0].pos))
		c2 := c.Tile(edgeTable[i][1].face, int(edgeTable[i][1].pos))
		if c1 == c2 || c1.Opposite() == c2 {
			return piece, flip, false
		}
		found := false
		for j := 0; j < numEdges; j++ {
			t1, t2 := edgeTable[j][0].face, edgeTable[j][1].face
			if c1 == t1 && c2 == t2 {
				piece[i], flip[i] = uint8(j), 0
				found = true
				break
			}
			if c1 == t2 && c2 == t1 {
				piece[i], flip[i] = uint8(j), 1
				found = true
				break
			}
		}
		if !found {
			return piece, flip, false
		}
	}
	return piece, flip, true
}

// classifyCorners identifies the piece and twist at every corner slot.
// Because the table triples all wind the same way, a real piece matches
// exactly one cyclic rotation of some canonical triple.
func (c *Cube) classifyCorners() (piece [8]uint8, twist [8]int, ok bool) {
	for i := 0; i < 8; i++ {
		var cs [3]Color
		for k := 0; k < 3; k++ {
			cs[k] = c.Tile(cornerTable[i][k].face, int(cornerTable[i][k].pos))
		}
		for k := 0; k < 3; k++ {
			if cs[k] == cs[(k+1)%3] || cs[k].Opposite() == cs[(k+1)%3] {
				return piece, twist, false
			}
		}
		found := false
		for j := 0; j < 8 && !found; j++ {
			for r := 0; r < 3; r++ {
				if cs[0] == cornerTable[j][r].face &&
					cs[1] == cornerTable[j][(r+1)%3].face &&
					cs[2] == cornerTable[j][(r+2)%3].face {
					piece[i], twist[i] = uint8(j), r
					found = true
					break
				}
			}
		}
		if !found {
			return piece, twist, false
		}
	}
	return piece, twist, true
}

// swapCount decomposes a permutation into transpositions in place and
// returns how many it took. The input must be a permutation of 0..n-1;
// here it always is, since the caller has already verified every piece
// appears exactly once. A cycle that fails to close means the tables
// themselves are corrupt.
func swapCount(perm []uint8) int {
	p := make([]uint8, len(perm))
	copy(p, perm)
	swaps := 0
	for i := range p {
		guard := 0
		for int(p[i]) != i {
			guard++
			if guard > len(p) {
				panic("cfop: permutation cycle does not close")
			}
			j := p[i]
			p[i], p[j] = p[j], p[i]
			swaps++
		}
	}
	return swaps
}
