package cfop

// The F2L stage works the yellow layer: the cross is already solved on
// White (up), so pairs are inserted from below. "Working layer" here
// always means the yellow layer, and the lookup sequences turn D.

// f2lEdgeSlot locates the edge of a pair and returns slot*2 + flip. Slots
// 0..3 are the middle layer, 4..7 the working layer.
func (c *Cube) f2lEdgeSlot(pair int) int {
	t1, t2 := f2lEdgeColors[pair][0], f2lEdgeColors[pair][1]
	for i := 0; i < 8; i++ {
		c1 := c.Tile(f2lEdgeTable[i][0].face, int(f2lEdgeTable[i][0].pos))
		c2 := c.Tile(f2lEdgeTable[i][1].face, int(f2lEdgeTable[i][1].pos))
		if c1 == t1 && c2 == t2 {
			return i * 2
		}
		if c1 == t2 && c2 == t1 {
			return i*2 + 1
		}
	}
	panic("cfop: f2l edge not found in any slot")
}

// f2lCornerSlot locates the corner of a pair and returns slot*3 + twist.
// Slots 0..3 are the white corners, 4..7 the working layer. Matching is
// cyclic, which is sound because all corner triples wind the same way.
func (c *Cube) f2lCornerSlot(pair int) int {
	t := cornerTable[pair]
	for i := 0; i < 8; i++ {
		var cs [3]Color
		for k := 0; k < 3; k++ {
			cs[k] = c.Tile(cornerTable[i][k].face, int(cornerTable[i][k].pos))
		}
		for r := 0; r < 3; r++ {
			if cs[0] == t[r].face && cs[1] == t[(r+1)%3].face && cs[2] == t[(r+2)%3].face {
				return i*3 + r
			}
		}
	}
	panic("cfop: f2l corner not found in any slot")
}

// f2lPairSolved reports whether a pair's edge and corner are both home.
func (c *Cube) f2lPairSolved(pair int) bool {
	for _, s := range f2lEdgeTable[pair] {
		if c.Tile(s.face, int(s.pos)) != s.face {
			return false
		}
	}
	for _, s := range cornerTable[pair] {
		if c.Tile(s.face, int(s.pos)) != s.face {
			return false
		}
	}
	return true
}

// sexyInsert kicks whatever occupies a first-two-layer slot up to the
// working layer with side D side'.
func sexyInsert(c *Cube, log *MoveLog, slot int) {
	side := Turn(f2lRightFace[slot])
	perform(c, log, side)
	perform(c, log, D)
	perform(c, log, side.Inverse())
}

// solvePairTop places a pair whose edge and corner both sit on the
// working layer. It aligns the corner over the target slot with a D turn,
// then applies the lookup sequence for the case, substituting the pair's
// actual front and right faces for the placeholder F and R.
func solvePairTop(c *Cube, log *MoveLog, target, ep, eo, cp, co int) {
	cp -= 4
	ep -= 4
	rel := (ep - cp + 4) % 4
	seq := rel + 4*eo + 8*co

	switch (target - cp + 4) % 4 {
	case 1:
		perform(c, log, DPrime)
	case 2:
		perform(c, log, D2)
	case 3:
		perform(c, log, D)
	}

	front, right := f2lEdgeColors[target][0], f2lEdgeColors[target][1]
	for _, t := range f2lLookup[seq] {
		base := t - Turn(t.Face())
		switch t.Face() {
		case Green:
			t = base + Turn(front)
		case Red:
			t = base + Turn(right)
		}
		perform(c, log, t)
	}
}

// solveF2L inserts all four pairs. Each iteration either places a pair
// whose pieces are both on the working layer, or retrieves a stuck piece
// with a sexy insert so the next iteration can place it. Two retrievals
// in a row without a placement means the solver is stuck, which the
// tables guarantee cannot happen.
func (s *Solver) solveF2L(c *Cube, log *MoveLog) {
	var solved [4]bool
	n := 0
	for i := range solved {
		if c.f2lPairSolved(i) {
			solved[i] = true
			n++
		}
	}

	justRetrieved := false
	for guard := 0; n < 4; guard++ {
		if guard >= 64 {
			panic("cfop: f2l iteration bound exceeded")
		}

		placed := false
		for i := 0; i < 4; i++ {
			if solved[i] {
				continue
			}
			e := c.f2lEdgeSlot(i)
			ep, eo := e/2, e%2
			k := c.f2lCornerSlot(i)
			cp, co := k/3, k%3
			if ep >= 4 && cp >= 4 {
				solvePairTop(c, log, i, ep, eo, cp, co)
				if !c.f2lPairSolved(i) {
					panic("cfop: f2l lookup failed to place pair")
				}
				solved[i] = true
				n++
				placed = true
				justRetrieved = false
				break
			}
		}
		if placed {
			continue
		}
		if justRetrieved {
			panic("cfop: f2l retrieval made no progress")
		}

		// One piece up, one down: clear the working-layer piece off the
		// slot it would collide with, then kick the stuck piece up.
		retrieved := false
		for i := 0; i < 4 && !retrieved; i++ {
			if solved[i] {
				continue
			}
			ep := c.f2lEdgeSlot(i) / 2
			cp := c.f2lCornerSlot(i) / 3
			switch {
			case ep == cp:
				sexyInsert(c, log, ep)
			case ep < 4 && cp < 4:
				continue
			case ep >= 4:
				if ep-4 == cp {
					perform(c, log, DPrime)
				}
				sexyInsert(c, log, cp)
			default:
				if cp-4 == ep {
					perform(c, log, DPrime)
				}
				sexyInsert(c, log, ep)
			}
			retrieved = true
		}

		// Both pieces buried in the first two layers: kick both up,
		// opposite slot first when they are adjacent so the second kick
		// cannot disturb the first.
		if !retrieved {
			for i := 0; i < 4; i++ {
				if solved[i] {
					continue
				}
				ep := c.f2lEdgeSlot(i) / 2
				cp := c.f2lCornerSlot(i) / 3
				if ep < 4 && cp < 4 {
					if (cp-ep+4)%4 == 2 {
						sexyInsert(c, log, cp)
						sexyInsert(c, log, ep)
					} else {
						sexyInsert(c, log, ep)
						sexyInsert(c, log, cp)
					}
					retrieved = true
					break
				}
			}
		}
		if !retrieved {
			panic("cfop: f2l found no piece to retrieve")
		}
		justRetrieved = true
	}
}
