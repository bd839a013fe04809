package cfop

import (
	"github.com/mackworth/cfop/internal/arena"
	"github.com/mackworth/cfop/internal/container"
)

// The cross search runs over a packed 20-bit state: for each of the four
// white edges, 5 bits holding its slot (4 bits) and its flip (1 bit).
// That is small enough to use a flat array of all 2^20 states as the
// visited table, with each entry storing the predecessor state in the low
// 20 bits and the turn that reached it above them.
const (
	crossChunkBits = 5
	crossFlipBit   = 1 << 4
	crossStateBits = 20
	crossStateMax  = 1 << crossStateBits

	// ordered placements of 4 distinct edges in 12 slots, times flips
	crossQueueCap = 12 * 11 * 10 * 9 * 16

	// the white cross is always solvable in 8 turns
	crossMaxDepth = 8
)

// crossState reads the packed cross state off a cube by locating each of
// the four white edges among the twelve slots. An edge is flipped when
// the slot's first sticker is not showing White.
func crossState(c *Cube) uint32 {
	var state uint32
	for i := 0; i < numEdges; i++ {
		c1 := c.Tile(edgeTable[i][0].face, int(edgeTable[i][0].pos))
		c2 := c.Tile(edgeTable[i][1].face, int(edgeTable[i][1].pos))
		for j := 0; j < 4; j++ {
			t1, t2 := edgeTable[j][0].face, edgeTable[j][1].face
			if (c1 == t1 && c2 == t2) || (c1 == t2 && c2 == t1) {
				chunk := uint32(i)
				if c1 != White {
					chunk |= crossFlipBit
				}
				state |= chunk << (j * crossChunkBits)
				break
			}
		}
	}
	return state
}

// solvedCrossState is the packed state with every white edge home and
// unflipped.
func solvedCrossState() uint32 {
	var state uint32
	for j := uint32(0); j < 4; j++ {
		state |= j << (j * crossChunkBits)
	}
	return state
}

// crossTurn advances a packed state by one turn without touching a cube.
// Each tracked edge sitting on the turning face's slot cycle moves one
// step forward (CW), one back (CCW) or two (double); flips toggle only on
// Green and Blue quarter turns, because those are the turns that change
// which sticker of an edge faces White's axis.
func crossTurn(state uint32, t Turn) uint32 {
	var pos, ori [4]uint32
	for j := 0; j < 4; j++ {
		chunk := state >> (j * crossChunkBits)
		pos[j] = chunk & 0xF
		ori[j] = chunk >> 4 & 1
	}

	face := t.Face()
	dir := t.Dir()
	var seen [4]bool
	for i := 0; i < 4; i++ {
		slot := uint32(crossTurnTable[face][i])
		for j := 0; j < 4; j++ {
			if seen[j] || pos[j] != slot {
				continue
			}
			seen[j] = true
			if dir != Double && (face == Green || face == Blue) {
				ori[j] ^= 1
			}
			switch dir {
			case CW:
				pos[j] = uint32(crossTurnTable[face][(i+1)%4])
			case CCW:
				pos[j] = uint32(crossTurnTable[face][(i+3)%4])
			default:
				pos[j] = uint32(crossTurnTable[face][(i+2)%4])
			}
		}
	}

	var out uint32
	for j := 0; j < 4; j++ {
		out |= (pos[j] | ori[j]<<4) << (j * crossChunkBits)
	}
	return out
}

// solveCross finds a shortest turn sequence to the solved cross by BFS
// over packed states and replays it on the cube. The scratch tables come
// from the solver's arena.
func (s *Solver) solveCross(c *Cube, log *MoveLog) {
	start := crossState(c)
	target := solvedCrossState()
	if start == target {
		return
	}

	// entry = parent state | turn<<20; zero means unvisited. The start
	// state's entry only needs to be nonzero, which the out-of-range
	// turn marker guarantees.
	visited := arena.Make[uint32](s.arena, crossStateMax)
	queue := container.NewQueueOver(arena.Make[uint32](s.arena, crossQueueCap))

	visited[start] = start | uint32(numTurns)<<crossStateBits
	queue.Push(start)
	found := false
	for queue.Len() > 0 && !found {
		cur := queue.Pop()
		for t := Turn(0); t < numTurns; t++ {
			next := crossTurn(cur, t)
			if visited[next] != 0 {
				continue
			}
			visited[next] = cur | uint32(t)<<crossStateBits
			if next == target {
				found = true
				break
			}
			queue.Push(next)
		}
	}
	if !found {
		panic("cfop: cross search exhausted without reaching the target")
	}

	var path [crossMaxDepth]Turn
	n := 0
	for cur := target; cur != start; {
		entry := visited[cur]
		if n == len(path) {
			panic("cfop: cross solution exceeds depth bound")
		}
		path[n] = Turn(entry >> crossStateBits)
		n++
		cur = entry & (crossStateMax - 1)
	}
	for i := n - 1; i >= 0; i-- {
		perform(c, log, path[i])
	}
}

// perform applies a turn and logs it.
func perform(c *Cube, log *MoveLog, t Turn) {
	c.Turn(t)
	log.Push(t)
}
