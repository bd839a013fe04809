package cfop

// Face holds the 8 movable stickers of one cube face packed into a uint32,
// 4 bits per sticker. Positions wind clockwise from the top-left corner:
//
//	0 1 2
//	7 . 3
//	6 5 4
//
// The center sticker never moves and is not stored; the face's own color
// stands in for it.
type Face uint32

const (
	faceTiles = 8
	tileBits  = 4
	tileMask  = 0xF
)

// SolidFace returns a face with every sticker set to the given color.
func SolidFace(c Color) Face {
	var f Face
	for p := 0; p < faceTiles; p++ {
		f |= Face(c) << (p * tileBits)
	}
	return f
}

// Tile returns the color of the sticker at the given position.
func (f Face) Tile(pos int) Color {
	if pos < 0 || pos >= faceTiles {
		panic("cfop: tile position out of range")
	}
	return Color(f >> (pos * tileBits) & tileMask)
}

// SetTile writes a sticker and returns the color it replaced. The return
// value lets the turn engine chain stickers around a ring without a
// separate read.
func (f *Face) SetTile(c Color, pos int) Color {
	if pos < 0 || pos >= faceTiles {
		panic("cfop: tile position out of range")
	}
	if c >= numColors {
		panic("cfop: tile color out of range")
	}
	shift := pos * tileBits
	prev := Color(*f >> shift & tileMask)
	*f = *f&^(tileMask<<shift) | Face(c)<<shift
	return prev
}
