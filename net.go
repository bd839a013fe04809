package cfop

// ParseNet builds a cube from a 48-letter sticker string: six faces in
// color order (Green, Red, White, Blue, Orange, Yellow), each face as 8
// letters winding clockwise from its top-left corner. Centers are not
// part of the string. Whitespace is ignored, so faces may be separated
// for readability:
//
//	GGGGGGGG RRRRRRRR WWWWWWWW BBBBBBBB OOOOOOOO YYYYYYYY
//
// The result is a well-formed cube but not necessarily a reachable one;
// check with Valid.
func ParseNet(s string) (*Cube, error) {
	c := &Cube{}
	i := 0
	for j := 0; j < len(s); j++ {
		switch s[j] {
		case ' ', '\t', '\n', '\r':
			continue
		}
		if i >= numColors*faceTiles {
			return nil, ErrInvalidNet
		}
		color, err := ParseColor(s[j])
		if err != nil {
			return nil, err
		}
		c.faces[i/faceTiles].SetTile(color, i%faceTiles)
		i++
	}
	if i != numColors*faceTiles {
		return nil, ErrInvalidNet
	}
	return c, nil
}

// Net returns the cube's stickers in the format ParseNet reads, faces
// separated by single spaces.
func (c *Cube) Net() string {
	buf := make([]byte, 0, numColors*(faceTiles+1))
	for f := Color(0); f < numColors; f++ {
		if f > 0 {
			buf = append(buf, ' ')
		}
		for p := 0; p < faceTiles; p++ {
			buf = append(buf, c.Tile(f, p).String()[0])
		}
	}
	return string(buf)
}
