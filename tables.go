package cfop

// sticker addresses one tile on the cube: a face and a position on it.
type sticker struct {
	face Color
	pos  uint8
}

// faceCycles are the two 4-cycles a face's own stickers move through when
// the face rotates: corners and edges.
var faceCycles = [2][4]uint8{
	{0, 2, 4, 6},
	{1, 3, 5, 7},
}

// sideRings lists, per face, the three 4-rings of stickers on adjacent
// faces that cycle when the face turns clockwise. Ring order within each
// face follows the rotation, so a clockwise turn shifts each ring forward
// by one and a counter-clockwise turn shifts it back.
var sideRings = [numColors][3][4]sticker{
	Green: {
		{{Orange, 4}, {White, 6}, {Red, 0}, {Yellow, 2}},
		{{Orange, 3}, {White, 5}, {Red, 7}, {Yellow, 1}},
		{{Orange, 2}, {White, 4}, {Red, 6}, {Yellow, 0}},
	},
	Red: {
		{{Green, 4}, {White, 4}, {Blue, 4}, {Yellow, 4}},
		{{Green, 3}, {White, 3}, {Blue, 3}, {Yellow, 3}},
		{{Green, 2}, {White, 2}, {Blue, 2}, {Yellow, 2}},
	},
	White: {
		{{Orange, 2}, {Blue, 6}, {Red, 2}, {Green, 2}},
		{{Orange, 1}, {Blue, 5}, {Red, 1}, {Green, 1}},
		{{Orange, 0}, {Blue, 4}, {Red, 0}, {Green, 0}},
	},
	Blue: {
		{{Orange, 0}, {Yellow, 6}, {Red, 4}, {White, 2}},
		{{Orange, 7}, {Yellow, 5}, {Red, 3}, {White, 1}},
		{{Orange, 6}, {Yellow, 4}, {Red, 2}, {White, 0}},
	},
	Orange: {
		{{Blue, 0}, {White, 0}, {Green, 0}, {Yellow, 0}},
		{{Blue, 6}, {White, 6}, {Green, 6}, {Yellow, 6}},
		{{Blue, 7}, {White, 7}, {Green, 7}, {Yellow, 7}},
	},
	Yellow: {
		{{Orange, 6}, {Green, 6}, {Red, 6}, {Blue, 2}},
		{{Orange, 5}, {Green, 5}, {Red, 5}, {Blue, 1}},
		{{Orange, 4}, {Green, 4}, {Red, 4}, {Blue, 0}},
	},
}

// Edge slot indices. White edges first (the slots the cross solver packs),
// then the middle layer, then the yellow layer.
const (
	edgeUB = iota
	edgeUR
	edgeUF
	edgeUL
	edgeFR
	edgeRB
	edgeBL
	edgeFL
	edgeDF
	edgeDR
	edgeDB
	edgeDL
	numEdges
)

// edgeTable maps each edge slot to its two stickers. The first sticker of
// a white or yellow edge is the one on the White/Yellow face, so the
// solved color of either sticker is just its face.
var edgeTable = [numEdges][2]sticker{
	edgeUB: {{White, 1}, {Blue, 5}},
	edgeUR: {{White, 3}, {Red, 1}},
	edgeUF: {{White, 5}, {Green, 1}},
	edgeUL: {{White, 7}, {Orange, 1}},
	edgeFR: {{Green, 3}, {Red, 7}},
	edgeRB: {{Blue, 3}, {Red, 3}},
	edgeBL: {{Blue, 7}, {Orange, 7}},
	edgeFL: {{Green, 7}, {Orange, 3}},
	edgeDF: {{Yellow, 1}, {Green, 5}},
	edgeDR: {{Yellow, 3}, {Red, 5}},
	edgeDB: {{Yellow, 5}, {Blue, 1}},
	edgeDL: {{Yellow, 7}, {Orange, 5}},
}

// crossTurnTable gives, per face, the 4-cycle of edge slots a clockwise
// turn of that face moves an edge through.
var crossTurnTable = [numColors][4]uint8{
	Green:  {edgeUF, edgeFR, edgeDF, edgeFL},
	Red:    {edgeUR, edgeRB, edgeDR, edgeFR},
	White:  {edgeUB, edgeUR, edgeUF, edgeUL},
	Blue:   {edgeUB, edgeBL, edgeDB, edgeRB},
	Orange: {edgeUL, edgeFL, edgeDL, edgeBL},
	Yellow: {edgeDF, edgeDR, edgeDB, edgeDL},
}

// Corner slots. White corners come first, ordered by the F2L pair they
// belong to (OB, BR, RG, GO), then the yellow corner below each pair.
// Every sticker triple winds clockwise seen from outside the corner, so a
// cyclic rotation of the triple is a twist of the physical piece.
var cornerTable = [8][3]sticker{
	{{White, 0}, {Orange, 0}, {Blue, 6}},
	{{White, 2}, {Blue, 4}, {Red, 2}},
	{{White, 4}, {Red, 0}, {Green, 2}},
	{{White, 6}, {Green, 0}, {Orange, 2}},
	{{Yellow, 6}, {Blue, 0}, {Orange, 6}},
	{{Yellow, 4}, {Red, 4}, {Blue, 2}},
	{{Yellow, 2}, {Green, 4}, {Red, 6}},
	{{Yellow, 0}, {Orange, 4}, {Green, 6}},
}

// f2lEdgeTable lists the 8 slots an F2L edge can occupy: the four middle
// layer slots (indexed by pair) and the four yellow-layer slots above the
// pairs' right faces.
var f2lEdgeTable = [8][2]sticker{
	{{Orange, 7}, {Blue, 7}},
	{{Blue, 3}, {Red, 3}},
	{{Red, 7}, {Green, 3}},
	{{Green, 7}, {Orange, 3}},
	{{Yellow, 3}, {Red, 5}},
	{{Yellow, 1}, {Green, 5}},
	{{Yellow, 7}, {Orange, 5}},
	{{Yellow, 5}, {Blue, 1}},
}

// f2lEdgeColors gives the solved (first, second) sticker colors of each
// f2lEdgeTable slot; for a pair slot these are also its front and right
// faces.
var f2lEdgeColors = [8][2]Color{
	{Orange, Blue},
	{Blue, Red},
	{Red, Green},
	{Green, Orange},
	{Yellow, Red},
	{Yellow, Green},
	{Yellow, Orange},
	{Yellow, Blue},
}

// f2lRightFace is the right face of each pair slot, the face the sexy-move
// retrieval turns.
var f2lRightFace = [4]Color{Blue, Red, Green, Orange}

// f2lLookup holds the move sequence for each top-layer F2L case, indexed
// rel + 4*edgeOri + 8*cornerOri where rel is the edge slot offset from the
// corner slot on the yellow layer. Sequences are written for a pair whose
// front face is F and right face is R; the solver substitutes the actual
// pair faces before applying them.
var f2lLookup = [24][]Turn{
	// corner white sticker down, edge unflipped
	{D, R, D2, RPrime, D, R, DPrime, RPrime},
	{D2, R, D, RPrime, D, R, DPrime, RPrime},
	{D, F, RPrime, FPrime, R, D, R, D, RPrime},
	{R, D2, RPrime, DPrime, R, D, RPrime},
	// corner white sticker down, edge flipped
	{D2, FPrime, DPrime, F, DPrime, FPrime, D, F},
	{DPrime, FPrime, D2, F, DPrime, FPrime, D, F},
	{FPrime, D2, F, D, FPrime, DPrime, F},
	{DPrime, FPrime, D, F, D, FPrime, D, F, DPrime, FPrime, D, F},
	// corner twisted once, edge unflipped
	{DPrime, R, D, RPrime, D2, R, DPrime, RPrime},
	{DPrime, R, D2, RPrime, D2, R, DPrime, RPrime},
	{FPrime, D, F, D2, R, D, RPrime},
	{D, R, DPrime, RPrime},
	// corner twisted once, edge flipped
	{D, FPrime, DPrime, F, DPrime, FPrime, DPrime, F},
	{FPrime, DPrime, F},
	{D, FPrime, D, F, DPrime, FPrime, DPrime, F},
	{F, D2, F2, DPrime, F2, DPrime, FPrime},
	// corner twisted twice, edge unflipped
	{R, D, RPrime},
	{DPrime, R, D, RPrime, D, R, D, RPrime},
	{RPrime, D2, R2, D, R2, D, R},
	{DPrime, R, DPrime, RPrime, D, R, D, RPrime},
	// corner twisted twice, edge flipped
	{D, FPrime, D2, F, D2, FPrime, D, F},
	{D, FPrime, DPrime, F, D2, FPrime, D, F},
	{DPrime, FPrime, D, F},
	{R, DPrime, RPrime, D2, FPrime, DPrime, F},
}
