package render

import "gridsnake/internal/snake"

// Mapping places the board on screen. Origin is the top-left pixel of the
// board, Tile the side of one tile in pixels and Inset the gap left on each
// side of a tile so neighbouring segments stay distinguishable.
type Mapping struct {
	OriginX, OriginY float32
	Tile             float32
	Inset            float32
}

// FitMapping centres a size x size board in a w x h screen.
func FitMapping(w, h, size int) Mapping {
	if size <= 0 {
		return Mapping{}
	}
	side := w
	if h < side {
		side = h
	}
	tile := float32(side) / float32(size)
	board := tile * float32(size)
	return Mapping{
		OriginX: (float32(w) - board) / 2,
		OriginY: (float32(h) - board) / 2,
		Tile:    tile,
		Inset:   tile / 10,
	}
}

// Kind tells renderers which element a quad belongs to.
type Kind uint8

const (
	KindBody Kind = iota
	KindHead
	KindFood
)

// Quad is an axis-aligned screen rectangle.
type Quad struct {
	X0, Y0, X1, Y1 float32
	Kind           Kind
}

// Mesher produces drawable quads for a board snapshot.
type Mesher interface {
	Quads(s snake.Snapshot, m Mapping) []Quad
}

// TileMesher draws every element as one quad per tile.
type TileMesher struct{}

// Quads returns body quads from tail to head, then the food and the head, so
// later quads paint over earlier ones.
func (TileMesher) Quads(s snake.Snapshot, m Mapping) []Quad {
	out := make([]Quad, 0, len(s.Body)+2)
	for i := len(s.Body) - 1; i >= 0; i-- {
		out = append(out, tileQuad(s.Body[i], s.Size, m, KindBody))
	}
	if s.FoodVisible {
		out = append(out, tileQuad(s.Food, s.Size, m, KindFood))
	}
	out = append(out, tileQuad(s.Head, s.Size, m, KindHead))
	return out
}

// tileQuad maps a tile to screen space. Screen Y grows downwards while tile
// Y grows upwards.
func tileQuad(p snake.Position, size int, m Mapping, k Kind) Quad {
	x := m.OriginX + float32(p.X)*m.Tile
	y := m.OriginY + float32(size-1-p.Y)*m.Tile
	return Quad{
		X0:   x + m.Inset,
		Y0:   y + m.Inset,
		X1:   x + m.Tile - m.Inset,
		Y1:   y + m.Tile - m.Inset,
		Kind: k,
	}
}
