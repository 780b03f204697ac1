package snake

import (
	"strings"

	"gridsnake/internal/core"
)

// Grid indexes which tiles are under the snake. It is a cache of the snake's
// tiles kept in step by Apply; Rebuild recomputes it from scratch.
type Grid struct {
	cells *core.ByteGrid
}

// TileUpdate is the change a snake tick asks the grid to apply.
type TileUpdate struct {
	Occupy   Position
	Unoccupy *Position

	Ate   bool
	Reset bool
}

// NewGrid allocates an empty size x size grid.
func NewGrid(size int) *Grid {
	return &Grid{cells: core.NewByteGrid(size, size)}
}

// Size returns the side length.
func (g *Grid) Size() int { return g.cells.W }

// IsOccupied reports whether p is under the snake. Positions off the grid
// read as occupied.
func (g *Grid) IsOccupied(p Position) bool {
	if !g.cells.In(p.X, p.Y) {
		return true
	}
	return g.cells.Get(p.X, p.Y) != 0
}

// Apply marks u.Occupy and frees u.Unoccupy when present.
func (g *Grid) Apply(u TileUpdate) {
	g.cells.Set(u.Occupy.X, u.Occupy.Y, 1)
	if u.Unoccupy != nil {
		g.cells.Set(u.Unoccupy.X, u.Unoccupy.Y, 0)
	}
}

// Reset frees every tile.
func (g *Grid) Reset() { g.cells.Clear() }

// Rebuild clears the grid and marks exactly the given tiles.
func (g *Grid) Rebuild(tiles []Position) {
	g.cells.Clear()
	for _, p := range tiles {
		g.cells.Set(p.X, p.Y, 1)
	}
}

// OccupiedCount returns the number of occupied tiles.
func (g *Grid) OccupiedCount() int { return g.cells.Count() }

// FreeCount returns the number of unoccupied tiles.
func (g *Grid) FreeCount() int {
	return g.cells.W*g.cells.H - g.cells.Count()
}

// Occupied lists occupied tiles in row-major order.
func (g *Grid) Occupied() []Position { return g.collect(1) }

// Free lists unoccupied tiles in row-major order.
func (g *Grid) Free() []Position { return g.collect(0) }

func (g *Grid) collect(want uint8) []Position {
	var out []Position
	for y := 0; y < g.cells.H; y++ {
		for x := 0; x < g.cells.W; x++ {
			v := g.cells.Get(x, y)
			if (v != 0) == (want != 0) {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// String renders the grid with '#' for occupied and '.' for free tiles. The
// first line is the highest row.
func (g *Grid) String() string {
	var b strings.Builder
	for y := g.cells.H - 1; y >= 0; y-- {
		for x := 0; x < g.cells.W; x++ {
			if g.cells.Get(x, y) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
