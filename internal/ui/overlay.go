//go:build ebiten

package ui

import (
	"image/color"

	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// OccupancySource is the read side of the occupancy grid.
type OccupancySource interface {
	OccupiedTiles() []snake.Position
	Size() core.Size
}

// Overlay draws the occupancy grid cache over the board. Digit 1 toggles it.
type Overlay struct {
	src  OccupancySource
	show bool
	tint color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src OccupancySource) *Overlay {
	return &Overlay{src: src, tint: color.RGBA{R: 64, G: 164, B: 223, A: 110}}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw tints every tile the grid marks as occupied.
func (o *Overlay) Draw(screen *ebiten.Image, m render.Mapping) {
	if !o.show {
		return
	}
	size := o.src.Size().W
	for _, p := range o.src.OccupiedTiles() {
		x := m.OriginX + float32(p.X)*m.Tile
		y := m.OriginY + float32(size-1-p.Y)*m.Tile
		vector.StrokeRect(screen, x+1, y+1, m.Tile-2, m.Tile-2, 2, o.tint, false)
	}
}
