package render

import (
	"image/color"

	"gridsnake/internal/snake"
)

// DefaultPalette colours the display cells written by snake.Simulation.Cells,
// indexed by cell value.
var DefaultPalette = []color.RGBA{
	snake.CellEmpty: {R: 16, G: 16, B: 24, A: 255},
	snake.CellBody:  {R: 60, G: 170, B: 80, A: 255},
	snake.CellHead:  {R: 150, G: 240, B: 120, A: 255},
	snake.CellFood:  {R: 220, G: 50, B: 50, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
