//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"gridsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 16

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	sim      core.Sim
	width    int
	snapshot core.ParameterSnapshot
	title    string
	bg       color.RGBA
	fg       color.RGBA
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{
		sim:   sim,
		width: width,
		title: sim.Name(),
		bg:    color.RGBA{R: 24, G: 24, B: 32, A: 255},
		fg:    color.RGBA{R: 220, G: 220, B: 220, A: 255},
	}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the panel starting at column x.
func (h *HUD) Draw(screen *ebiten.Image, x int, paused, auto bool) {
	if h == nil || h.width == 0 {
		return
	}
	height := screen.Bounds().Dy()
	panel := screen.SubImage(screenRect(x, 0, h.width, height)).(*ebiten.Image)
	panel.Fill(h.bg)

	y := hudLineHeight
	for _, line := range Lines(h.title, h.snapshot) {
		text.Draw(screen, line, basicfont.Face7x13, x+8, y, h.fg)
		y += hudLineHeight
	}
	text.Draw(screen, Flags(paused, auto), basicfont.Face7x13, x+8, height-hudLineHeight, h.fg)
}

func screenRect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
