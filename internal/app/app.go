//go:build ebiten

package app

import (
	"errors"
	"log"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel right of the board.
const HUDWidth = 220

var directionKeys = []struct {
	key ebiten.Key
	dir snake.Direction
}{
	{ebiten.KeyArrowUp, snake.Up},
	{ebiten.KeyW, snake.Up},
	{ebiten.KeyArrowDown, snake.Down},
	{ebiten.KeyS, snake.Down},
	{ebiten.KeyArrowLeft, snake.Left},
	{ebiten.KeyA, snake.Left},
	{ebiten.KeyArrowRight, snake.Right},
	{ebiten.KeyD, snake.Right},
}

// Game adapts a snake simulation to the ebiten.Game interface.
type Game struct {
	sim     *snake.Simulation
	painter *render.GridPainter
	mesher  render.Mesher
	hud     *ui.HUD
	overlay *ui.Overlay
	divider *core.FrameDivider
	pilot   snake.Autopilot

	scale    int
	auto     bool
	mesh     bool
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim *snake.Simulation, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		mesher:  render.TileMesher{},
		hud:     ui.NewHUD(sim, HUDWidth),
		overlay: ui.NewOverlay(sim),
		divider: core.NewFrameDivider(cfg.FramesPerTick),
		scale:   cfg.Scale,
		auto:    cfg.Auto,
		mesh:    cfg.Mesh,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.divider.Reset()
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation on every
// divider tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.auto = !g.auto
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mesh = !g.mesh
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.Reset(time.Now().UnixNano())
	}
	for _, k := range directionKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.sim.QueueDirection(k.dir)
		}
	}

	g.overlay.Update()

	due := !g.paused && g.divider.Frame()
	if due || g.tickOnce {
		g.tickOnce = false
		if g.auto {
			g.sim.QueueDirection(g.pilot.Choose(g.sim))
		}
		if _, err := g.sim.Tick(); err != nil {
			if !errors.Is(err, snake.ErrOutOfSpace) {
				return err
			}
			log.Printf("board full (%v); starting over", err)
			g.Reset(g.seed)
		}
	}
	g.hud.Update()
	return nil
}

// Draw renders the board, the debug overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	board := size.W * g.scale
	mapping := render.FitMapping(board, size.H*g.scale, size.W)
	if g.mesh {
		g.painter.Blit(screen, emptyCells(size), g.scale)
		g.painter.DrawQuads(screen, g.mesher.Quads(g.sim.Snapshot(), mapping))
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.scale)
	}
	g.overlay.Draw(screen, mapping)
	g.hud.Draw(screen, board, g.paused, g.auto)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}

var blank []uint8

func emptyCells(size core.Size) []uint8 {
	if len(blank) != size.W*size.H {
		blank = make([]uint8, size.W*size.H)
	}
	return blank
}
