// Package term draws a snake board into a tcell screen and translates key
// presses into turns.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/snake"
)

const (
	runeEmpty = '·'
	runeBody  = 'o'
	runeHead  = '@'
	runeFood  = '*'
)

// Styles holds the colours used for each board element.
type Styles struct {
	Empty  tcell.Style
	Body   tcell.Style
	Head   tcell.Style
	Food   tcell.Style
	Status tcell.Style
}

// DefaultStyles returns the standard colour scheme.
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return Styles{
		Empty:  base.Foreground(tcell.NewRGBColor(60, 60, 70)),
		Body:   base.Foreground(tcell.ColorGreen),
		Head:   base.Foreground(tcell.NewRGBColor(150, 240, 120)).Bold(true),
		Food:   base.Foreground(tcell.ColorRed).Bold(true),
		Status: base.Foreground(tcell.ColorWhite),
	}
}

// Draw paints the board with its top-left corner at (x0, y0). Each tile takes
// two columns so the board looks square in most fonts. The highest row is
// drawn first.
func Draw(screen tcell.Screen, snap snake.Snapshot, x0, y0 int, st Styles) {
	n := snap.Size
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			col, row := Cell(snake.Position{X: x, Y: y}, n, x0, y0)
			screen.SetContent(col, row, runeEmpty, nil, st.Empty)
			screen.SetContent(col+1, row, ' ', nil, st.Empty)
		}
	}
	put := func(p snake.Position, r rune, style tcell.Style) {
		if !p.In(n) {
			return
		}
		col, row := Cell(p, n, x0, y0)
		screen.SetContent(col, row, r, nil, style)
	}
	for _, b := range snap.Body {
		put(b, runeBody, st.Body)
	}
	if snap.FoodVisible {
		put(snap.Food, runeFood, st.Food)
	}
	put(snap.Head, runeHead, st.Head)
}

// Cell returns the screen column and row of a tile.
func Cell(p snake.Position, size, x0, y0 int) (int, int) {
	return x0 + 2*p.X, y0 + size - 1 - p.Y
}

// DrawStatus writes one line of text starting at (x, y).
func DrawStatus(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// StatusLine summarises the run for the line under the board.
func StatusLine(snap snake.Snapshot, paused bool) string {
	s := fmt.Sprintf("len %d  best %d  eaten %d  resets %d  tick %d",
		len(snap.Body), snap.Stats.BestLength, snap.Stats.FoodEaten, snap.Stats.Resets, snap.Stats.Ticks)
	if paused {
		s += "  [paused]"
	}
	return s
}

// DirectionFor maps arrow keys, WASD and hjkl to a heading.
func DirectionFor(ev *tcell.EventKey) (snake.Direction, bool) {
	return directionForKey(ev.Key(), ev.Rune())
}

func directionForKey(k tcell.Key, r rune) (snake.Direction, bool) {
	switch k {
	case tcell.KeyUp:
		return snake.Up, true
	case tcell.KeyDown:
		return snake.Down, true
	case tcell.KeyLeft:
		return snake.Left, true
	case tcell.KeyRight:
		return snake.Right, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W', 'k':
			return snake.Up, true
		case 's', 'S', 'j':
			return snake.Down, true
		case 'a', 'A', 'h':
			return snake.Left, true
		case 'd', 'D', 'l':
			return snake.Right, true
		}
	}
	return snake.Up, false
}
