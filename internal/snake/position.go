package snake

import (
	"fmt"
	"strings"
)

// Position addresses one tile of the grid. Valid positions satisfy
// 0 <= X, Y < size.
type Position struct {
	X, Y int
}

// In reports whether p lies inside a size x size grid.
func (p Position) In(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Advance returns the tile one step from p in direction d. Leaving an edge
// re-enters from the opposite edge.
func (p Position) Advance(d Direction, size int) Position {
	if size <= 0 {
		return p
	}
	dx, dy := d.Delta()
	return Position{X: wrap(p.X+dx, size), Y: wrap(p.Y+dy, size)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func wrap(v, size int) int {
	return (v%size + size) % size
}

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the tile offset of one step. Up increases Y.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool { return d <= Right }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts the names produced by Direction.String and their
// first letters, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}
