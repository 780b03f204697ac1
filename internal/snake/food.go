package snake

import "gridsnake/internal/core"

// Food is the single item on the board. It starts eaten so the first update
// places it.
type Food struct {
	pos   Position
	eaten bool
	rng   *core.RNG
}

// NewFood returns an eaten food item drawing positions from rng.
func NewFood(rng *core.RNG) *Food {
	return &Food{eaten: true, rng: rng}
}

// Pos returns the food tile. It is stale while Eaten reports true.
func (f *Food) Pos() Position { return f.pos }

// Eaten reports whether the food awaits a respawn.
func (f *Food) Eaten() bool { return f.eaten }

// Eat marks the food for respawn on the next update.
func (f *Food) Eat() { f.eaten = true }

// Update respawns eaten food on a uniformly chosen free tile. When the grid
// is full it returns ErrOutOfSpace and the food stays eaten.
func (f *Food) Update(grid *Grid) error {
	if !f.eaten {
		return nil
	}
	free := grid.Free()
	if len(free) == 0 {
		return ErrOutOfSpace
	}
	f.pos = free[f.rng.IntN(len(free))]
	f.eaten = false
	return nil
}
