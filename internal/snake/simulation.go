package snake

import (
	"fmt"
	"slices"

	"gridsnake/internal/core"
)

var _ core.Sim = (*Simulation)(nil)

// Simulation owns the snake, the occupancy grid and the food, and advances
// them together one tick at a time. It is not safe for concurrent use.
type Simulation struct {
	cfg   Config
	snake *Snake
	grid  *Grid
	food  *Food
	rng   *core.RNG

	stats   Stats
	display []uint8
}

// TickResult summarises one tick for the driver.
type TickResult struct {
	Tick   int
	Head   Position
	Length int
	Ate    bool
	Reset  bool

	// Food is the food tile after the respawn step; FoodPlaced is false
	// when no tile was left for it.
	Food       Position
	FoodPlaced bool
}

// Stats accumulates counters since the last Reset.
type Stats struct {
	Ticks      int
	FoodEaten  int
	Resets     int
	BestLength int
}

// Snapshot is a value copy of everything a renderer needs.
type Snapshot struct {
	Size        int
	Head        Position
	Direction   Direction
	Body        []Position
	Food        Position
	FoodVisible bool
	Stats       Stats
}

// New validates cfg and builds a simulation in its starting state. Food is
// placed by the first Tick.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := core.NewRNG(cfg.Seed)
	s := &Simulation{
		cfg:     cfg,
		snake:   NewSnake(cfg),
		grid:    NewGrid(cfg.Size),
		food:    NewFood(rng),
		rng:     rng,
		display: make([]uint8, cfg.Size*cfg.Size),
	}
	s.grid.Rebuild(s.snake.Tiles())
	s.stats.BestLength = s.snake.Len()
	return s, nil
}

// Config returns the constants the simulation was built from.
func (s *Simulation) Config() Config { return s.cfg }

// QueueDirection requests a turn for the next tick. Reversals are accepted
// here and dropped when the tick applies them.
func (s *Simulation) QueueDirection(d Direction) bool {
	return s.snake.QueueDirection(d)
}

// Tick applies queued input, advances the snake, updates the grid and
// respawns food. ErrOutOfSpace is returned wrapped alongside a valid result.
func (s *Simulation) Tick() (TickResult, error) {
	update := s.snake.Advance(s.grid, s.food)
	s.grid.Apply(update)

	s.stats.Ticks++
	if update.Ate {
		s.stats.FoodEaten++
	}
	if update.Reset {
		s.stats.Resets++
	}
	if n := s.snake.Len(); n > s.stats.BestLength {
		s.stats.BestLength = n
	}

	res := TickResult{
		Tick:   s.stats.Ticks,
		Head:   s.snake.Head(),
		Length: s.snake.Len(),
		Ate:    update.Ate,
		Reset:  update.Reset,
	}
	if err := s.food.Update(s.grid); err != nil {
		return res, fmt.Errorf("tick %d: %w", res.Tick, err)
	}
	res.Food = s.food.Pos()
	res.FoodPlaced = true
	return res, nil
}

// Reset restarts the board. A zero seed reuses the configured seed.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng.Reseed(seed)
	s.snake.Reset()
	s.grid.Rebuild(s.snake.Tiles())
	s.food.Eat()
	s.stats = Stats{BestLength: s.snake.Len()}
}

// Step advances one tick, satisfying core.Sim.
func (s *Simulation) Step() error {
	_, err := s.Tick()
	return err
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "snake" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Head returns the head tile.
func (s *Simulation) Head() Position { return s.snake.Head() }

// Direction returns the current heading.
func (s *Simulation) Direction() Direction { return s.snake.Direction() }

// Body returns a copy of the body segments, nearest the head first.
func (s *Simulation) Body() []Position { return s.snake.Body() }

// Food returns the food tile and whether it is on the board.
func (s *Simulation) Food() (Position, bool) { return s.food.Pos(), !s.food.Eaten() }

// FoodEaten reports whether the food is waiting for a respawn.
func (s *Simulation) FoodEaten() bool { return s.food.Eaten() }

// Occupied reports whether p is under the snake according to the grid.
func (s *Simulation) Occupied(p Position) bool { return s.grid.IsOccupied(p) }

// OccupiedTiles lists the occupied tiles in row-major order.
func (s *Simulation) OccupiedTiles() []Position { return s.grid.Occupied() }

// Stats returns the counters since the last reset.
func (s *Simulation) Stats() Stats { return s.stats }

// Snapshot copies the state a renderer needs.
func (s *Simulation) Snapshot() Snapshot {
	pos, visible := s.Food()
	return Snapshot{
		Size:        s.cfg.Size,
		Head:        s.snake.Head(),
		Direction:   s.snake.Direction(),
		Body:        s.snake.Body(),
		Food:        pos,
		FoodVisible: visible,
		Stats:       s.stats,
	}
}

// CheckConsistency recomputes occupancy from the snake and compares it with
// the grid. It also checks that visible food sits on a free tile.
func (s *Simulation) CheckConsistency() error {
	want := s.snake.Tiles()
	slices.SortFunc(want, comparePositions)
	got := s.grid.Occupied()
	slices.SortFunc(got, comparePositions)
	if !slices.Equal(want, got) {
		return fmt.Errorf("grid out of sync: snake covers %v, grid marks %v", want, got)
	}
	if pos, ok := s.Food(); ok && s.grid.IsOccupied(pos) {
		return fmt.Errorf("food at %v sits on an occupied tile", pos)
	}
	return nil
}

func comparePositions(a, b Position) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
