package snake

// Snake owns the head, the trailing body and the pending turn. Body index 0
// is the segment right behind the head; the last index is the tail.
type Snake struct {
	size   int
	growth int

	startPos Position
	startDir Direction
	startLen int

	head Position
	dir  Direction
	body []Position

	pending    Direction
	hasPending bool

	alive int
}

// NewSnake builds a snake in its starting layout from a validated config.
func NewSnake(cfg Config) *Snake {
	s := &Snake{
		size:     cfg.Size,
		growth:   cfg.Growth,
		startPos: Position{X: cfg.StartX, Y: cfg.StartY},
		startDir: cfg.StartDir,
		startLen: cfg.StartLength,
	}
	s.Reset()
	return s
}

// Head returns the head tile.
func (s *Snake) Head() Position { return s.head }

// Direction returns the heading used by the next advance.
func (s *Snake) Direction() Direction { return s.dir }

// Len returns the number of body segments, excluding the head.
func (s *Snake) Len() int { return len(s.body) }

// AliveTicks returns the number of ticks since the last reset.
func (s *Snake) AliveTicks() int { return s.alive }

// Body returns a copy of the body segments, nearest the head first.
func (s *Snake) Body() []Position {
	return append([]Position(nil), s.body...)
}

// Pending returns the queued turn, if any.
func (s *Snake) Pending() (Direction, bool) { return s.pending, s.hasPending }

// Tiles returns the distinct tiles covered by the head and body.
func (s *Snake) Tiles() []Position {
	seen := make(map[Position]struct{}, len(s.body)+1)
	out := make([]Position, 0, len(s.body)+1)
	for _, p := range append([]Position{s.head}, s.body...) {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// QueueDirection stores d for the next tick. Only the first request per tick
// is kept; later ones return false.
func (s *Snake) QueueDirection(d Direction) bool {
	if s.hasPending || !d.Valid() {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// changeDir turns the head unless d reverses the current heading.
func (s *Snake) changeDir(d Direction) bool {
	if !d.Valid() || d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// Advance moves the snake one tick and resolves food and self collisions
// against the grid as it was before this tick. The returned update must be
// applied to the grid afterwards.
func (s *Snake) Advance(grid *Grid, food *Food) TileUpdate {
	if s.hasPending {
		s.changeDir(s.pending)
	}
	s.hasPending = false

	var vacated *Position
	if n := len(s.body); n > 0 && s.alive >= n {
		tail := s.body[n-1]
		vacated = &tail
	}

	last := s.head
	s.head = s.head.Advance(s.dir, s.size)
	for i := range s.body {
		s.body[i], last = last, s.body[i]
	}

	// Stacked tail segments keep the tile occupied.
	if vacated != nil && s.covers(*vacated) {
		vacated = nil
	}

	update := TileUpdate{Occupy: s.head, Unoccupy: vacated}
	switch {
	case !food.Eaten() && s.head == food.Pos():
		food.Eat()
		s.Grow(s.growth)
		update.Ate = true
	case grid.IsOccupied(s.head):
		food.Eat()
		grid.Reset()
		s.Reset()
		return TileUpdate{Occupy: s.head, Reset: true}
	}

	s.alive++
	return update
}

func (s *Snake) covers(p Position) bool {
	if s.head == p {
		return true
	}
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// Grow appends n segments on the current tail tile. They spread out as the
// tail moves on over the following ticks.
func (s *Snake) Grow(n int) {
	if n <= 0 {
		return
	}
	tail := s.head
	if len(s.body) > 0 {
		tail = s.body[len(s.body)-1]
	}
	for i := 0; i < n; i++ {
		s.body = append(s.body, tail)
	}
}

// Reset restores the starting layout.
func (s *Snake) Reset() {
	s.head = s.startPos
	s.dir = s.startDir
	s.body = make([]Position, s.startLen)
	for i := range s.body {
		s.body[i] = s.startPos
	}
	s.hasPending = false
	s.alive = 0
}
