package snake

// Display cell values written by Cells.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellFood
)

// Cells renders the board into a row-major display buffer. Row 0 holds the
// highest Y so that Up points up on screen. The buffer is reused between
// calls.
func (s *Simulation) Cells() []uint8 {
	n := s.cfg.Size
	for i := range s.display {
		s.display[i] = CellEmpty
	}
	set := func(p Position, v uint8) {
		if !p.In(n) {
			return
		}
		s.display[DisplayIndex(p, n)] = v
	}
	for _, b := range s.snake.body {
		set(b, CellBody)
	}
	if pos, ok := s.Food(); ok {
		set(pos, CellFood)
	}
	set(s.snake.Head(), CellHead)
	return s.display
}

// DisplayIndex maps a tile to its index in a Cells buffer of the given size.
func DisplayIndex(p Position, size int) int {
	return (size-1-p.Y)*size + p.X
}
