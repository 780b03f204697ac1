package snake

// Autopilot picks turns that close in on the food while avoiding occupied
// tiles. It never proposes a reversal.
type Autopilot struct{}

// Choose returns the heading to queue before the next tick.
func (Autopilot) Choose(s *Simulation) Direction {
	size := s.cfg.Size
	head := s.snake.Head()
	cur := s.snake.Direction()
	target, hasFood := s.Food()

	best := cur
	bestScore := -1
	for _, d := range Directions {
		if d == cur.Opposite() {
			continue
		}
		next := head.Advance(d, size)
		if s.grid.IsOccupied(next) {
			continue
		}
		score := 0
		if hasFood {
			score = TorusDistance(next, target, size)
		}
		if bestScore < 0 || score < bestScore || (score == bestScore && d == cur) {
			best, bestScore = d, score
		}
	}
	return best
}

// TorusDistance is the Manhattan distance between a and b on a wrapping
// size x size board.
func TorusDistance(a, b Position, size int) int {
	return torusAxis(a.X, b.X, size) + torusAxis(a.Y, b.Y, size)
}

func torusAxis(a, b, size int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if size-d < d {
		return size - d
	}
	return d
}
