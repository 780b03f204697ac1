package snake

import (
	"slices"
	"testing"

	"gridsnake/internal/core"
)

func newTestSnake(t *testing.T) (*Snake, *Grid, *Food) {
	t.Helper()
	cfg := DefaultConfig()
	s := NewSnake(cfg)
	g := NewGrid(cfg.Size)
	g.Rebuild(s.Tiles())
	return s, g, NewFood(core.NewRNG(1))
}

func repeat(p Position, n int) []Position {
	out := make([]Position, n)
	for i := range out {
		out[i] = p
	}
	return out
}

func TestAdvanceBodyTrailsHeadByOneTick(t *testing.T) {
	s, g, f := newTestSnake(t)

	u := s.Advance(g, f)
	if got := s.Head(); got != (Position{4, 5}) {
		t.Fatalf("head after one tick = %v, want (4,5)", got)
	}
	if got, want := s.Body(), repeat(Position{4, 4}, 3); !slices.Equal(got, want) {
		t.Fatalf("body after one tick = %v, want %v", got, want)
	}
	if u.Occupy != (Position{4, 5}) || u.Unoccupy != nil {
		t.Fatalf("unexpected update %+v", u)
	}
	g.Apply(u)

	s.Advance(g, f)
	want := []Position{{4, 5}, {4, 4}, {4, 4}}
	if got := s.Body(); !slices.Equal(got, want) {
		t.Fatalf("body after two ticks = %v, want %v", got, want)
	}
	if s.AliveTicks() != 2 {
		t.Fatalf("alive ticks = %d, want 2", s.AliveTicks())
	}
}

func TestAdvanceFreesTailOnceCaughtUp(t *testing.T) {
	s, g, f := newTestSnake(t)
	for i := 0; i < 3; i++ {
		g.Apply(s.Advance(g, f))
	}
	u := s.Advance(g, f)
	if u.Unoccupy == nil || *u.Unoccupy != (Position{4, 4}) {
		t.Fatalf("expected start tile to be freed on tick 4, got %+v", u.Unoccupy)
	}
}

func TestReverseDirectionIsRejected(t *testing.T) {
	s, g, f := newTestSnake(t)
	if !s.QueueDirection(Down) {
		t.Fatal("queueing should accept the request")
	}
	s.Advance(g, f)
	if s.Direction() != Up {
		t.Fatalf("direction = %v, want up", s.Direction())
	}
	if got := s.Head(); got != (Position{4, 5}) {
		t.Fatalf("head = %v, want (4,5)", got)
	}
	if _, ok := s.Pending(); ok {
		t.Fatal("pending slot must be cleared even when the turn is rejected")
	}
}

func TestFirstQueuedDirectionWins(t *testing.T) {
	s, g, f := newTestSnake(t)
	if !s.QueueDirection(Left) {
		t.Fatal("first request rejected")
	}
	if s.QueueDirection(Right) {
		t.Fatal("second request in the same tick should be dropped")
	}
	s.Advance(g, f)
	if s.Direction() != Left || s.Head() != (Position{3, 4}) {
		t.Fatalf("direction %v head %v, want left (3,4)", s.Direction(), s.Head())
	}
	if !s.QueueDirection(Up) {
		t.Fatal("slot should be free again after a tick")
	}
}

func TestEatingFoodGrowsWithinTheTick(t *testing.T) {
	s, g, f := newTestSnake(t)
	f.pos = Position{4, 5}
	f.eaten = false

	u := s.Advance(g, f)
	if !u.Ate || u.Reset {
		t.Fatalf("unexpected update %+v", u)
	}
	if !f.Eaten() {
		t.Fatal("food should be marked eaten")
	}
	if got := s.Len(); got != 3+5 {
		t.Fatalf("length = %d, want 8", got)
	}
	body := s.Body()
	tail := body[2]
	for i := 3; i < len(body); i++ {
		if body[i] != tail {
			t.Fatalf("new segment %d at %v, want tail tile %v", i, body[i], tail)
		}
	}
}

func TestStaleFoodIsNotEatenAgain(t *testing.T) {
	s, g, f := newTestSnake(t)
	f.pos = Position{4, 5}
	f.eaten = true

	u := s.Advance(g, f)
	if u.Ate {
		t.Fatal("eaten food must not be consumed twice")
	}
	if s.Len() != 3 {
		t.Fatalf("length = %d, want 3", s.Len())
	}
}

func TestSelfCollisionResetsSnakeAndGrid(t *testing.T) {
	s, g, f := newTestSnake(t)
	s.head = Position{2, 2}
	s.dir = Up
	s.body = []Position{{2, 1}, {3, 1}, {3, 2}, {3, 3}, {2, 3}, {1, 3}}
	s.alive = 20
	g.Rebuild(s.Tiles())
	f.pos = Position{10, 10}
	f.eaten = false

	u := s.Advance(g, f)
	if !u.Reset || u.Ate {
		t.Fatalf("expected reset update, got %+v", u)
	}
	if u.Occupy != (Position{4, 4}) || u.Unoccupy != nil {
		t.Fatalf("reset update should only occupy the start tile, got %+v", u)
	}
	if got := g.OccupiedCount(); got != 0 {
		t.Fatalf("grid should be cleared, %d tiles occupied", got)
	}
	if s.Head() != (Position{4, 4}) || s.Direction() != Up {
		t.Fatalf("head %v dir %v, want (4,4) up", s.Head(), s.Direction())
	}
	if got, want := s.Body(), repeat(Position{4, 4}, 3); !slices.Equal(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	if s.AliveTicks() != 0 {
		t.Fatalf("alive ticks = %d, want 0", s.AliveTicks())
	}
	if !f.Eaten() {
		t.Fatal("food must be marked eaten to force a respawn")
	}
}

func TestFoodCheckPrecedesSelfCollision(t *testing.T) {
	s, g, f := newTestSnake(t)
	// Food cannot legally sit on an occupied tile; forcing it there shows
	// the food branch is taken first.
	g.Apply(TileUpdate{Occupy: Position{4, 5}})
	f.pos = Position{4, 5}
	f.eaten = false

	u := s.Advance(g, f)
	if !u.Ate || u.Reset {
		t.Fatalf("expected food branch, got %+v", u)
	}
}

func TestGrowAppendsOnTail(t *testing.T) {
	s, _, _ := newTestSnake(t)
	s.body = []Position{{4, 3}, {4, 2}}
	s.Grow(3)
	want := []Position{{4, 3}, {4, 2}, {4, 2}, {4, 2}, {4, 2}}
	if got := s.Body(); !slices.Equal(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	s.Grow(0)
	if s.Len() != 5 {
		t.Fatalf("Grow(0) changed length to %d", s.Len())
	}
}

func TestStackedTailIsNotFreed(t *testing.T) {
	s, g, f := newTestSnake(t)
	s.head = Position{4, 6}
	s.body = []Position{{4, 5}, {4, 4}, {4, 4}, {4, 4}}
	s.alive = 10
	g.Rebuild(s.Tiles())

	u := s.Advance(g, f)
	if u.Unoccupy != nil {
		t.Fatalf("tile %v still under the tail must not be freed", *u.Unoccupy)
	}
}

func TestTilesAreDistinct(t *testing.T) {
	s, _, _ := newTestSnake(t)
	if got := s.Tiles(); !slices.Equal(got, []Position{{4, 4}}) {
		t.Fatalf("tiles = %v, want only the start tile", got)
	}
}
