package snake

import (
	"slices"
	"testing"
)

func TestGridApplyOccupiesAndFrees(t *testing.T) {
	g := NewGrid(5)
	g.Apply(TileUpdate{Occupy: Position{1, 1}})
	g.Apply(TileUpdate{Occupy: Position{2, 1}})
	if !g.IsOccupied(Position{1, 1}) || !g.IsOccupied(Position{2, 1}) {
		t.Fatal("expected both tiles occupied")
	}

	free := Position{1, 1}
	g.Apply(TileUpdate{Occupy: Position{3, 1}, Unoccupy: &free})
	if g.IsOccupied(free) {
		t.Fatal("expected unoccupied tile to be freed")
	}
	if got := g.OccupiedCount(); got != 2 {
		t.Fatalf("occupied count = %d, want 2", got)
	}
	if got := g.FreeCount(); got != 23 {
		t.Fatalf("free count = %d, want 23", got)
	}
}

func TestGridOutOfBoundsReadsOccupied(t *testing.T) {
	g := NewGrid(3)
	for _, p := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if !g.IsOccupied(p) {
			t.Fatalf("%v should read as occupied", p)
		}
	}
}

func TestGridResetAndRebuild(t *testing.T) {
	g := NewGrid(4)
	tiles := []Position{{0, 0}, {3, 3}, {1, 2}}
	g.Rebuild(tiles)

	want := []Position{{0, 0}, {1, 2}, {3, 3}}
	if got := g.Occupied(); !slices.Equal(got, want) {
		t.Fatalf("occupied = %v, want %v", got, want)
	}

	g.Reset()
	if got := g.OccupiedCount(); got != 0 {
		t.Fatalf("expected empty grid after reset, got %d occupied", got)
	}
	if got := len(g.Free()); got != 16 {
		t.Fatalf("expected 16 free tiles, got %d", got)
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(3)
	g.Rebuild([]Position{{0, 0}, {2, 2}})
	want := "..#\n...\n#.."
	if got := g.String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
}
