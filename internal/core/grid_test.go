package core

import "testing"

func TestByteGridSetGetCount(t *testing.T) {
	g := NewByteGrid(4, 3)
	if !g.Set(3, 2, 7) || g.Get(3, 2) != 7 {
		t.Fatal("set/get round trip failed")
	}
	if g.Set(4, 0, 1) || g.Get(-1, 0) != 0 {
		t.Fatal("out-of-range access should be ignored")
	}
	if g.Count() != 1 {
		t.Fatalf("count = %d, want 1", g.Count())
	}
	g.Clear()
	if g.Count() != 0 {
		t.Fatal("clear left cells set")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("unexpected grid %dx%d", g.W, g.H)
	}
}
