package snake

import "testing"

func TestAdvanceStaysInBoundsAndReverses(t *testing.T) {
	const size = 15
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := Position{X: x, Y: y}
			for _, d := range Directions {
				q := p.Advance(d, size)
				if !q.In(size) {
					t.Fatalf("%v.Advance(%v) = %v left the board", p, d, q)
				}
				if back := q.Advance(d.Opposite(), size); back != p {
					t.Fatalf("%v.Advance(%v).Advance(%v) = %v, want %v", p, d, d.Opposite(), back, p)
				}
			}
		}
	}
}

func TestAdvanceWrapsAtEdges(t *testing.T) {
	const size = 15
	cases := []struct {
		from Position
		dir  Direction
		want Position
	}{
		{Position{0, 14}, Up, Position{0, 0}},
		{Position{7, 0}, Down, Position{7, 14}},
		{Position{0, 3}, Left, Position{14, 3}},
		{Position{14, 3}, Right, Position{0, 3}},
		{Position{4, 4}, Up, Position{4, 5}},
		{Position{4, 4}, Down, Position{4, 3}},
	}
	for _, tc := range cases {
		if got := tc.from.Advance(tc.dir, size); got != tc.want {
			t.Errorf("%v.Advance(%v) = %v, want %v", tc.from, tc.dir, got, tc.want)
		}
	}
}

func TestOppositePairs(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite() == d {
			t.Fatalf("%v is its own opposite", d)
		}
		if d.Opposite().Opposite() != d {
			t.Fatalf("opposite of opposite of %v is %v", d, d.Opposite().Opposite())
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Fatalf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if got, err := ParseDirection(" L "); err != nil || got != Left {
		t.Fatalf("ParseDirection(\" L \") = %v, %v", got, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}
