package snake

import "testing"

func TestAutopilotHeadsForFood(t *testing.T) {
	sim := newTestSim(t, DefaultConfig())
	sim.food.pos = Position{8, 4}
	sim.food.eaten = false

	if got := (Autopilot{}).Choose(sim); got != Right {
		t.Fatalf("Choose = %v, want right", got)
	}
}

func TestAutopilotNeverReverses(t *testing.T) {
	sim := newTestSim(t, DefaultConfig())
	sim.food.pos = Position{4, 1}
	sim.food.eaten = false

	if got := (Autopilot{}).Choose(sim); got == Down {
		t.Fatal("autopilot proposed a reversal")
	}
}

func TestAutopilotAvoidsOccupiedTiles(t *testing.T) {
	sim := newTestSim(t, DefaultConfig())
	sim.food.pos = Position{4, 8}
	sim.food.eaten = false
	sim.grid.Apply(TileUpdate{Occupy: Position{4, 5}})

	got := (Autopilot{}).Choose(sim)
	if got == Up || got == Down {
		t.Fatalf("Choose = %v, want a sidestep", got)
	}
}

func TestTorusDistance(t *testing.T) {
	cases := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{14, 0}, 1},
		{Position{2, 3}, Position{5, 7}, 7},
		{Position{0, 0}, Position{7, 7}, 14},
		{Position{0, 0}, Position{8, 8}, 14},
	}
	for _, tc := range cases {
		if got := TorusDistance(tc.a, tc.b, 15); got != tc.want {
			t.Errorf("TorusDistance(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
