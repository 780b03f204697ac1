// Command snake-term plays the simulation in a terminal.
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"gridsnake/internal/app"
	"gridsnake/internal/core"
	"gridsnake/internal/snake"
	"gridsnake/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.BoolVar(&cfg.Auto, "a", cfg.Auto, "shorthand for -auto")
	flag.Parse()

	sim, err := snake.New(snake.FromMap(cfg.SimParams()))
	if err != nil {
		log.Fatalf("snake-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("snake-term: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("snake-term: %v", err)
	}

	stats, err := run(screen, sim, cfg)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("ticks=%d eaten=%d resets=%d best=%d", stats.Ticks, stats.FoodEaten, stats.Resets, stats.BestLength)
}

func run(screen tcell.Screen, sim *snake.Simulation, cfg *app.Config) (snake.Stats, error) {
	styles := term.DefaultStyles()
	screen.SetStyle(styles.Empty)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	clock := core.NewFixedStep(cfg.TPS)
	ticker := time.NewTicker(clock.Step())
	defer ticker.Stop()

	divider := core.NewFrameDivider(cfg.FramesPerTick)
	var pilot snake.Autopilot
	auto := cfg.Auto
	paused := false
	total := snake.Stats{}

	draw := func() {
		snap := sim.Snapshot()
		screen.Clear()
		term.Draw(screen, snap, 0, 0, styles)
		term.DrawStatus(screen, 0, snap.Size+1, term.StatusLine(snap, paused), styles.Status)
		screen.Show()
	}
	restart := func() {
		total = merge(total, sim.Stats())
		sim.Reset(cfg.Seed)
		divider.Reset()
	}

	draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return merge(total, sim.Stats()), nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return merge(total, sim.Stats()), nil
				}
				if d, ok := term.DirectionFor(ev); ok {
					sim.QueueDirection(d)
					break
				}
				if ev.Key() != tcell.KeyRune {
					break
				}
				switch ev.Rune() {
				case 'q':
					return merge(total, sim.Stats()), nil
				case 'r':
					restart()
				case ' ':
					paused = !paused
				case 'p':
					auto = !auto
				}
			}
			draw()
		case <-ticker.C:
			ticked := false
			// The ticker drops beats while we are busy; the clock catches up.
			for clock.ShouldStep() {
				if paused || !divider.Frame() {
					continue
				}
				if auto {
					sim.QueueDirection(pilot.Choose(sim))
				}
				if _, err := sim.Tick(); err != nil {
					if !errors.Is(err, snake.ErrOutOfSpace) {
						return total, err
					}
					restart()
				}
				ticked = true
			}
			if ticked {
				draw()
			}
		}
	}
}

func merge(a, b snake.Stats) snake.Stats {
	a.Ticks += b.Ticks
	a.FoodEaten += b.FoodEaten
	a.Resets += b.Resets
	a.BestLength = max(a.BestLength, b.BestLength)
	return a
}
