// Command snake-soak plays many seeded games headlessly and checks the board
// invariants after every tick.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type runResult struct {
	id    uuid.UUID
	seed  int64
	stats snake.Stats
	wins  int
}

func (r runResult) String() string {
	return fmt.Sprintf("%s seed=%d ticks=%d eaten=%d resets=%d wins=%d best=%d",
		r.id, r.seed, r.stats.Ticks, r.stats.FoodEaten, r.stats.Resets, r.wins, r.stats.BestLength)
}

func main() {
	runs := flag.Int("runs", 64, "number of games to play")
	ticks := flag.Int("ticks", 20000, "ticks per game")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first game; game i uses seed+i")
	size := flag.Int("size", 15, "grid side length in tiles")
	growth := flag.Int("growth", 5, "segments added per food")
	wander := flag.Int("wander", 8, "one in N ticks takes a random turn instead of the autopilot's (0 disables)")
	flag.Parse()

	base := snake.DefaultConfig()
	base.Size = *size
	base.Growth = *growth
	if err := base.Validate(); err != nil {
		log.Fatalf("snake-soak: %v", err)
	}

	fmt.Printf("Soaking %d games (%d workers, %d ticks, %dx%d board)\n", *runs, *workers, *ticks, *size, *size)

	results := make([]runResult, *runs)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))

	start := time.Now()
	for i := range results {
		cfg := base
		cfg.Seed = *seed + int64(i)
		g.Go(func() error {
			res, err := soak(ctx, cfg, *ticks, *wander)
			if err != nil {
				return fmt.Errorf("run %s (seed %d): %w", res.id, cfg.Seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("snake-soak: %v", err)
	}
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool {
		if results[i].stats.BestLength != results[j].stats.BestLength {
			return results[i].stats.BestLength > results[j].stats.BestLength
		}
		return results[i].seed < results[j].seed
	})

	fmt.Printf("Completed in %s\n", elapsed.Round(time.Millisecond))
	limit := min(len(results), 10)
	fmt.Printf("Top %d games by best length:\n", limit)
	for i := 0; i < limit; i++ {
		fmt.Printf("%2d. %s\n", i+1, results[i])
	}
	var totalTicks, totalWins int
	for _, r := range results {
		totalTicks += r.stats.Ticks
		totalWins += r.wins
	}
	log.Printf("all invariants held over %d ticks, %d full boards", totalTicks, totalWins)
}

// soak plays one game for the given number of ticks, checking the board after
// every tick.
func soak(ctx context.Context, cfg snake.Config, ticks, wander int) (runResult, error) {
	res := runResult{id: uuid.New(), seed: cfg.Seed}
	sim, err := snake.New(cfg)
	if err != nil {
		return res, err
	}
	turns := core.NewRNG(cfg.Seed ^ 0x5eed)
	var pilot snake.Autopilot

	prevLen := cfg.StartLength
	for t := 0; t < ticks; t++ {
		if t%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if wander > 0 && turns.IntN(wander) == 0 {
			sim.QueueDirection(snake.Directions[turns.IntN(len(snake.Directions))])
		} else {
			sim.QueueDirection(pilot.Choose(sim))
		}

		out, err := sim.Tick()
		res.stats.Ticks++
		if out.Ate {
			res.stats.FoodEaten++
		}
		res.stats.BestLength = max(res.stats.BestLength, out.Length)
		if err != nil {
			if !errors.Is(err, snake.ErrOutOfSpace) {
				return res, err
			}
			res.wins++
			sim.Reset(cfg.Seed + int64(res.wins))
			prevLen = cfg.StartLength
			continue
		}

		if err := sim.CheckConsistency(); err != nil {
			return res, fmt.Errorf("tick %d: %w", out.Tick, err)
		}
		if !out.FoodPlaced {
			return res, fmt.Errorf("tick %d: no food placed", out.Tick)
		}
		switch {
		case out.Reset:
			res.stats.Resets++
			if out.Length != cfg.StartLength {
				return res, fmt.Errorf("tick %d: length %d after reset, want %d", out.Tick, out.Length, cfg.StartLength)
			}
		case out.Length < prevLen:
			return res, fmt.Errorf("tick %d: length shrank from %d to %d", out.Tick, prevLen, out.Length)
		case out.Ate && out.Length != prevLen+cfg.Growth:
			return res, fmt.Errorf("tick %d: ate but length went %d -> %d", out.Tick, prevLen, out.Length)
		}
		prevLen = out.Length
	}
	return res, nil
}
