//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridsnake/internal/app"
	"gridsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := snake.New(snake.FromMap(cfg.SimParams()))
	if err != nil {
		log.Fatalf("snake: %v", err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("gridsnake")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
