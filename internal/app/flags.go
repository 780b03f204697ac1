package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the drivers.
type Config struct {
	Scale         int
	TPS           int
	FramesPerTick int
	Seed          int64
	Auto          bool
	Mesh          bool

	Size     int
	StartX   int
	StartY   int
	StartLen int
	StartDir string
	Growth   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:         32,
		TPS:           60,
		FramesPerTick: 10,
		Seed:          1337,
		Mesh:          true,
		Size:          15,
		StartX:        4,
		StartY:        4,
		StartLen:      3,
		StartDir:      "up",
		Growth:        5,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per tile")
	fs.IntVar(&c.TPS, "tps", c.TPS, "render frames per second")
	fs.IntVar(&c.FramesPerTick, "frames", c.FramesPerTick, "render frames per simulation tick")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "let the autopilot steer")
	fs.BoolVar(&c.Mesh, "mesh", c.Mesh, "draw inset tiles instead of raw cells")
	fs.IntVar(&c.Size, "size", c.Size, "grid side length in tiles")
	fs.IntVar(&c.StartX, "start-x", c.StartX, "starting head column")
	fs.IntVar(&c.StartY, "start-y", c.StartY, "starting head row")
	fs.IntVar(&c.StartLen, "start-len", c.StartLen, "starting body length")
	fs.StringVar(&c.StartDir, "start-dir", c.StartDir, "starting direction (up, down, left, right)")
	fs.IntVar(&c.Growth, "growth", c.Growth, "segments added per food")
}

// SimParams converts the board flags into the key/value form accepted by
// snake.FromMap.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"size":      strconv.Itoa(c.Size),
		"start_x":   strconv.Itoa(c.StartX),
		"start_y":   strconv.Itoa(c.StartY),
		"start_len": strconv.Itoa(c.StartLen),
		"start_dir": c.StartDir,
		"growth":    strconv.Itoa(c.Growth),
		"seed":      strconv.FormatInt(c.Seed, 10),
	}
}
