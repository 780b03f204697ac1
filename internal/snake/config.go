package snake

import (
	"fmt"
	"strconv"
)

// Config holds the constants a simulation is built from.
type Config struct {
	Size        int
	StartX      int
	StartY      int
	StartLength int
	StartDir    Direction
	Growth      int

	Seed int64
}

// DefaultConfig returns the standard 15x15 board.
func DefaultConfig() Config {
	return Config{
		Size:        15,
		StartX:      4,
		StartY:      4,
		StartLength: 3,
		StartDir:    Up,
		Growth:      5,
		Seed:        1337,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}
	if v, ok := cfg["start_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartX = parsed
		}
	}
	if v, ok := cfg["start_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartY = parsed
		}
	}
	if v, ok := cfg["start_len"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartLength = parsed
		}
	}
	if v, ok := cfg["start_dir"]; ok {
		if parsed, err := ParseDirection(v); err == nil {
			c.StartDir = parsed
		}
	}
	if v, ok := cfg["growth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Growth = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate reports the first constant that would leave the simulation
// unable to run.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return &ConfigError{Field: "size", Reason: fmt.Sprintf("must be positive, got %d", c.Size)}
	case c.StartLength < 1:
		return &ConfigError{Field: "start_len", Reason: fmt.Sprintf("must be at least 1, got %d", c.StartLength)}
	case c.Size <= c.StartLength:
		return &ConfigError{Field: "size", Reason: fmt.Sprintf("%d must exceed starting length %d", c.Size, c.StartLength)}
	case !(Position{X: c.StartX, Y: c.StartY}).In(c.Size):
		return &ConfigError{Field: "start", Reason: fmt.Sprintf("(%d,%d) outside %dx%d grid", c.StartX, c.StartY, c.Size, c.Size)}
	case !c.StartDir.Valid():
		return &ConfigError{Field: "start_dir", Reason: c.StartDir.String()}
	case c.Growth < 0:
		return &ConfigError{Field: "growth", Reason: fmt.Sprintf("must not be negative, got %d", c.Growth)}
	}
	return nil
}
