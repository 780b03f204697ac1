package snake

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfSpace is returned when food must spawn but every tile is
	// occupied by the snake.
	ErrOutOfSpace = errors.New("snake: no unoccupied tile left for food")

	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("snake: invalid configuration")
)

// ConfigError reports a construction-time constant that cannot run.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("snake: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
