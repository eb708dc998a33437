package generator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig  = errors.New("invalid level configuration")
	ErrDegenerateRoom = errors.New("degenerate room")
	ErrRetryExhausted = errors.New("level generation failed")
)

// ConfigError reports a configuration rejected before generation
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// DegenerateRoomError reports rooms too small to carve any walkable interior
type DegenerateRoomError struct {
	Width, Height int
}

func (e *DegenerateRoomError) Error() string {
	return fmt.Sprintf("%v: %dx%d room has no interior cells", ErrDegenerateRoom, e.Width, e.Height)
}

func (e *DegenerateRoomError) Unwrap() error { return ErrDegenerateRoom }

// RetryError reports a sampling stage that ran out of attempts
type RetryError struct {
	Stage    Stage
	Attempts int
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("%v: %s gave up after %d attempts", ErrRetryExhausted, e.Stage, e.Attempts)
}

func (e *RetryError) Unwrap() error { return ErrRetryExhausted }
