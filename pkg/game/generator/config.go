package generator

// DefaultMaxAttempts bounds every resampling loop in the pipeline
const DefaultMaxAttempts = 256

// Config describes one generation run
type Config struct {
	// Level size in grid cells
	LevelWidth  int
	LevelHeight int

	// Room partition; Rows and Columns must be equal and divide the level size
	Rows    int
	Columns int

	// Depth is the level number, threaded through to collaborators only
	Depth int

	// MaxAttempts caps each resampling loop (exit room, exit point)
	MaxAttempts int
}

// DefaultConfig returns an 800x800 level split into 4x4 rooms
func DefaultConfig() Config {
	return Config{
		LevelWidth:  800,
		LevelHeight: 800,
		Rows:        4,
		Columns:     4,
		Depth:       1,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// WithRooms returns a copy of c with an n x n room partition
func (c Config) WithRooms(n int) Config {
	c.Rows = n
	c.Columns = n
	return c
}

// RoomWidth returns the width of one partition slot, walls included
func (c Config) RoomWidth() int {
	if c.Columns <= 0 {
		return 0
	}
	return c.LevelWidth / c.Columns
}

// RoomHeight returns the height of one partition slot, walls included
func (c Config) RoomHeight() int {
	if c.Rows <= 0 {
		return 0
	}
	return c.LevelHeight / c.Rows
}

// Validate reports configuration and degenerate-room errors before any
// generation work starts
func (c Config) Validate() error {
	switch {
	case c.LevelWidth <= 0:
		return &ConfigError{Field: "level width", Reason: "must be positive"}
	case c.LevelHeight <= 0:
		return &ConfigError{Field: "level height", Reason: "must be positive"}
	case c.Columns <= 0:
		return &ConfigError{Field: "columns", Reason: "must be positive"}
	case c.Rows <= 0:
		return &ConfigError{Field: "rows", Reason: "must be positive"}
	case c.Rows != c.Columns:
		return &ConfigError{Field: "rows", Reason: "must equal columns"}
	case c.LevelWidth%c.Columns != 0:
		return &ConfigError{Field: "level width", Reason: "must be divisible by columns"}
	case c.LevelHeight%c.Rows != 0:
		return &ConfigError{Field: "level height", Reason: "must be divisible by rows"}
	case c.MaxAttempts <= 0:
		return &ConfigError{Field: "max attempts", Reason: "must be positive"}
	}

	// rooms are one cell narrower than their slot; the interior needs at
	// least one cell between the left/top wall and the right/bottom wall
	w, h := c.RoomWidth()-1, c.RoomHeight()-1
	if w < 2 || h < 2 {
		return &DegenerateRoomError{Width: w, Height: h}
	}
	return nil
}
