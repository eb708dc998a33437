// Package generator builds levels from a room partition of the grid.
package generator

import (
	"roomgrid/pkg/engine/random"
	"roomgrid/pkg/game/entities"
	"roomgrid/pkg/game/level"
)

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(cfg Config, player *entities.Player, rng random.Source) (*level.Level, error)
	Name() string
}

// Available generators
var (
	Partitioned = &PartitionedGenerator{}
)

// DefaultGenerator is the default level generator
var DefaultGenerator LevelGenerator = Partitioned

// CreateLevel generates a level with the default generator.
// A nil player is created on the way (first level only).
func CreateLevel(cfg Config, player *entities.Player, rng random.Source) (*level.Level, error) {
	return DefaultGenerator.Generate(cfg, player, rng)
}
