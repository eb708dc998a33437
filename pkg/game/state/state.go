// Package state tracks a play session across consecutive generated levels.
package state

import (
	"fmt"
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"roomgrid/pkg/engine/random"
	"roomgrid/pkg/game/entities"
	"roomgrid/pkg/game/generator"
	"roomgrid/pkg/game/level"
)

const maxMessages = 5

// Game represents the session state. The Player is created with the first
// level and carried through every level after it.
type Game struct {
	Player *entities.Player
	Level  *level.Level

	Depth int   // Current level number
	Seed  int64 // Seed of the session random source

	Messages []string

	rng *rand.Rand
}

// NewGame creates a new session whose levels are all drawn from one seeded source
func NewGame(seed int64) *Game {
	return &Game{
		Depth:    1,
		Seed:     seed,
		Messages: make([]string, 0),
		rng:      random.New(seed),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// StartLevel generates the level for the current depth. On failure the
// previous level and player position are kept.
func (g *Game) StartLevel(gen generator.LevelGenerator, cfg generator.Config) error {
	cfg.Depth = g.Depth
	lvl, err := gen.Generate(cfg, g.Player, g.rng)
	if err != nil {
		g.AddMessage(gotext.Get("Level %d could not be generated.", g.Depth))
		return fmt.Errorf("level %d: %w", g.Depth, err)
	}

	g.Level = lvl
	g.Player = lvl.Player
	g.AddMessage(gotext.Get("Level %d: %d rooms, exit %d rooms away.", g.Depth, len(lvl.Rooms), len(lvl.Path)-1))
	return nil
}

// AdvanceLevel increments the depth and generates the next level.
// The depth is restored if generation fails.
func (g *Game) AdvanceLevel(gen generator.LevelGenerator, cfg generator.Config) error {
	g.Depth++
	if err := g.StartLevel(gen, cfg); err != nil {
		g.Depth--
		return err
	}
	return nil
}

// ExitReached reports whether the player stands on the current level's exit
func (g *Game) ExitReached() bool {
	if g.Level == nil || g.Level.Exit == nil {
		return false
	}
	return g.Level.Exit.Reached(g.Player)
}
