package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"roomgrid/pkg/config"
	"roomgrid/pkg/engine/terminal"
	"roomgrid/pkg/game/devtools"
	"roomgrid/pkg/game/generator"
	"roomgrid/pkg/game/level"
	"roomgrid/pkg/game/state"
)

// reservedRows is the number of terminal lines kept for the summary around the map
const reservedRows = 6

var colorTitle = color.Style{color.FgMagenta, color.OpBold}

func initGettext(s config.Settings) {
	gotext.Configure(s.LocaleDir, s.Locale, "default")
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	width := flag.Int("width", settings.LevelWidth, "level width in cells")
	height := flag.Int("height", settings.LevelHeight, "level height in cells")
	rooms := flag.Int("rooms", settings.Rooms, "rooms per side of the square partition")
	depth := flag.Int("depth", settings.Depth, "starting level number")
	seed := flag.Int64("seed", settings.Seed, "random seed (0 picks one from the clock)")
	levels := flag.Int("levels", 1, "number of consecutive levels to generate")
	dump := flag.String("dump", "", "write a full text dump of the last level to this file")
	scale := flag.Int("scale", 0, "cells per printed symbol (0 fits the terminal)")
	useColor := flag.Bool("color", terminal.IsInteractive(), "colour the printed map")
	verbose := flag.Bool("v", false, "log each generation stage")
	flag.Parse()

	settings.LevelWidth = *width
	settings.LevelHeight = *height
	settings.Rooms = *rooms
	settings.Depth = *depth
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	settings.Seed = *seed

	initGettext(settings)

	gen := &generator.PartitionedGenerator{}
	if *verbose {
		gen.Observer = func(stage generator.Stage, lvl *level.Level) {
			log.Printf("[GEN] [INFO] %s done (%d rooms)", stage, len(lvl.Rooms))
		}
	}

	g := state.NewGame(settings.Seed)
	g.Depth = settings.Depth
	cfg := settings.GeneratorConfig()

	if err := run(g, gen, cfg, *levels); err != nil {
		log.Printf("[GEN] [ERROR] %v", err)
		os.Exit(1)
	}

	opts := devtools.Options{Scale: *scale, Color: *useColor, Seed: settings.Seed}
	if opts.Scale <= 0 {
		cols, rows := terminal.MapArea(reservedRows)
		opts.Scale = devtools.FitScale(g.Level, cols, rows)
	}
	printLevel(g, opts)

	if *dump != "" {
		path, err := devtools.DumpLevelToFile(g.Level, *dump, devtools.Options{Metadata: true, Seed: settings.Seed})
		if err != nil {
			log.Printf("[GEN] [ERROR] dump failed: %v", err)
			os.Exit(1)
		}
		log.Printf("[GEN] [INFO] level dump written to %s", path)
	}
}

// run generates the first level and then advances through the remaining ones
func run(g *state.Game, gen generator.LevelGenerator, cfg generator.Config, levels int) error {
	if err := g.StartLevel(gen, cfg); err != nil {
		return err
	}
	for i := 1; i < levels; i++ {
		if err := g.AdvanceLevel(gen, cfg); err != nil {
			return err
		}
	}
	return nil
}

// printLevel writes the map and the session message log to stdout
func printLevel(g *state.Game, opts devtools.Options) {
	colorTitle.Println(gotext.Get("Level %d (seed %d)", g.Depth, g.Seed))
	if err := devtools.WriteMap(os.Stdout, g.Level, opts); err != nil {
		log.Printf("[GEN] [ERROR] %v", err)
		return
	}
	fmt.Println()
	for _, msg := range g.Messages {
		fmt.Println(msg)
	}
}
