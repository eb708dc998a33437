// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"roomgrid/pkg/engine/world"
	"roomgrid/pkg/game/level"
)

// Options controls how a level is dumped
type Options struct {
	// Scale > 1 collapses each Scale x Scale block of cells into one symbol
	Scale int
	// Color styles symbols with terminal colour codes
	Color bool
	// Metadata writes the header and legend sections before the map
	Metadata bool
	// Seed is reported in the metadata when non-zero
	Seed int64
}

// Map symbols, highest priority first
const (
	symbolPlayer = '@'
	symbolExit   = 'E'
	symbolDoor   = '+'
	symbolFloor  = '.'
	symbolWall   = '#'
)

var symbolStyles = map[rune]color.Style{
	symbolPlayer: {color.FgGreen, color.BgBlack, color.OpBold},
	symbolExit:   {color.FgGreen},
	symbolDoor:   {color.FgYellow, color.OpBold},
	symbolFloor:  {color.FgGray},
	symbolWall:   {color.FgBlue},
}

func symbolRank(r rune) int {
	switch r {
	case symbolPlayer:
		return 4
	case symbolExit:
		return 3
	case symbolDoor:
		return 2
	case symbolFloor:
		return 1
	default:
		return 0
	}
}

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(lvl *level.Level, doors mapset.Set[world.Point], x, y int) rune {
	p := world.Point{X: x, Y: y}
	switch {
	case p == lvl.PlayerSpawn:
		return symbolPlayer
	case lvl.Exit != nil && p == lvl.Exit.Position():
		return symbolExit
	case doors.Has(p):
		return symbolDoor
	case lvl.Grid.IsWalkable(x, y):
		return symbolFloor
	default:
		return symbolWall
	}
}

func doorSet(lvl *level.Level) mapset.Set[world.Point] {
	doors := mapset.New[world.Point]()
	for _, d := range lvl.Doors {
		doors.Put(d.Near)
		doors.Put(d.Far)
	}
	return doors
}

// writeMapGrid writes the map, one line per row of Scale x Scale blocks
func writeMapGrid(w io.Writer, lvl *level.Level, opts Options) {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	doors := doorSet(lvl)
	width, height := lvl.Grid.Width(), lvl.Grid.Height()

	var line strings.Builder
	for by := 0; by < height; by += scale {
		line.Reset()
		for bx := 0; bx < width; bx += scale {
			best := rune(symbolWall)
			for y := by; y < by+scale && y < height; y++ {
				for x := bx; x < bx+scale && x < width; x++ {
					if s := cellSymbol(lvl, doors, x, y); symbolRank(s) > symbolRank(best) {
						best = s
					}
				}
			}
			if opts.Color {
				line.WriteString(symbolStyles[best].Sprint(string(best)))
			} else {
				line.WriteRune(best)
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

// writeMetadata writes the header and legend sections
func writeMetadata(w io.Writer, lvl *level.Level, opts Options) {
	fmt.Fprintln(w, "=== LEVEL DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level_id: %s\n", lvl.ID)
	fmt.Fprintf(w, "depth: %d\n", lvl.Depth)
	if opts.Seed != 0 {
		fmt.Fprintf(w, "seed: %d\n", opts.Seed)
	}
	fmt.Fprintf(w, "grid_width: %d\n", lvl.Grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", lvl.Grid.Height())
	fmt.Fprintf(w, "rooms: %dx%d\n", lvl.Columns, lvl.Rows)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "player_spawn: %d,%d\n", lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	if lvl.Exit != nil {
		fmt.Fprintf(w, "exit: %d,%d\n", lvl.Exit.X, lvl.Exit.Y)
	}
	fmt.Fprintf(w, "exit_path: %s\n", formatPath(lvl))
	fmt.Fprintf(w, "walkable_cells: %d\n", lvl.Grid.WalkableCount())
	if opts.Scale > 1 {
		fmt.Fprintf(w, "scale: 1:%d\n", opts.Scale)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Doors ---")
	for _, d := range lvl.Doors {
		fmt.Fprintf(w, "  room %d -> room %d %s: %d,%d | %d,%d\n", d.From, d.To, strings.ToLower(d.Dir.String()), d.Near.X, d.Near.Y, d.Far.X, d.Far.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = walkable  # = solid  + = door  @ = player spawn  E = exit")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Map ---")
}

// formatPath renders the exit path as col,row steps
func formatPath(lvl *level.Level) string {
	steps := make([]string, 0, len(lvl.Path))
	for _, idx := range lvl.Path {
		col, row := lvl.RoomCoords(idx)
		steps = append(steps, fmt.Sprintf("%d(%d,%d)", idx, col, row))
	}
	return strings.Join(steps, " -> ")
}

// WriteMap writes a dump of the level to w
func WriteMap(w io.Writer, lvl *level.Level, opts Options) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no level")
	}
	bw := bufio.NewWriter(w)
	if opts.Metadata {
		writeMetadata(bw, lvl, opts)
	}
	writeMapGrid(bw, lvl, opts)
	return bw.Flush()
}

// DumpLevelToFile writes an uncoloured dump to path and returns its absolute path
func DumpLevelToFile(lvl *level.Level, path string, opts Options) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	opts.Color = false
	if err := WriteMap(f, lvl, opts); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// FitScale returns the smallest scale at which the level fits in cols x rows
func FitScale(lvl *level.Level, cols, rows int) int {
	if cols < 1 || rows < 1 {
		return 1
	}
	width, height := lvl.Grid.Width(), lvl.Grid.Height()
	scale := 1
	for ceilDiv(width, scale) > cols || ceilDiv(height, scale) > rows {
		scale++
	}
	return scale
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
