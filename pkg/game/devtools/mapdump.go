// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/setup"
	"darkmaze/pkg/game/theme"
)

// maxListedCells caps the member list printed per room
const maxListedCells = 12

// wallSymbols holds {horizontal, vertical} ASCII walls per variant
var wallSymbols = [][2]byte{
	{'-', '|'},
	{'=', 'H'},
	{'~', '!'},
	{'#', '#'},
}

// tileSymbol returns the ASCII symbol of a layout tile
func tileSymbol(m *world.Maze, t renderer.Tile) byte {
	switch t.Kind {
	case renderer.TileCorner:
		return '+'
	case renderer.TileWall:
		s := wallSymbols[t.Edge.Variant%len(wallSymbols)]
		if t.Horizontal {
			return s[0]
		}
		return s[1]
	case renderer.TileOpen:
		return ' '
	case renderer.TileDoor:
		return 'D'
	case renderer.TileFloor:
		room := m.RoomOf(t.Near)
		if room == nil {
			return '?'
		}
		return themeSymbol(room.Theme)
	}
	return ' '
}

// themeSymbol names the first 36 themes 0-9 then a-z
func themeSymbol(theme int) byte {
	const symbols = "0123456789abcdefghijklmnopqrstuvwxyz"
	if theme < 0 || theme >= len(symbols) {
		return '.'
	}
	return symbols[theme]
}

// writeMapGrid writes the ASCII plan of the maze, north at the top
func writeMapGrid(w io.Writer, m *world.Maze) {
	l := renderer.NewLayout(m)
	line := make([]byte, l.Cols)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			line[col] = tileSymbol(m, l.At(col, row))
		}
		fmt.Fprintln(w, strings.TrimRight(string(line), " "))
	}
}

// WriteMaze writes a full debug dump: metadata, legend, the map, the room
// list and the structural check result. Sections are plain "key: value" text.
func WriteMaze(w io.Writer, m *world.Maze, stats generator.Stats) error {
	if m == nil || m.Grid == nil {
		return fmt.Errorf("no maze")
	}

	fmt.Fprintln(w, "=== MAZE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", m.Seed)
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "depth: %d\n", m.Depth())
	fmt.Fprintf(w, "coordinate_system: x,z (0-based, x=east, z=north)\n")
	fmt.Fprintf(w, "cells: %d\n", m.Grid.CellCount())
	fmt.Fprintf(w, "rooms_live: %d\n", m.Rooms.Len())
	fmt.Fprintf(w, "rooms_created: %d\n", stats.RoomsCreated)
	fmt.Fprintf(w, "rooms_merged: %d\n", stats.RoomsMerged)
	fmt.Fprintf(w, "steps: %d\n", stats.Steps)
	fmt.Fprintf(w, "passages: %d\n", stats.Passages)
	fmt.Fprintf(w, "doors: %d\n", stats.Doors)
	fmt.Fprintf(w, "room_links: %d\n", stats.RoomLinks)
	fmt.Fprintf(w, "walls: %d\n", stats.Walls)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "+ corner post")
	fmt.Fprintln(w, "- | wall (= H, ~ !, # for other wall variants)")
	fmt.Fprintln(w, "D door")
	fmt.Fprintln(w, "0-9 a-z floor, by room theme")
	fmt.Fprintln(w, "(blank between floors) passage")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, m)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	for _, room := range m.Rooms.Live() {
		members := room.Members()
		names := make([]string, 0, min(len(members), maxListedCells))
		for i, c := range members {
			if i == maxListedCells {
				names = append(names, "...")
				break
			}
			names = append(names, c.Name)
		}
		fmt.Fprintf(w, "room %d: theme=%d name=%q size=%d cells=%s\n", room.ID, room.Theme, theme.RoomName(room), room.Size(), strings.Join(names, " "))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Checks ---")
	if err := setup.Check(m); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(w, "FAIL %s\n", line)
		}
	} else {
		fmt.Fprintln(w, "ok")
	}
	fmt.Fprintf(w, "components: %d\n", setup.Components(m))
	return nil
}

// DumpMazeToFile writes WriteMaze output to path and returns its absolute path
func DumpMazeToFile(path string, m *world.Maze, stats generator.Stats) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMaze(f, m, stats); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
