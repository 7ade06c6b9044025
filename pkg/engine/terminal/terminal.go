package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// MazeSize returns the largest maze that fits a terminal of cols x rows.
// A cell and the wall after it take two columns and two rows, plus one
// closing line each way; reserved rows stay free for the status pane.
// The result is at least 1x1.
func MazeSize(cols, rows, reserved int) (width, depth int) {
	width = (cols - 1) / 2
	depth = (rows - reserved - 1) / 2
	return max(width, 1), max(depth, 1)
}

// FitMaze sizes a maze to the current terminal
func FitMaze(reserved int) (width, depth int) {
	cols, rows := GetSize()
	return MazeSize(cols, rows, reserved)
}
