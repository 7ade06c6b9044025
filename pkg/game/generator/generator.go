package generator

import (
	"darkmaze/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(cfg Config) (*world.Maze, error)
	Name() string
}

// Available generators
var (
	GrowingTree = &GrowingTreeGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = GrowingTree

// Generate builds a complete maze with the default generator
func Generate(cfg Config) (*world.Maze, error) {
	return DefaultGenerator.Generate(cfg)
}
