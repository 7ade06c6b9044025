package generator

import (
	"errors"
	"fmt"
	"math"
)

// Configuration errors, reported before generation starts
var (
	ErrInvalidSize            = errors.New("grid width and depth must be positive")
	ErrInvalidDoorProbability = errors.New("door probability must be within [0, 1]")
	ErrInvalidThemeCount      = errors.New("theme count must be positive")
	ErrInvalidWallVariants    = errors.New("wall variants must not be negative")
)

// Config holds the inputs of one generation run
type Config struct {
	Width int
	Depth int

	// DoorProbability is the chance that a newly discovered cell sits
	// behind a door and starts a new room.
	DoorProbability float64

	// ThemeCount is the number of room themes rooms can draw from
	ThemeCount int

	// WallVariants is the number of interchangeable wall styles.
	// 0 and 1 both mean a single style with no per-wall draw.
	WallVariants int

	// Seed for the random stream (0 = time based)
	Seed int64
}

// DefaultConfig returns the configuration used when no flags are given
func DefaultConfig() Config {
	return Config{
		Width:           20,
		Depth:           20,
		DoorProbability: 0.1,
		ThemeCount:      4,
		WallVariants:    1,
	}
}

// Validate checks every field and returns all problems joined together
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Depth <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Depth))
	}
	if math.IsNaN(c.DoorProbability) || c.DoorProbability < 0 || c.DoorProbability > 1 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrInvalidDoorProbability, c.DoorProbability))
	}
	if c.ThemeCount <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidThemeCount, c.ThemeCount))
	}
	if c.WallVariants < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidWallVariants, c.WallVariants))
	}
	return errors.Join(errs...)
}
