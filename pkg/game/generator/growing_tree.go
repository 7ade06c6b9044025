package generator

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/stack"

	"darkmaze/pkg/engine/world"
)

// GrowingTreeGenerator carves mazes with a depth-first biased growing tree
// that partitions passage-connected regions into themed rooms.
type GrowingTreeGenerator struct{}

// Name returns the name of this generator
func (g *GrowingTreeGenerator) Name() string {
	return "Growing Tree"
}

// Generate runs a full generation synchronously
func (g *GrowingTreeGenerator) Generate(cfg Config) (*world.Maze, error) {
	b, err := NewBuilder(cfg)
	if err != nil {
		return nil, err
	}
	for !b.Done() {
		b.Step()
	}
	return b.Maze(), nil
}

// StepResult tells the driving loop whether more steps remain
type StepResult int

const (
	Continue StepResult = iota
	Done
)

// Stats counts what a run has produced so far
type Stats struct {
	Steps        int
	Cells        int
	RoomsCreated int
	RoomsMerged  int
	Walls        int // wall instances, boundary walls included
	Passages     int // passage pairs to newly discovered cells
	Doors        int // door pairs to newly discovered cells
	RoomLinks    int // passage pairs joining two existing same-theme cells
}

// TreeEdges returns the number of discovery edges, which form a spanning tree
func (s Stats) TreeEdges() int {
	return s.Passages + s.Doors
}

// Builder holds the state of one generation run. It is advanced one atomic
// transition at a time with Step and must not be shared between goroutines.
type Builder struct {
	cfg   Config
	seed  int64
	rng   *rand.Rand
	grid  *world.Grid
	rooms *world.Rooms

	// active is the frontier; the newest cell is always expanded first
	active *stack.Stack[*world.Cell]

	seeded bool
	done   bool
	stats  Stats
}

// NewBuilder validates cfg and prepares an empty grid. Nothing is carved
// until the first Step.
func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Builder{
		cfg:    cfg,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		grid:   world.NewGrid(cfg.Width, cfg.Depth),
		rooms:  world.NewRooms(),
		active: stack.New[*world.Cell](),
	}, nil
}

// Seed returns the resolved seed of this run
func (b *Builder) Seed() int64 {
	return b.seed
}

// Done returns true once every created cell is fully initialized
func (b *Builder) Done() bool {
	return b.done
}

// Stats returns the counters of the run so far
func (b *Builder) Stats() Stats {
	return b.stats
}

// ActiveCount returns the current frontier size
func (b *Builder) ActiveCount() int {
	return b.active.Size()
}

// Current returns the frontier cell the next step will expand, or nil
func (b *Builder) Current() *world.Cell {
	if b.active.Size() == 0 {
		return nil
	}
	return b.active.Peek()
}

// Maze returns the maze as built so far. After Done it is complete.
func (b *Builder) Maze() *world.Maze {
	return &world.Maze{Grid: b.grid, Rooms: b.rooms, Seed: b.seed}
}

// Step performs one state transition: the seed step, popping an exhausted
// frontier cell, or deciding one side of the newest frontier cell.
func (b *Builder) Step() StepResult {
	if b.done {
		return Done
	}
	b.stats.Steps++

	if !b.seeded {
		b.seeded = true
		cell := b.createCell(b.grid.RandomCoordinates(b.rng))
		b.createRoom(-1).Add(cell)
		b.active.Push(cell)
		return Continue
	}

	current := b.active.Peek()
	if current.IsFullyInitialized() {
		b.active.Pop()
		if b.active.Size() == 0 {
			b.done = true
			return Done
		}
		return Continue
	}

	dir := current.RandomUninitializedDirection(b.rng)
	coords := current.Coordinates.Step(dir)

	if !b.grid.Contains(coords) {
		b.createWall(current, nil, dir)
		return Continue
	}

	neighbor := b.grid.GetCell(coords)
	switch {
	case neighbor == nil:
		neighbor = b.createCell(coords)
		b.createPassage(current, neighbor, dir)
		b.active.Push(neighbor)
	case b.themeOf(current) == b.themeOf(neighbor):
		b.createPassageInSameRoom(current, neighbor, dir)
	default:
		b.createWall(current, neighbor, dir)
	}
	return Continue
}

func (b *Builder) createCell(coords world.Coordinate) *world.Cell {
	b.stats.Cells++
	return b.grid.Place(coords)
}

func (b *Builder) themeOf(c *world.Cell) int {
	return b.rooms.Get(c.Room()).Theme
}

// createRoom registers a room with a random theme. A draw equal to exclude
// is bumped to the next theme so a door rarely leads into the same style.
func (b *Builder) createRoom(exclude int) *world.Room {
	theme := b.rng.Intn(b.cfg.ThemeCount)
	if theme == exclude {
		theme = (theme + 1) % b.cfg.ThemeCount
	}
	b.stats.RoomsCreated++
	return b.rooms.Create(theme)
}

// createPassage joins a frontier cell to a freshly created one. A door puts
// the new cell in a new room, a plain passage keeps it in the current room.
func (b *Builder) createPassage(cell, other *world.Cell, dir world.Direction) {
	kind := world.Passage
	if b.rng.Float64() < b.cfg.DoorProbability {
		kind = world.Door
	}

	cell.SetEdge(dir, world.NewEdge(kind, cell, other, dir))

	if kind == world.Door {
		b.stats.Doors++
		b.createRoom(b.themeOf(cell)).Add(other)
	} else {
		b.stats.Passages++
		b.rooms.Get(cell.Room()).Add(other)
	}

	far := world.NewEdge(kind, other, cell, dir.Opposite())
	far.Mirrored = kind == world.Door
	other.SetEdge(dir.Opposite(), far)
}

// createPassageInSameRoom opens a plain passage between two existing cells
// of the same theme and merges their rooms if they differ. The neighbour's
// room is always the one absorbed.
func (b *Builder) createPassageInSameRoom(cell, other *world.Cell, dir world.Direction) {
	b.stats.RoomLinks++
	cell.SetEdge(dir, world.NewEdge(world.Passage, cell, other, dir))
	other.SetEdge(dir.Opposite(), world.NewEdge(world.Passage, other, cell, dir.Opposite()))

	if cell.Room() == other.Room() {
		return
	}
	absorbed := b.rooms.Get(other.Room())
	b.rooms.Get(cell.Room()).Assimilate(absorbed)
	b.rooms.Remove(absorbed.ID)
	b.stats.RoomsMerged++
}

// createWall closes a side. Boundary walls (other == nil) are single.
func (b *Builder) createWall(cell, other *world.Cell, dir world.Direction) {
	cell.SetEdge(dir, b.newWall(cell, other, dir))
	b.stats.Walls++
	if other == nil {
		return
	}
	other.SetEdge(dir.Opposite(), b.newWall(other, cell, dir.Opposite()))
	b.stats.Walls++
}

func (b *Builder) newWall(cell, other *world.Cell, dir world.Direction) *world.Edge {
	wall := world.NewEdge(world.Wall, cell, other, dir)
	if b.cfg.WallVariants > 1 {
		wall.Variant = b.rng.Intn(b.cfg.WallVariants)
	}
	return wall
}
