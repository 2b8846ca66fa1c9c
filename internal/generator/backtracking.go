package generator

import (
	"github.com/lawnchairsociety/mazeforge/internal/logger"
	"github.com/lawnchairsociety/mazeforge/internal/maze"
	"github.com/lawnchairsociety/mazeforge/internal/random"
)

// RecursiveBacktracking grows a spanning tree depth-first, keeping the
// walk on an explicit stack instead of the call stack
type RecursiveBacktracking struct {
	rng random.Source
}

// NewRecursiveBacktracking creates a depth-first generator
func NewRecursiveBacktracking(rng random.Source) *RecursiveBacktracking {
	return &RecursiveBacktracking{rng: rng}
}

// Name implements Generator
func (g *RecursiveBacktracking) Name() string {
	return "RecursiveBacktrackingGenerator"
}

// String returns the generator name
func (g *RecursiveBacktracking) String() string {
	return g.Name()
}

// Generate implements Generator
func (g *RecursiveBacktracking) Generate(height, width int) (*maze.Maze, error) {
	if err := maze.ValidateDimensions(height, width); err != nil {
		return nil, err
	}

	c := newCarver(g.rng)
	c.fill(height, width)
	start := c.selectStartPoint(height, width)

	stack := []maze.Cell{c.carve(start.Coordinate)}
	steps := 0

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		dir, ok := g.selectDirection(c, top.Coordinate)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		wall, passage := top.WallAndPassage(dir)
		c.carve(wall)
		stack = append(stack, c.carve(passage))
		steps++
	}

	m := c.result()
	logger.Debug("maze generated",
		"maze_id", m.ID,
		"generator", g.Name(),
		"height", height,
		"width", width,
		"start", start.Coordinate,
		"carved_steps", steps)
	return m, nil
}

// selectDirection shuffles the four directions and returns the first legal step
func (g *RecursiveBacktracking) selectDirection(c *carver, point maze.Coordinate) (maze.Direction, bool) {
	dirs := maze.Directions()
	g.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, dir := range dirs {
		if c.checkPath(point, dir) {
			return dir, true
		}
	}
	return 0, false
}
