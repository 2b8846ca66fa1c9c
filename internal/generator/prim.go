package generator

import (
	"github.com/lawnchairsociety/mazeforge/internal/logger"
	"github.com/lawnchairsociety/mazeforge/internal/maze"
	"github.com/lawnchairsociety/mazeforge/internal/random"
)

// Prim grows the maze from a random frontier of uncarved passage sites.
// Each pick is joined to one already-carved neighbour, found by scanning
// around the pick rather than remembered from when it entered the frontier.
type Prim struct {
	rng random.Source
}

// NewPrim creates a randomized Prim generator
func NewPrim(rng random.Source) *Prim {
	return &Prim{rng: rng}
}

// Name implements Generator
func (g *Prim) Name() string {
	return "PrimGenerator"
}

// String returns the generator name
func (g *Prim) String() string {
	return g.Name()
}

// Generate implements Generator
func (g *Prim) Generate(height, width int) (*maze.Maze, error) {
	if err := maze.ValidateDimensions(height, width); err != nil {
		return nil, err
	}

	c := newCarver(g.rng)
	c.fill(height, width)
	start := c.selectStartPoint(height, width)

	selected := c.carve(start.Coordinate).Coordinate
	frontier := newFrontier()
	var passages []maze.Coordinate
	picks := 0

	for {
		for _, dir := range maze.Directions() {
			if c.checkPath(selected, dir) {
				_, passage := selected.WallAndPassage(dir)
				frontier.add(passage)
			}
		}
		if frontier.len() == 0 {
			break
		}

		selected = frontier.at(g.rng.IntN(frontier.len()))
		c.carve(selected)

		for _, dir := range maze.Directions() {
			if c.checkCarved(selected, dir) {
				_, passage := selected.WallAndPassage(dir)
				passages = append(passages, passage)
			}
		}

		// the cell that put selected on the frontier is always carved
		// and still walled off from it, so passages is never empty here
		neighbor := passages[g.rng.IntN(len(passages))]
		passages = passages[:0]

		c.carve(maze.Midpoint(selected, neighbor))

		frontier.remove(selected)
		frontier.remove(neighbor)
		picks++

		if frontier.len() == 0 {
			break
		}
	}

	m := c.result()
	logger.Debug("maze generated",
		"maze_id", m.ID,
		"generator", g.Name(),
		"height", height,
		"width", width,
		"start", start.Coordinate,
		"frontier_picks", picks)
	return m, nil
}

// frontier is an insertion-ordered set of coordinates
type frontier struct {
	items []maze.Coordinate
	index map[maze.Coordinate]struct{}
}

func newFrontier() *frontier {
	return &frontier{index: make(map[maze.Coordinate]struct{})}
}

func (f *frontier) add(c maze.Coordinate) {
	if _, ok := f.index[c]; ok {
		return
	}
	f.index[c] = struct{}{}
	f.items = append(f.items, c)
}

func (f *frontier) remove(c maze.Coordinate) {
	if _, ok := f.index[c]; !ok {
		return
	}
	delete(f.index, c)
	for i, item := range f.items {
		if item == c {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return
		}
	}
}

func (f *frontier) at(i int) maze.Coordinate {
	return f.items[i]
}

func (f *frontier) len() int {
	return len(f.items)
}
