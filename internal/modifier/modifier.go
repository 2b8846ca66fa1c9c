// Package modifier perturbs a generated maze after the fact.
package modifier

import (
	"github.com/lawnchairsociety/mazeforge/internal/logger"
	"github.com/lawnchairsociety/mazeforge/internal/maze"
	"github.com/lawnchairsociety/mazeforge/internal/random"
)

// DefaultWallDeletionPercent is the share of walls NonIdeal opens
const DefaultWallDeletionPercent = 5

// Modifier rewrites a maze's grid in place and returns a new Maze value
// that wraps the same grid
type Modifier interface {
	Modify(m *maze.Maze) *maze.Maze
	Name() string
}

// NonIdeal opens a fraction of the interior walls, turning a perfect maze
// into one with loops
type NonIdeal struct {
	rng     random.Source
	percent int
}

// NewNonIdeal creates a modifier that opens percent% of the walls, rounded up
func NewNonIdeal(rng random.Source, percent int) *NonIdeal {
	return &NonIdeal{rng: rng, percent: percent}
}

// Name implements Modifier
func (n *NonIdeal) Name() string {
	return "NonIdealMazeModifier"
}

// String returns the modifier name
func (n *NonIdeal) String() string {
	return n.Name()
}

// Modify implements Modifier
func (n *NonIdeal) Modify(m *maze.Maze) *maze.Maze {
	var walls []maze.Coordinate
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col].Type == maze.Wall {
				walls = append(walls, maze.Coordinate{Row: row, Col: col})
			}
		}
	}

	n.rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	toDelete := DeletionCount(len(walls), n.percent)
	for _, coord := range walls[:toDelete] {
		m.Grid.Set(maze.Cell{Coordinate: coord, Type: maze.PickCellType(n.rng)})
	}

	logger.Debug("maze modified",
		"maze_id", m.ID,
		"modifier", n.Name(),
		"walls", len(walls),
		"deleted", toDelete)
	return m.Wrap()
}

// DeletionCount returns ceil(percent% of walls), capped at walls
func DeletionCount(walls, percent int) int {
	if walls <= 0 || percent <= 0 {
		return 0
	}
	count := (walls*percent + 99) / 100
	if count > walls {
		return walls
	}
	return count
}

// Names lists the modifiers in menu order
func Names() []string {
	return []string{"NonIdealMazeModifier"}
}

// Select maps a menu choice to a modifier: "1" is NonIdeal, anything else
// picks one of the known modifiers at random.
func Select(choice string, rng random.Source, percent int) Modifier {
	if choice == "1" {
		return NewNonIdeal(rng, percent)
	}
	all := []Modifier{NewNonIdeal(rng, percent)}
	return all[rng.IntN(len(all))]
}
