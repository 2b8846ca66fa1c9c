// Package solver finds a terrain-weighted path between two cells of a maze.
//
// Solving runs in two phases. A traversal from the start relaxes an
// auxiliary cost grid over every reachable passable cell; BFS and DFS differ
// only in the order they visit cells. The path is then recovered without
// parent pointers: starting at the end, the walk repeatedly steps to the
// cheapest neighbour whose cost does not exceed the current one, and
// retreats from dead ends, marking them restricted so they are never
// retried.
//
// Neither traversal replays a cell once its first descent is over, so the
// cost field (and therefore the path) is connected but not guaranteed to be
// the cheapest.
package solver

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/lawnchairsociety/mazeforge/internal/logger"
	"github.com/lawnchairsociety/mazeforge/internal/maze"
)

var ErrImpassable = errors.New("solver: endpoint is not a passable cell")

// unreached marks cells the traversal never relaxed
const unreached = math.MaxInt

// Solver finds a path from start to end. A nil error with an empty path
// means the two cells are not connected.
type Solver interface {
	Solve(m *maze.Maze, start, end maze.Coordinate) ([]maze.Coordinate, error)
	Name() string
}

// search is the per-call state shared by both traversals
type search struct {
	grid    maze.Grid
	cost    [][]int
	visited [][]bool
}

func newSearch(m *maze.Maze, start maze.Coordinate) *search {
	s := &search{
		grid:    m.Grid,
		cost:    make([][]int, m.Height),
		visited: make([][]bool, m.Height),
	}
	for row := range s.cost {
		s.cost[row] = make([]int, m.Width)
		s.visited[row] = make([]bool, m.Width)
		for col := range s.cost[row] {
			s.cost[row][col] = unreached
		}
	}
	s.cost[start.Row][start.Col] = 1
	return s
}

func validate(m *maze.Maze, start, end maze.Coordinate) error {
	for _, c := range []maze.Coordinate{start, end} {
		if !m.Contains(c) {
			return fmt.Errorf("%w: (%d,%d) in %dx%d maze", maze.ErrOutOfBounds, c.Row, c.Col, m.Height, m.Width)
		}
		if t := m.Grid.At(c).Type; !t.IsPassable() {
			return fmt.Errorf("%w: (%d,%d) is %s", ErrImpassable, c.Row, c.Col, t)
		}
	}
	return nil
}

func (s *search) costAt(c maze.Coordinate) int {
	return s.cost[c.Row][c.Col]
}

func (s *search) visit(c maze.Coordinate) {
	s.visited[c.Row][c.Col] = true
}

// eligible reports whether the traversal should (re)enter next from cur:
// next is passable and either unvisited or cheaper to reach through cur
func (s *search) eligible(cur, next maze.Coordinate) bool {
	t := s.grid.TypeAt(next)
	if !t.IsPassable() {
		return false
	}
	if !s.visited[next.Row][next.Col] {
		return true
	}
	return s.costAt(next) > s.costAt(cur)+t.TraversalCost()
}

// relax lowers next's cost to the cost of arriving through cur, if cheaper
func (s *search) relax(cur, next maze.Coordinate) {
	through := s.costAt(cur) + s.grid.At(next).Type.TraversalCost()
	if through < s.cost[next.Row][next.Col] {
		s.cost[next.Row][next.Col] = through
	}
}

// reconstruct walks the cost field from end back to start. It returns the
// path in start-to-end order, or an empty slice when the walk collapses.
func (s *search) reconstruct(start, end maze.Coordinate) []maze.Coordinate {
	path := []maze.Coordinate{end}
	inPath := map[maze.Coordinate]bool{end: true}
	restricted := map[maze.Coordinate]bool{}

	tail := end
	for tail != start {
		next := s.descend(tail, inPath, restricted)
		if next != tail {
			path = append(path, next)
			inPath[next] = true
			tail = next
			continue
		}

		// dead end: give up if there is nothing to retreat to
		if len(path) == 1 {
			return []maze.Coordinate{}
		}
		path = path[:len(path)-1]
		delete(inPath, tail)
		restricted[tail] = true
		tail = path[len(path)-1]
	}

	slices.Reverse(path)
	return path
}

// descend scans the neighbours of point in direction order. A later
// candidate replaces the running choice whenever its cost does not exceed
// the choice's. It returns point itself when nothing qualifies.
func (s *search) descend(point maze.Coordinate, inPath, restricted map[maze.Coordinate]bool) maze.Coordinate {
	best := point
	for _, dir := range maze.Directions() {
		next := point.Step(dir, 1)
		if s.candidate(next, best, inPath, restricted) {
			best = next
		}
	}
	return best
}

func (s *search) candidate(next, best maze.Coordinate, inPath, restricted map[maze.Coordinate]bool) bool {
	if !s.grid.InBounds(next) || inPath[next] || restricted[next] {
		return false
	}
	if s.grid.At(next).Type == maze.Bedrock {
		return false
	}
	bestCost, nextCost := s.costAt(best), s.costAt(next)
	if bestCost == unreached || nextCost == unreached {
		return false
	}
	return nextCost < bestCost+1
}

// PathCost sums the traversal cost of every cell on path after the first
func PathCost(m *maze.Maze, path []maze.Coordinate) int {
	total := 0
	for i, c := range path {
		if i == 0 {
			continue
		}
		total += m.Grid.At(c).Type.TraversalCost()
	}
	return total
}

func logSolved(name string, m *maze.Maze, start, end maze.Coordinate, path []maze.Coordinate) {
	logger.Debug("path solved",
		"maze_id", m.ID,
		"solver", name,
		"start", start,
		"end", end,
		"found", len(path) > 0,
		"path_len", len(path),
		"cost", PathCost(m, path))
}
