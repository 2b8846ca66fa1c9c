package solver

import "github.com/lawnchairsociety/mazeforge/internal/maze"

// DFS relaxes costs depth-first. It follows the visiting order of a
// recursive descent but keeps its frames on an explicit stack, so maze size
// is not bounded by goroutine stack depth.
type DFS struct{}

// NewDFS creates a depth-first solver
func NewDFS() *DFS {
	return &DFS{}
}

// Name implements Solver
func (d *DFS) Name() string {
	return "DFSSolver"
}

// String returns the solver name
func (d *DFS) String() string {
	return d.Name()
}

// Solve implements Solver
func (d *DFS) Solve(m *maze.Maze, start, end maze.Coordinate) ([]maze.Coordinate, error) {
	if err := validate(m, start, end); err != nil {
		return nil, err
	}

	s := newSearch(m, start)
	d.relaxAll(s, start)
	path := s.reconstruct(start, end)

	logSolved(d.Name(), m, start, end, path)
	return path, nil
}

// frame is one pending level of the descent: the cell and the index of
// the next direction to try from it
type frame struct {
	at   maze.Coordinate
	next int
}

func (d *DFS) relaxAll(s *search, start maze.Coordinate) {
	dirs := maze.Directions()
	s.visit(start)
	stack := []frame{{at: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		cur := top.at
		next := cur.Step(dirs[top.next], 1)
		top.next++

		if !s.eligible(cur, next) {
			continue
		}
		s.relax(cur, next)
		s.visit(next)
		stack = append(stack, frame{at: next})
	}
}
