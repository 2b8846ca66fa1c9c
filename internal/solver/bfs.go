package solver

import (
	"container/heap"

	"github.com/lawnchairsociety/mazeforge/internal/maze"
)

// BFS relaxes costs breadth-first through a priority queue ordered by the
// static weight of each queued cell's own terrain
type BFS struct{}

// NewBFS creates a priority-queue solver
func NewBFS() *BFS {
	return &BFS{}
}

// Name implements Solver
func (b *BFS) Name() string {
	return "BFSSolver"
}

// String returns the solver name
func (b *BFS) String() string {
	return b.Name()
}

// Solve implements Solver
func (b *BFS) Solve(m *maze.Maze, start, end maze.Coordinate) ([]maze.Coordinate, error) {
	if err := validate(m, start, end); err != nil {
		return nil, err
	}

	s := newSearch(m, start)
	b.relaxAll(s, start)
	path := s.reconstruct(start, end)

	logSolved(b.Name(), m, start, end, path)
	return path, nil
}

func (b *BFS) relaxAll(s *search, start maze.Coordinate) {
	q := &cellQueue{}
	q.enqueue(s.grid, start)
	s.visit(start)

	for q.Len() > 0 {
		cur := popQueued(q)
		for _, dir := range maze.Directions() {
			next := cur.Step(dir, 1)
			if !s.eligible(cur, next) {
				continue
			}
			q.enqueue(s.grid, next)
			s.visit(next)
			s.relax(cur, next)
		}
	}
}

type queued struct {
	at     maze.Coordinate
	weight int
	seq    int
}

// cellQueue is a min-heap on terrain weight; equal weights leave in
// insertion order
type cellQueue struct {
	items []queued
	seq   int
}

func (q *cellQueue) enqueue(grid maze.Grid, c maze.Coordinate) {
	heap.Push(q, queued{at: c, weight: grid.At(c).Type.Weight(), seq: q.seq})
	q.seq++
}

func (q *cellQueue) Len() int { return len(q.items) }

func (q *cellQueue) Less(i, j int) bool {
	if q.items[i].weight != q.items[j].weight {
		return q.items[i].weight < q.items[j].weight
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *cellQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *cellQueue) Push(x any) { q.items = append(q.items, x.(queued)) }

func (q *cellQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

func popQueued(q *cellQueue) maze.Coordinate {
	return heap.Pop(q).(queued).at
}
