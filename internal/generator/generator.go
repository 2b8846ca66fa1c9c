// Package generator carves perfect mazes out of a wall/passage lattice.
//
// Both strategies start from the same filled grid: a BEDROCK border, a
// DEFAULT passage site at every odd/odd interior cell, and WALL everywhere
// else. Carving a step replaces the wall between two sites and the far site
// with weighted-random passable terrain.
package generator

import (
	"github.com/lawnchairsociety/mazeforge/internal/maze"
	"github.com/lawnchairsociety/mazeforge/internal/random"
)

// Generator builds a maze of the given size
type Generator interface {
	Generate(height, width int) (*maze.Maze, error)
	Name() string
}

// carver holds the grid under construction and the primitives both
// strategies share
type carver struct {
	grid   maze.Grid
	height int
	width  int
	rng    random.Source
}

func newCarver(rng random.Source) *carver {
	return &carver{rng: rng}
}

// fill allocates the grid and classifies every cell by position
func (c *carver) fill(height, width int) {
	c.height, c.width = height, width
	c.grid = maze.NewGrid(height, width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c.grid.Set(maze.NewCell(row, col, classify(row, col, height, width)))
		}
	}
}

func classify(row, col, height, width int) maze.CellType {
	switch {
	case row == 0 || col == 0 || row == height-1 || col == width-1:
		return maze.Bedrock
	case row%2 != 0 && col%2 != 0:
		return maze.Default
	default:
		return maze.Wall
	}
}

// selectStartPoint picks a passage site uniformly at random
func (c *carver) selectStartPoint(height, width int) maze.Cell {
	row := c.randomOdd(height - 2)
	col := c.randomOdd(width - 2)
	return c.grid[row][col]
}

// randomOdd returns a uniform odd value in [1, max]
func (c *carver) randomOdd(max int) int {
	return c.rng.IntN((max+1)/2)*2 + 1
}

// checkPath reports whether stepping from point in dir crosses an unopened
// wall into an uncarved passage site
func (c *carver) checkPath(point maze.Coordinate, dir maze.Direction) bool {
	wall, passage := point.WallAndPassage(dir)
	return c.grid.TypeAt(wall) == maze.Wall && c.grid.TypeAt(passage) == maze.Default
}

// checkCarved reports whether stepping from point in dir crosses an
// unopened wall into a site that has already been carved
func (c *carver) checkCarved(point maze.Coordinate, dir maze.Direction) bool {
	wall, passage := point.WallAndPassage(dir)
	if c.grid.TypeAt(wall) != maze.Wall || !c.grid.InBounds(passage) {
		return false
	}
	return c.grid.TypeAt(passage) != maze.Default
}

// setCell replaces the grid entry at the cell's coordinate
func (c *carver) setCell(cell maze.Cell) {
	c.grid.Set(cell)
}

// carve gives the cell at coord a random passable terrain
func (c *carver) carve(coord maze.Coordinate) maze.Cell {
	cell := maze.Cell{Coordinate: coord, Type: maze.PickCellType(c.rng)}
	c.setCell(cell)
	return cell
}

func (c *carver) result() *maze.Maze {
	return maze.New(c.grid)
}
