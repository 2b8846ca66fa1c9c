// Package maze holds the grid model shared by the generators, the modifier,
// the solvers, and the renderer.
package maze

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidDimensions = errors.New("maze: height and width must be odd and at least 5")
	ErrOutOfBounds       = errors.New("maze: coordinate out of bounds")
)

// MinSize is the smallest legal height or width
const MinSize = 5

// Grid is a row-major rectangle of cells
type Grid [][]Cell

// NewGrid allocates a height x width grid of Default cells at their own coordinates
func NewGrid(height, width int) Grid {
	g := make(Grid, height)
	for row := range g {
		g[row] = make([]Cell, width)
		for col := range g[row] {
			g[row][col] = NewCell(row, col, Default)
		}
	}
	return g
}

// Height returns the number of rows
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether c addresses a cell of the grid
func (g Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Height() && c.Col >= 0 && c.Col < g.Width()
}

// At returns the cell at c. c must be in bounds.
func (g Grid) At(c Coordinate) Cell {
	return g[c.Row][c.Col]
}

// TypeAt returns the terrain at c, or Bedrock when c is outside the grid
func (g Grid) TypeAt(c Coordinate) CellType {
	if !g.InBounds(c) {
		return Bedrock
	}
	return g[c.Row][c.Col].Type
}

// Set stores cell at its own coordinate
func (g Grid) Set(cell Cell) {
	g[cell.Row][cell.Col] = cell
}

// Count returns how many cells hold type t
func (g Grid) Count(t CellType) int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell.Type == t {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// Maze is the snapshot passed between generation, modification, solving,
// and rendering. Whoever holds it owns the grid.
type Maze struct {
	ID     uuid.UUID
	Height int
	Width  int
	Grid   Grid
}

// New wraps a grid in a Maze with a fresh ID
func New(grid Grid) *Maze {
	return &Maze{
		ID:     uuid.New(),
		Height: grid.Height(),
		Width:  grid.Width(),
		Grid:   grid,
	}
}

// Wrap returns a new Maze value sharing m's ID and grid
func (m *Maze) Wrap() *Maze {
	return &Maze{ID: m.ID, Height: m.Height, Width: m.Width, Grid: m.Grid}
}

// Contains reports whether c lies inside the maze
func (m *Maze) Contains(c Coordinate) bool {
	return m.Grid.InBounds(c)
}

// ValidateDimensions checks the size contract every generator relies on
func ValidateDimensions(height, width int) error {
	if height < MinSize || width < MinSize || height%2 == 0 || width%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, height, width)
	}
	return nil
}

// IsPassageSite reports whether (row, col) is an odd/odd interior cell
func IsPassageSite(c Coordinate) bool {
	return c.Row%2 != 0 && c.Col%2 != 0
}
