package maze

import (
	"errors"
	"fmt"
)

var ErrUnknownGlyph = errors.New("maze: unknown glyph")

// Glyph returns the single-character ASCII form of a cell type
func (t CellType) Glyph() byte {
	switch t {
	case Default:
		return '?'
	case Normal:
		return '.'
	case Sand:
		return ':'
	case Ice:
		return '~'
	case Wall:
		return '+'
	case Bedrock:
		return '#'
	default:
		return ' '
	}
}

// ParseGlyph is the inverse of Glyph
func ParseGlyph(b byte) (CellType, error) {
	for _, t := range []CellType{Default, Normal, Sand, Ice, Wall, Bedrock} {
		if t.Glyph() == b {
			return t, nil
		}
	}
	return Default, fmt.Errorf("%w %q", ErrUnknownGlyph, b)
}

// Rows returns the grid as one glyph string per row
func (g Grid) Rows() []string {
	rows := make([]string, len(g))
	for i, row := range g {
		buf := make([]byte, len(row))
		for j, cell := range row {
			buf[j] = cell.Type.Glyph()
		}
		rows[i] = string(buf)
	}
	return rows
}

// FromRows builds a Maze from glyph strings, one per row. All rows must
// have the same length.
func FromRows(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}
	width := len(rows[0])
	grid := make(Grid, len(rows))
	for r, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(line), width)
		}
		grid[r] = make([]Cell, width)
		for c := 0; c < width; c++ {
			t, err := ParseGlyph(line[c])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			grid[r][c] = NewCell(r, c, t)
		}
	}
	return New(grid), nil
}
