// Package render turns mazes and solved paths into terminal text or YAML
// snapshots.
package render

import (
	"regexp"
	"strings"

	"github.com/lawnchairsociety/mazeforge/internal/maze"
)

// NoPath is printed in place of the maze when a solve found nothing
const NoPath = "NO PATH FOUND"

const (
	block = "██"
	reset = "\u001b[0m"
)

// 24-bit foreground colours
const (
	black  = "\u001b[38;2;0;0;0m"
	white  = "\u001b[38;2;240;240;240m"
	green  = "\u001b[38;2;21;212;0m"
	red    = "\u001b[38;2;222;150;150m"
	cyan   = "\u001b[38;2;123;255;255m"
	purple = "\u001b[38;2;195;161;255m"
	yellow = "\u001b[38;2;255;248;163m"
	orange = "\u001b[38;2;255;111;5m"
)

// mark is what a single cell is drawn as once the path is overlaid
type mark int

const (
	markCell mark = iota
	markPath
	markStart
	markEnd
)

var ansiPattern = regexp.MustCompile("\u001b\\[[0-9;]*m")

// Renderer draws a maze, optionally with a path overlaid on it.
type Renderer struct {
	color bool
}

// New creates a renderer. With color off every cell is drawn as a pair of
// ASCII glyphs instead of coloured blocks.
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

// Render draws m row by row. A nil path draws the bare maze; an empty
// non-nil path draws NoPath instead. The maze itself is never modified.
func (r *Renderer) Render(m *maze.Maze, path []maze.Coordinate) string {
	if path != nil && len(path) == 0 {
		return NoPath
	}

	marks := overlay(path)

	var sb strings.Builder
	for _, row := range m.Grid {
		for _, cell := range row {
			r.writeCell(&sb, cell.Type, marks[cell.Coordinate])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// overlay indexes the path. The end mark is set last so a single-cell path
// draws as the start.
func overlay(path []maze.Coordinate) map[maze.Coordinate]mark {
	marks := make(map[maze.Coordinate]mark, len(path))
	if len(path) == 0 {
		return marks
	}
	for _, c := range path {
		marks[c] = markPath
	}
	marks[path[len(path)-1]] = markEnd
	marks[path[0]] = markStart
	return marks
}

func (r *Renderer) writeCell(sb *strings.Builder, t maze.CellType, m mark) {
	if !r.color {
		g := glyph(t, m)
		sb.WriteByte(g)
		sb.WriteByte(g)
		return
	}
	sb.WriteString(colour(t, m))
	sb.WriteString(block)
	sb.WriteString(reset)
}

func colour(t maze.CellType, m mark) string {
	switch m {
	case markStart:
		return green
	case markEnd:
		return orange
	}

	onPath := m == markPath
	switch t {
	case maze.Bedrock:
		return purple
	case maze.Wall:
		return white
	case maze.Normal:
		if onPath {
			return red
		}
		return black
	case maze.Ice:
		if onPath {
			return red
		}
		return cyan
	case maze.Sand:
		if onPath {
			return red
		}
		return yellow
	default:
		return red
	}
}

func glyph(t maze.CellType, m mark) byte {
	switch m {
	case markStart:
		return 'S'
	case markEnd:
		return 'E'
	case markPath:
		if t.IsPassable() {
			return '*'
		}
	}
	return t.Glyph()
}

// Strip removes ANSI colour escapes from s
func Strip(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
