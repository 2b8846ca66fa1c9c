package maze

import "github.com/lawnchairsociety/mazeforge/internal/random"

// CellType is the terrain of a grid cell
type CellType int

const (
	Default CellType = iota // Passage site not yet carved
	Normal
	Sand
	Ice
	Wall
	Bedrock
)

// Weight returns the static weight associated with the type
func (t CellType) Weight() int {
	switch t {
	case Default:
		return -1
	case Normal:
		return 1
	case Sand:
		return 5
	case Ice:
		return 0
	case Wall:
		return 100
	case Bedrock:
		return 1000
	default:
		return 0
	}
}

// IsPassable reports whether a walker may enter a cell of this type
func (t CellType) IsPassable() bool {
	return t == Normal || t == Sand || t == Ice
}

// TraversalCost returns the cost of stepping onto a cell of this type.
// Only meaningful for passable types.
func (t CellType) TraversalCost() int {
	if !t.IsPassable() {
		return 0
	}
	return t.Weight()
}

// String returns the string representation of a CellType
func (t CellType) String() string {
	switch t {
	case Default:
		return "default"
	case Normal:
		return "normal"
	case Sand:
		return "sand"
	case Ice:
		return "ice"
	case Wall:
		return "wall"
	case Bedrock:
		return "bedrock"
	default:
		return "unknown"
	}
}

// terrainTable gives NORMAL 3/5, ICE 1/5 and SAND 1/5.
var terrainTable = [...]CellType{Normal, Normal, Normal, Ice, Sand}

// PickCellType draws a passable terrain type. It consumes exactly one draw.
func PickCellType(rng random.Source) CellType {
	return terrainTable[rng.IntN(len(terrainTable))]
}

// Coordinate is a zero-based (row, col) grid position
type Coordinate struct {
	Row, Col int
}

// Cell pairs a coordinate with its terrain. Cells are values; changing a
// cell means storing a new one in the grid.
type Cell struct {
	Coordinate
	Type CellType
}

// NewCell creates a cell at (row, col)
func NewCell(row, col int, t CellType) Cell {
	return Cell{Coordinate: Coordinate{Row: row, Col: col}, Type: t}
}
