package maze

// Direction is one of the four grid directions
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions returns the four directions in their fixed scan order
func Directions() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Step returns the coordinate n cells away from c in direction d
func (c Coordinate) Step(d Direction, n int) Coordinate {
	switch d {
	case Up:
		return Coordinate{Row: c.Row - n, Col: c.Col}
	case Down:
		return Coordinate{Row: c.Row + n, Col: c.Col}
	case Left:
		return Coordinate{Row: c.Row, Col: c.Col - n}
	case Right:
		return Coordinate{Row: c.Row, Col: c.Col + n}
	}
	return c
}

// WallAndPassage returns the two cells a carving step from c crosses:
// the wall one cell away and the passage site two cells away.
func (c Coordinate) WallAndPassage(d Direction) (wall, passage Coordinate) {
	return c.Step(d, 1), c.Step(d, 2)
}

// Midpoint returns the cell halfway between two passage sites
func Midpoint(a, b Coordinate) Coordinate {
	return Coordinate{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}
