package render

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/mazeforge/internal/maze"
)

// Snapshot is the YAML form of a maze and an optional solved path.
type Snapshot struct {
	ID     string   `yaml:"id"`
	Height int      `yaml:"height"`
	Width  int      `yaml:"width"`
	Rows   []string `yaml:"rows"`
	Path   [][2]int `yaml:"path,omitempty,flow"`
	Found  *bool    `yaml:"found,omitempty"`
}

// EncodeYAML writes m as a Snapshot. Rows use the single-letter glyphs of
// maze.CellType.Glyph and path entries are [row, col] pairs. Found is only
// set when a path was requested.
func EncodeYAML(m *maze.Maze, path []maze.Coordinate) ([]byte, error) {
	snap := Snapshot{
		ID:     m.ID.String(),
		Height: m.Height,
		Width:  m.Width,
		Rows:   m.Grid.Rows(),
	}
	if path != nil {
		found := len(path) > 0
		snap.Found = &found
		for _, c := range path {
			snap.Path = append(snap.Path, [2]int{c.Row, c.Col})
		}
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode maze snapshot: %w", err)
	}
	return data, nil
}

// DecodeYAML parses a snapshot back into a maze and its path. The maze
// keeps the snapshot's ID when it is a valid UUID.
func DecodeYAML(data []byte) (*maze.Maze, []maze.Coordinate, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, nil, fmt.Errorf("failed to parse maze snapshot: %w", err)
	}

	m, err := maze.FromRows(snap.Rows)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid maze snapshot: %w", err)
	}
	if id, err := uuid.Parse(snap.ID); err == nil {
		m.ID = id
	}

	var path []maze.Coordinate
	if snap.Found != nil {
		path = make([]maze.Coordinate, 0, len(snap.Path))
		for _, p := range snap.Path {
			path = append(path, maze.Coordinate{Row: p[0], Col: p[1]})
		}
	}
	return m, path, nil
}
