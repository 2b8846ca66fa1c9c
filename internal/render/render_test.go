package render

import (
	"strings"
	"testing"

	"github.com/lawnchairsociety/mazeforge/internal/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.FromRows([]string{
		"#####",
		"#.~:#",
		"#.+.#",
		"#####",
	})
	require.NoError(t, err)
	return m
}

func at(row, col int) maze.Coordinate {
	return maze.Coordinate{Row: row, Col: col}
}

func cells(colours ...string) string {
	var sb strings.Builder
	for _, c := range colours {
		sb.WriteString(c + block + reset)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func TestRenderColourMaze(t *testing.T) {
	want := cells(purple, purple, purple, purple, purple) +
		cells(purple, black, cyan, yellow, purple) +
		cells(purple, black, white, black, purple) +
		cells(purple, purple, purple, purple, purple)

	assert.Equal(t, want, New(true).Render(sample(t), nil))
}

func TestRenderColourPath(t *testing.T) {
	path := []maze.Coordinate{at(1, 1), at(1, 2), at(1, 3), at(2, 3)}
	want := cells(purple, purple, purple, purple, purple) +
		cells(purple, green, red, red, purple) +
		cells(purple, black, white, orange, purple) +
		cells(purple, purple, purple, purple, purple)

	assert.Equal(t, want, New(true).Render(sample(t), path))
}

func TestRenderMonochrome(t *testing.T) {
	path := []maze.Coordinate{at(1, 1), at(1, 2), at(1, 3), at(2, 3)}
	want := "##########\n" +
		"##SS****##\n" +
		"##..++EE##\n" +
		"##########\n"

	assert.Equal(t, want, New(false).Render(sample(t), path))
}

func TestRenderSingleCellPathIsStart(t *testing.T) {
	out := New(false).Render(sample(t), []maze.Coordinate{at(2, 1)})
	lines := strings.Split(out, "\n")
	assert.Equal(t, "##SS++..##", lines[2])
}

func TestRenderNoPath(t *testing.T) {
	for _, colour := range []bool{true, false} {
		assert.Equal(t, NoPath, New(colour).Render(sample(t), []maze.Coordinate{}))
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	m := sample(t)
	before := m.Grid.Clone()
	New(true).Render(m, []maze.Coordinate{at(1, 1), at(1, 2)})
	assert.Equal(t, before, m.Grid)
}

func TestStrip(t *testing.T) {
	out := Strip(New(true).Render(sample(t), nil))
	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, strings.Repeat(block, 5), row)
	}
	assert.Equal(t, "plain", Strip("plain"))
}

func TestYAMLRoundTrip(t *testing.T) {
	m := sample(t)
	path := []maze.Coordinate{at(1, 1), at(2, 1)}

	data, err := EncodeYAML(m, path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "found: true")

	back, gotPath, err := DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, m.ID, back.ID)
	assert.Equal(t, m.Grid, back.Grid)
	assert.Equal(t, path, gotPath)
}

func TestYAMLWithoutPath(t *testing.T) {
	data, err := EncodeYAML(sample(t), nil)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "found")

	_, path, err := DecodeYAML(data)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestYAMLNoPathFound(t *testing.T) {
	data, err := EncodeYAML(sample(t), []maze.Coordinate{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "found: false")

	_, path, err := DecodeYAML(data)
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestDecodeYAMLRejectsBadRows(t *testing.T) {
	_, _, err := DecodeYAML([]byte("rows: ['#x#']\n"))
	assert.ErrorIs(t, err, maze.ErrUnknownGlyph)

	_, _, err = DecodeYAML([]byte("rows: [\n"))
	assert.Error(t, err)
}
