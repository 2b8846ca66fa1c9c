// Package cli runs the interactive maze session: it asks for dimensions and
// algorithms, generates and optionally modifies a maze, then solves it
// between two user-chosen points.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lawnchairsociety/mazeforge/internal/config"
	"github.com/lawnchairsociety/mazeforge/internal/generator"
	"github.com/lawnchairsociety/mazeforge/internal/logger"
	"github.com/lawnchairsociety/mazeforge/internal/maze"
	"github.com/lawnchairsociety/mazeforge/internal/modifier"
	"github.com/lawnchairsociety/mazeforge/internal/random"
	"github.com/lawnchairsociety/mazeforge/internal/render"
	"github.com/lawnchairsociety/mazeforge/internal/solver"
	"github.com/lawnchairsociety/mazeforge/internal/text"
)

// ErrInputClosed is returned when input ends while a point is still needed.
var ErrInputClosed = errors.New("cli: input closed before both points were entered")

// FormatYAML prints YAML snapshots instead of drawn mazes.
const FormatYAML = "yaml"

// Session holds the state of one interactive run.
type Session struct {
	ID uuid.UUID

	in       *bufio.Scanner
	out      io.Writer
	rng      random.Source
	cfg      *config.Config
	text     *text.Text
	renderer *render.Renderer

	maze *maze.Maze
	eof  bool
}

// NewSession creates a session reading answers from in and writing prompts
// and mazes to out.
func NewSession(in io.Reader, out io.Writer, rng random.Source, cfg *config.Config, txt *text.Text) *Session {
	return &Session{
		ID:       uuid.New(),
		in:       bufio.NewScanner(in),
		out:      out,
		rng:      rng,
		cfg:      cfg,
		text:     txt,
		renderer: render.New(cfg.Render.Color),
	}
}

// Maze returns the current maze, or nil before generation.
func (s *Session) Maze() *maze.Maze {
	return s.maze
}

// Run walks through the whole dialogue once.
func (s *Session) Run() error {
	logger.Info("session started", "session_id", s.ID)
	s.println(s.text.Banner())

	bounds := s.cfg.Maze
	s.println(s.text.Dimension("width", bounds.MinWidth, bounds.MaxWidth))
	width := s.CheckSize(s.readLine(), bounds.MinWidth, bounds.MaxWidth)
	s.println(s.text.Dimension("height", bounds.MinHeight, bounds.MaxHeight))
	height := s.CheckSize(s.readLine(), bounds.MinHeight, bounds.MaxHeight)
	s.println(s.text.ChosenSize(height, width))

	s.println(s.text.Menu("generator", generator.Names()))
	gen := generator.Select(s.readLine(), s.rng)
	s.println(s.text.Chosen("generator", gen.Name()))

	s.println(s.text.Menu("solver", solver.Names()))
	solv := solver.Select(s.readLine(), s.rng)
	s.println(s.text.Chosen("solver", solv.Name()))

	if err := s.generate(gen, height, width); err != nil {
		return err
	}

	s.println(s.text.Modification())
	if strings.EqualFold(s.readLine(), "YES") {
		if err := s.modify(); err != nil {
			return err
		}
	}

	s.println(s.text.Points())
	s.println(s.text.Coordinates())
	start, err := s.readPoint()
	if err != nil {
		return err
	}
	end, err := s.readPoint()
	if err != nil {
		return err
	}

	if err := s.solve(solv, start, end); err != nil {
		return err
	}

	s.println(s.text.Finish())
	logger.Info("session finished", "session_id", s.ID, "maze_id", s.maze.ID)
	return nil
}

func (s *Session) generate(gen generator.Generator, height, width int) error {
	s.println(s.text.Generating())

	m, err := gen.Generate(height, width)
	if err != nil {
		return fmt.Errorf("failed to generate maze: %w", err)
	}
	s.maze = m

	logger.Info("maze generated",
		"session_id", s.ID,
		"maze_id", m.ID,
		"generator", gen.Name(),
		"height", height,
		"width", width)
	return s.show(nil)
}

func (s *Session) modify() error {
	s.println(s.text.Menu("modifier", modifier.Names()))
	mod := modifier.Select(s.readLine(), s.rng, s.cfg.Modifier.WallDeletionPercent)
	s.println(s.text.Chosen("modifier", mod.Name()))
	s.println(s.text.Modifying())

	walls := s.maze.Grid.Count(maze.Wall)
	s.maze = mod.Modify(s.maze)

	logger.Info("maze modified",
		"session_id", s.ID,
		"maze_id", s.maze.ID,
		"modifier", mod.Name(),
		"walls_opened", walls-s.maze.Grid.Count(maze.Wall))
	return s.show(nil)
}

func (s *Session) solve(solv solver.Solver, start, end maze.Coordinate) error {
	s.println(s.text.Calculating())

	path, err := solv.Solve(s.maze, start, end)
	if err != nil {
		return fmt.Errorf("failed to solve maze: %w", err)
	}

	cost := solver.PathCost(s.maze, path)
	logger.Info("maze solved",
		"session_id", s.ID,
		"maze_id", s.maze.ID,
		"solver", solv.Name(),
		"found", len(path) > 0,
		"path_len", len(path),
		"cost", cost)

	if err := s.show(path); err != nil {
		return err
	}
	if len(path) > 0 {
		s.println(s.text.PathCost(len(path), cost))
	}
	return nil
}

// show prints the current maze with path overlaid, in the configured format
func (s *Session) show(path []maze.Coordinate) error {
	if strings.EqualFold(s.cfg.Render.Format, FormatYAML) {
		data, err := render.EncodeYAML(s.maze, path)
		if err != nil {
			return err
		}
		_, err = s.out.Write(data)
		return err
	}
	s.println(s.renderer.Render(s.maze, path))
	return nil
}

// readPoint asks until a valid point is entered
func (s *Session) readPoint() (maze.Coordinate, error) {
	for {
		line := s.readLine()
		if c, ok := s.CheckCoordinates(line); ok {
			s.println(s.text.ChosenPoint(c.Col, c.Row))
			return c, nil
		}
		if s.eof {
			return maze.Coordinate{}, ErrInputClosed
		}
	}
}

// CheckSize returns input as a dimension when it is an odd integer within
// [min, max]. Anything else announces a random pick and returns a random
// odd value from the same range.
func (s *Session) CheckSize(input string, min, max int) int {
	if n, err := strconv.Atoi(input); err == nil && n >= min && n <= max && n%2 != 0 {
		return n
	}
	s.println(s.text.RandomSize())
	return s.randomOdd(min, max)
}

func (s *Session) randomOdd(min, max int) int {
	var odd []int
	for n := min; n <= max; n++ {
		if n%2 != 0 {
			odd = append(odd, n)
		}
	}
	if len(odd) == 0 {
		return maze.MinSize
	}
	return odd[s.rng.IntN(len(odd))]
}

// CheckCoordinates parses "col row" against the current maze. On failure it
// prints the reason and returns false.
func (s *Session) CheckCoordinates(input string) (maze.Coordinate, bool) {
	parts := strings.Split(input, " ")
	if len(parts) != 2 {
		s.println(s.text.OnlyNumbers())
		return maze.Coordinate{}, false
	}
	col, errCol := strconv.Atoi(parts[0])
	row, errRow := strconv.Atoi(parts[1])
	if errCol != nil || errRow != nil {
		s.println(s.text.OnlyNumbers())
		return maze.Coordinate{}, false
	}

	c := maze.Coordinate{Row: row, Col: col}
	if s.maze == nil || !s.maze.Contains(c) {
		s.println(s.text.OutOfRange())
		return maze.Coordinate{}, false
	}
	if !s.maze.Grid.At(c).Type.IsPassable() {
		s.println(s.text.NotPassage())
		return maze.Coordinate{}, false
	}
	return c, true
}

// readLine returns the next input line, or "" once input is exhausted
func (s *Session) readLine() string {
	if s.eof {
		return ""
	}
	if !s.in.Scan() {
		s.eof = true
		if err := s.in.Err(); err != nil {
			logger.Warn("failed to read input", "session_id", s.ID, "error", err)
		}
		return ""
	}
	return strings.TrimRight(s.in.Text(), "\r")
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
