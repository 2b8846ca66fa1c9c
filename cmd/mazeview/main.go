package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/mazeforge/internal/maze"
	"github.com/lawnchairsociety/mazeforge/internal/random"
	"github.com/lawnchairsociety/mazeforge/internal/render"
	"github.com/lawnchairsociety/mazeforge/internal/solver"
)

func main() {
	inputFile := flag.String("input", "", "Path to a maze snapshot YAML file")
	from := flag.String("from", "", "Start point as \"col row\" (solve when set with -to)")
	to := flag.String("to", "", "End point as \"col row\"")
	solverChoice := flag.String("solver", "1", "Solver: 1 = BFS, 2 = DFS, other = random")
	noColor := flag.Bool("no-color", false, "Draw with ASCII glyphs instead of ANSI colour")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -input is required")
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	m, path, err := render.DecodeYAML(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing YAML: %v\n", err)
		os.Exit(1)
	}

	if *from != "" || *to != "" {
		path, err = solve(m, *from, *to, *solverChoice)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	output := fmt.Sprintf("Maze %s (%dx%d)\n", m.ID, m.Height, m.Width)
	output += render.New(!*noColor).Render(m, path) + "\n"
	if len(path) > 0 {
		output += fmt.Sprintf("Path length: %d Cost: %d\n", len(path), solver.PathCost(m, path))
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(render.Strip(output)), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Maze written to %s\n", *outputFile)
	} else {
		fmt.Print(output)
	}
}

func solve(m *maze.Maze, from, to, choice string) ([]maze.Coordinate, error) {
	start, err := parsePoint(from)
	if err != nil {
		return nil, fmt.Errorf("invalid -from: %w", err)
	}
	end, err := parsePoint(to)
	if err != nil {
		return nil, fmt.Errorf("invalid -to: %w", err)
	}
	return solver.Select(choice, random.NewSecure()).Solve(m, start, end)
}

func parsePoint(s string) (maze.Coordinate, error) {
	var col, row int
	if _, err := fmt.Sscanf(s, "%d %d", &col, &row); err != nil {
		return maze.Coordinate{}, fmt.Errorf("want \"col row\", got %q", s)
	}
	return maze.Coordinate{Row: row, Col: col}, nil
}
