package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lawnchairsociety/mazeforge/internal/generator"
	"github.com/lawnchairsociety/mazeforge/internal/maze"
	"github.com/lawnchairsociety/mazeforge/internal/modifier"
	"github.com/lawnchairsociety/mazeforge/internal/random"
	"github.com/lawnchairsociety/mazeforge/internal/render"
)

func main() {
	height := flag.Int("height", 21, "Maze height (odd, at least 5)")
	width := flag.Int("width", 21, "Maze width (odd, at least 5)")
	seed := flag.Int64("seed", 42, "Seed for random generation")
	gen := flag.String("generator", "1", "Generator: 1 = recursive backtracking, 2 = Prim, other = random")
	modify := flag.Bool("modify", false, "Open a share of the walls to make the maze non-perfect")
	percent := flag.Int("percent", modifier.DefaultWallDeletionPercent, "Share of walls to open with -modify")
	count := flag.Int("count", 1, "Number of mazes to generate")
	outDir := flag.String("out", "", "Output directory (default: data/mazes/)")
	flag.Parse()

	// Determine output directory
	outputDir := *outDir
	if outputDir == "" {
		outputDir = "data/mazes"
	}

	if err := maze.ValidateDimensions(*height, *width); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	rng := random.NewSeeded(*seed)
	g := generator.Select(*gen, rng)

	fmt.Printf("Generating %d %dx%d maze(s) with %s (seed: %d)\n", *count, *height, *width, g.Name(), *seed)
	fmt.Printf("Output directory: %s\n\n", outputDir)

	for i := 0; i < *count; i++ {
		fmt.Print("Generating maze structure... ")
		m, err := g.Generate(*height, *width)
		if err != nil {
			fmt.Printf("FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")

		if *modify {
			fmt.Print("Opening walls... ")
			walls := m.Grid.Count(maze.Wall)
			m = modifier.NewNonIdeal(rng, *percent).Modify(m)
			fmt.Printf("OK (%d opened)\n", walls-m.Grid.Count(maze.Wall))
		}

		path := filepath.Join(outputDir, m.ID.String()+".yaml")
		fmt.Printf("Writing %s... ", filepath.Base(path))
		if err := writeSnapshot(m, path); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
	}

	fmt.Printf("\nGenerated %d maze(s) successfully!\n", *count)
}

func writeSnapshot(m *maze.Maze, path string) error {
	data, err := render.EncodeYAML(m, nil)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
