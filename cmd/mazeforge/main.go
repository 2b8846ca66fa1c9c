package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/mazeforge/internal/cli"
	"github.com/lawnchairsociety/mazeforge/internal/config"
	"github.com/lawnchairsociety/mazeforge/internal/logger"
	"github.com/lawnchairsociety/mazeforge/internal/random"
	"github.com/lawnchairsociety/mazeforge/internal/text"
)

func main() {
	configFile := flag.String("config", "data/mazeforge.yaml", "Path to config YAML file")
	textFile := flag.String("text", "data/text.yaml", "Path to prompt text YAML file")
	seed := flag.Int64("seed", 0, "Random seed for reproducible mazes (default: OS random source)")
	format := flag.String("format", "", "Output format: text or yaml (overrides config)")
	noColor := flag.Bool("no-color", false, "Draw mazes with ASCII glyphs instead of ANSI colour")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Random.Seed = *seed
	}
	if *format != "" {
		cfg.Render.Format = *format
	}
	if *noColor {
		cfg.Render.Color = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger before anything else logs
	logConfig, _ := logger.LoadConfig(*configFile)
	closer, err := logger.Initialize(logConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	txt, err := text.Load(*textFile)
	if err != nil {
		logger.Debug("Using built-in text", "path", *textFile, "error", err)
		txt = text.Default()
	}

	var rng random.Source
	if cfg.Random.Seed != 0 {
		rng = random.NewSeeded(cfg.Random.Seed)
		logger.Info("Random seed selected", "seed", cfg.Random.Seed)
	} else {
		rng = random.NewSecure()
		logger.Info("Using OS random source")
	}

	session := cli.NewSession(os.Stdin, os.Stdout, rng, cfg, txt)
	if err := session.Run(); err != nil {
		logger.Error("Session failed", "session_id", session.ID, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
