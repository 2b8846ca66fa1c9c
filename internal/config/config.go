// Package config loads mazeforge settings from YAML, an optional .env file,
// and MAZE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every setting the CLI needs.
type Config struct {
	Maze     MazeConfig     `yaml:"maze"`
	Modifier ModifierConfig `yaml:"modifier"`
	Render   RenderConfig   `yaml:"render"`
	Random   RandomConfig   `yaml:"random"`
}

// MazeConfig bounds the dimensions a user may request.
// All four values must be odd and at least 5.
type MazeConfig struct {
	MinHeight int `yaml:"min_height"`
	MinWidth  int `yaml:"min_width"`
	MaxHeight int `yaml:"max_height"`
	MaxWidth  int `yaml:"max_width"`
}

// ModifierConfig tunes the non-ideal modifier.
type ModifierConfig struct {
	// WallDeletionPercent is the share of WALL cells opened, rounded up.
	WallDeletionPercent int `yaml:"wall_deletion_percent"`
}

// RenderConfig selects the output form.
type RenderConfig struct {
	// Color enables 24-bit ANSI colour; otherwise ASCII glyphs are used.
	Color bool `yaml:"color"`

	// Format is "text" or "yaml".
	Format string `yaml:"format"`
}

// RandomConfig selects the random source.
type RandomConfig struct {
	// Seed makes runs reproducible. 0 draws from the OS CSPRNG.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the built-in settings: 5 to 35 cells per side, 5% wall
// deletion, colour text output and an OS-seeded random source.
func DefaultConfig() *Config {
	return &Config{
		Maze: MazeConfig{
			MinHeight: 5,
			MinWidth:  5,
			MaxHeight: 35,
			MaxWidth:  35,
		},
		Modifier: ModifierConfig{
			WallDeletionPercent: 5,
		},
		Render: RenderConfig{
			Color:  true,
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file, then applies .env and
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return config, err
	}

	// .env is optional; real environment variables take precedence over it
	_ = godotenv.Load()

	if err := config.applyEnv(); err != nil {
		return config, err
	}
	return config, config.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("MAZE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: MAZE_SEED=%q", ErrInvalidConfig, v)
		}
		c.Random.Seed = seed
	}
	if v := os.Getenv("MAZE_COLOR"); v != "" {
		color, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: MAZE_COLOR=%q", ErrInvalidConfig, v)
		}
		c.Render.Color = color
	}
	if v := os.Getenv("MAZE_MIN_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MAZE_MIN_SIZE=%q", ErrInvalidConfig, v)
		}
		c.Maze.MinHeight, c.Maze.MinWidth = n, n
	}
	if v := os.Getenv("MAZE_MAX_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MAZE_MAX_SIZE=%q", ErrInvalidConfig, v)
		}
		c.Maze.MaxHeight, c.Maze.MaxWidth = n, n
	}
	if v := os.Getenv("MAZE_WALL_DELETION_PERCENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MAZE_WALL_DELETION_PERCENT=%q", ErrInvalidConfig, v)
		}
		c.Modifier.WallDeletionPercent = n
	}
	return nil
}

// Validate checks that the bounds describe at least one legal maze size.
func (c *Config) Validate() error {
	bounds := []struct {
		name     string
		min, max int
	}{
		{"height", c.Maze.MinHeight, c.Maze.MaxHeight},
		{"width", c.Maze.MinWidth, c.Maze.MaxWidth},
	}
	for _, b := range bounds {
		if b.min < 5 || b.min%2 == 0 || b.max%2 == 0 {
			return fmt.Errorf("%w: %s bounds must be odd and at least 5, got [%d, %d]", ErrInvalidConfig, b.name, b.min, b.max)
		}
		if b.min > b.max {
			return fmt.Errorf("%w: min %s %d exceeds max %d", ErrInvalidConfig, b.name, b.min, b.max)
		}
	}

	if p := c.Modifier.WallDeletionPercent; p < 0 || p > 100 {
		return fmt.Errorf("%w: wall_deletion_percent must be within [0, 100], got %d", ErrInvalidConfig, p)
	}

	switch strings.ToLower(c.Render.Format) {
	case "text", "yaml":
	default:
		return fmt.Errorf("%w: unknown render format %q", ErrInvalidConfig, c.Render.Format)
	}
	return nil
}
