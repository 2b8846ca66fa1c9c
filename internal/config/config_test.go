package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Maze.MinHeight != 5 || cfg.Maze.MaxHeight != 35 {
		t.Errorf("expected height bounds [5, 35], got [%d, %d]", cfg.Maze.MinHeight, cfg.Maze.MaxHeight)
	}
	if cfg.Modifier.WallDeletionPercent != 5 {
		t.Errorf("expected wall deletion 5%%, got %d", cfg.Modifier.WallDeletionPercent)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("/nonexistent/path/mazeforge.yaml")
	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}
	if cfg.Maze.MaxWidth != 35 {
		t.Errorf("expected default max width 35, got %d", cfg.Maze.MaxWidth)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	configPath := filepath.Join(dir, "mazeforge.yaml")

	content := `
maze:
  min_height: 7
  min_width: 7
  max_height: 21
  max_width: 25
modifier:
  wall_deletion_percent: 10
render:
  color: false
  format: yaml
random:
  seed: 1234
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Maze.MinHeight != 7 || cfg.Maze.MaxWidth != 25 {
		t.Errorf("maze bounds not loaded: %+v", cfg.Maze)
	}
	if cfg.Modifier.WallDeletionPercent != 10 {
		t.Errorf("expected wall deletion 10, got %d", cfg.Modifier.WallDeletionPercent)
	}
	if cfg.Render.Color {
		t.Error("expected color disabled")
	}
	if cfg.Render.Format != "yaml" {
		t.Errorf("expected yaml format, got %q", cfg.Render.Format)
	}
	if cfg.Random.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Random.Seed)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	configPath := filepath.Join(dir, "mazeforge.yaml")
	if err := os.WriteFile(configPath, []byte("maze: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg == nil || cfg.Maze.MaxHeight != 35 {
		t.Error("expected defaults to be returned alongside the parse error")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAZE_SEED", "99")
	t.Setenv("MAZE_COLOR", "false")
	t.Setenv("MAZE_MAX_SIZE", "15")
	t.Setenv("MAZE_WALL_DELETION_PERCENT", "20")

	cfg, err := LoadConfig("missing.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Random.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Random.Seed)
	}
	if cfg.Render.Color {
		t.Error("Color = true, want false")
	}
	if cfg.Maze.MaxHeight != 15 || cfg.Maze.MaxWidth != 15 {
		t.Errorf("max size = %dx%d, want 15x15", cfg.Maze.MaxHeight, cfg.Maze.MaxWidth)
	}
	if cfg.Modifier.WallDeletionPercent != 20 {
		t.Errorf("WallDeletionPercent = %d, want 20", cfg.Modifier.WallDeletionPercent)
	}
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MAZE_SEED=77\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("MAZE_SEED") })

	cfg, err := LoadConfig("missing.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Random.Seed != 77 {
		t.Errorf("Seed = %d, want 77 from .env", cfg.Random.Seed)
	}
}

func TestLoadConfig_BadEnvValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAZE_SEED", "not-a-number")

	_, err := LoadConfig("missing.yaml")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"even min", func(c *Config) { c.Maze.MinHeight = 6 }, true},
		{"min below five", func(c *Config) { c.Maze.MinWidth = 3 }, true},
		{"even max", func(c *Config) { c.Maze.MaxWidth = 20 }, true},
		{"min above max", func(c *Config) { c.Maze.MinHeight = 37 }, true},
		{"negative percent", func(c *Config) { c.Modifier.WallDeletionPercent = -1 }, true},
		{"percent over 100", func(c *Config) { c.Modifier.WallDeletionPercent = 101 }, true},
		{"full percent", func(c *Config) { c.Modifier.WallDeletionPercent = 100 }, false},
		{"unknown format", func(c *Config) { c.Render.Format = "svg" }, true},
		{"upper-case format", func(c *Config) { c.Render.Format = "YAML" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
