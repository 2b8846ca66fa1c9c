package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}

	if config.Level != "WARN" {
		t.Errorf("Default level = %q, want %q", config.Level, "WARN")
	}
	if !config.ConsoleEnabled {
		t.Error("Default ConsoleEnabled = false, want true")
	}
	if config.FileEnabled {
		t.Error("Default FileEnabled = true, want false")
	}
	if config.FilePath != "logs/mazeforge.log" {
		t.Errorf("Default FilePath = %q, want %q", config.FilePath, "logs/mazeforge.log")
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazeforge.yaml")
	content := `maze:
  max_height: 21
logging:
  level: DEBUG
  console_enabled: false
  console_format: json
  file_enabled: true
  file_path: run.log
  file_max_size_mb: 20
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Level != "DEBUG" {
		t.Errorf("Level = %q, want %q", config.Level, "DEBUG")
	}
	if config.ConsoleEnabled {
		t.Error("ConsoleEnabled = true, want false")
	}
	if config.ConsoleFormat != "json" {
		t.Errorf("ConsoleFormat = %q, want %q", config.ConsoleFormat, "json")
	}
	if !config.FileEnabled {
		t.Error("FileEnabled = false, want true")
	}
	if config.FilePath != "run.log" {
		t.Errorf("FilePath = %q, want %q", config.FilePath, "run.log")
	}
	if config.FileMaxSizeMB != 20 {
		t.Errorf("FileMaxSizeMB = %d, want %d", config.FileMaxSizeMB, 20)
	}
	if config.FileMaxBackups != 3 {
		t.Errorf("FileMaxBackups = %d, want default 3", config.FileMaxBackups)
	}
}

func TestLoadConfigWithoutLoggingSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazeforge.yaml")
	if err := os.WriteFile(path, []byte("maze:\n  max_height: 21\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !config.ConsoleEnabled {
		t.Error("ConsoleEnabled should keep its default when the section is absent")
	}
}

func TestEnvVarOverride(t *testing.T) {
	t.Setenv("MAZE_LOG_LEVEL", "ERROR")
	t.Setenv("MAZE_LOG_FORMAT", "json")
	t.Setenv("MAZE_LOG_FILE_ENABLED", "true")
	t.Setenv("MAZE_LOG_FILE_PATH", "/custom/path.log")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Level != "ERROR" {
		t.Errorf("Level = %q, want %q (from env var)", config.Level, "ERROR")
	}
	if config.ConsoleFormat != "json" {
		t.Errorf("ConsoleFormat = %q, want %q (from env var)", config.ConsoleFormat, "json")
	}
	if !config.FileEnabled {
		t.Error("FileEnabled = false, want true (from env var)")
	}
	if config.FilePath != "/custom/path.log" {
		t.Errorf("FilePath = %q, want %q (from env var)", config.FilePath, "/custom/path.log")
	}
}

func TestBuildTextConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "INFO"

	l, _ := build(cfg, &buf)
	logger = l

	Info("maze generated", "generator", "PrimGenerator")
	Debug("should not appear")

	output := buf.String()
	if !strings.Contains(output, "maze generated") {
		t.Errorf("Output missing INFO message: %s", output)
	}
	if !strings.Contains(output, "generator=PrimGenerator") {
		t.Errorf("Output missing structured field: %s", output)
	}
	if strings.Contains(output, "should not appear") {
		t.Errorf("Output contains DEBUG message when level is INFO: %s", output)
	}
}

func TestBuildJSONConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "DEBUG"
	cfg.ConsoleFormat = "json"

	l, _ := build(cfg, &buf)
	logger = l

	Debug("path solved", "solver", "BFSSolver", "path_len", 12)

	output := buf.String()
	if !strings.Contains(output, `"msg":"path solved"`) {
		t.Errorf("Output missing JSON message field: %s", output)
	}
	if !strings.Contains(output, `"path_len":12`) {
		t.Errorf("Output missing numeric JSON field: %s", output)
	}
}

func TestBuildWithFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "maze.log")
	cfg := DefaultConfig()
	cfg.Level = "INFO"
	cfg.FileEnabled = true
	cfg.FilePath = path

	l, closer := build(cfg, &buf)
	logger = l
	Info("written to both", "k", "v")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"written to both"`) {
		t.Errorf("file output missing message: %s", data)
	}
	if !strings.Contains(buf.String(), "written to both") {
		t.Errorf("console output missing message: %s", buf.String())
	}
}

func TestFormattedLogging(t *testing.T) {
	var buf bytes.Buffer
	logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debugf("carved %d of %d", 3, 4)
	Infof("size %dx%d", 5, 7)
	Errorf("failed: %v", "boom")

	output := buf.String()
	for _, want := range []string{"carved 3 of 4", "size 5x7", "failed: boom"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestFanout(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h1 := slog.NewTextHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelInfo})
	h2 := slog.NewTextHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelError})
	logger = slog.New(newFanout(h1, h2))

	Info("only first", "field", "value")
	Error("both")

	if !strings.Contains(buf1.String(), "only first") || !strings.Contains(buf1.String(), "field=value") {
		t.Errorf("first handler missing INFO record: %s", buf1.String())
	}
	if strings.Contains(buf2.String(), "only first") {
		t.Errorf("second handler received record below its level: %s", buf2.String())
	}
	if !strings.Contains(buf2.String(), "both") {
		t.Errorf("second handler missing ERROR record: %s", buf2.String())
	}
}

func TestNilLogger(t *testing.T) {
	logger = nil

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logging with nil logger caused panic: %v", r)
		}
	}()

	Debug("debug")
	Info("info")
	Warn("warning")
	Error("error")
}
