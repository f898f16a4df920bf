package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(GetDefaultYAML("snake"))
	if err != nil {
		t.Fatalf("embedded snake.yaml failed to parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  grid_size: 21\n  start: {x: 10, y: 3}\ntiming:\n  move_interval_ms: 120\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.GridSize != 21 {
		t.Errorf("GridSize = %d, expected 21", cfg.Board.GridSize)
	}
	if cfg.Board.Start != (GridPoint{X: 10, Y: 3}) {
		t.Errorf("Start = %+v, expected {10 3}", cfg.Board.Start)
	}
	if cfg.Timing.MoveIntervalMs != 120 {
		t.Errorf("MoveIntervalMs = %d, expected 120", cfg.Timing.MoveIntervalMs)
	}
	// Unset keys keep defaults
	if cfg.Board.InitialDirection != "east" {
		t.Errorf("InitialDirection = %q, expected default east", cfg.Board.InitialDirection)
	}
	if !cfg.Timing.StartPaused {
		t.Error("StartPaused should keep its default")
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSnake() with a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  grid_size: 5\n  start: {x: 0, y: 2}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadSnake() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		ok     bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"grid too small", func(c *SnakeConfig) { c.Board.GridSize = 2; c.Board.Start = GridPoint{1, 1} }, false},
		{"start on low wall", func(c *SnakeConfig) { c.Board.Start = GridPoint{0, 5} }, false},
		{"start on high wall", func(c *SnakeConfig) { c.Board.Start = GridPoint{5, 11} }, false},
		{"start on last interior cell", func(c *SnakeConfig) { c.Board.Start = GridPoint{10, 10} }, true},
		{"direction alias", func(c *SnakeConfig) { c.Board.InitialDirection = "Up" }, true},
		{"short direction", func(c *SnakeConfig) { c.Board.InitialDirection = "w" }, true},
		{"empty direction", func(c *SnakeConfig) { c.Board.InitialDirection = "" }, true},
		{"unknown direction", func(c *SnakeConfig) { c.Board.InitialDirection = "sideways" }, false},
		{"zero interval", func(c *SnakeConfig) { c.Timing.MoveIntervalMs = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestCanonicalDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		ok       bool
	}{
		{"north", "north", true},
		{"N", "north", true},
		{" right ", "east", true},
		{"down", "south", true},
		{"left", "west", true},
		{"", "", false},
		{"northeast", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := CanonicalDirection(tc.in)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("CanonicalDirection(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestApplySnakePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Timing.MoveIntervalMs != 150 {
		t.Errorf("MoveIntervalMs = %d, expected 150", cfg.Timing.MoveIntervalMs)
	}

	cfg = DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultSnakeConfig()
	ApplySnakePreset(&cfg, ParsePreset("bogus"))
	if cfg != DefaultSnakeConfig() {
		t.Error("unknown preset should leave config untouched")
	}
}

func TestDifficultyMoveInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	base := 200 * time.Millisecond
	floor := 80 * time.Millisecond

	if got := d.MoveInterval(base, floor, 0, 0); got != base {
		t.Errorf("MoveInterval at score 0 = %v, expected %v", got, base)
	}
	if got := d.MoveInterval(base, floor, 10, 0); got != 100*time.Millisecond {
		t.Errorf("MoveInterval at max = %v, expected 100ms", got)
	}
	if got := d.MoveInterval(base, 150*time.Millisecond, 10, 0); got != 150*time.Millisecond {
		t.Errorf("MoveInterval should respect floor, got %v", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{
		Enabled:     false,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})
	if got := fixed.MoveInterval(base, floor, 10, 0); got != base {
		t.Errorf("disabled progression should keep base interval, got %v", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	tests := []struct {
		ticks    uint64
		expected float64
	}{
		{0, 0.5},
		{50, 0.75},
		{100, 1.0},
		{1000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(0, tc.ticks); got != tc.expected {
			t.Errorf("Level(0, %d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("SNAKE_TEST_ONLY_VAR=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("SNAKE_TEST_ONLY_VAR") })

	if err := LoadEnv(filepath.Join(dir, "absent.env"), envFile); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if got := EnvOr("SNAKE_TEST_ONLY_VAR", "fallback"); got != "from-file" {
		t.Errorf("EnvOr() = %q, expected from-file", got)
	}
	if got := EnvOr("SNAKE_TEST_UNSET_VAR", "fallback"); got != "fallback" {
		t.Errorf("EnvOr() = %q, expected fallback", got)
	}
}
