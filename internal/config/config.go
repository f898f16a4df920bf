// Package config provides YAML-based game configuration loading, difficulty
// management and environment defaults for the snake platform.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Timing     SnakeTiming      `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeBoard defines the grid and the snake's starting position.
type SnakeBoard struct {
	GridSize         int       `yaml:"grid_size"`
	Start            GridPoint `yaml:"start"`
	InitialDirection string    `yaml:"initial_direction"` // north, east, south or west
}

// GridPoint is a cell position as written in YAML.
type GridPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeTiming defines how fast the snake moves.
type SnakeTiming struct {
	MoveIntervalMs int  `yaml:"move_interval_ms"` // Time between moves at difficulty 0
	MinIntervalMs  int  `yaml:"min_interval_ms"`  // Floor for the move interval
	StartPaused    bool `yaml:"start_paused"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed gain at max difficulty (1.0 = twice as fast)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

var directionAliases = map[string]string{
	"north": "north", "n": "north", "up": "north",
	"east": "east", "e": "east", "right": "east",
	"south": "south", "s": "south", "down": "south",
	"west": "west", "w": "west", "left": "west",
}

// CanonicalDirection maps a heading name or alias (n, up, right, ...) to one of
// north, east, south or west. Case and surrounding spaces are ignored.
func CanonicalDirection(s string) (string, bool) {
	name, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	return name, ok
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// Validate checks the board geometry. The playable interior of a grid of
// size N is 1..N-1 on both axes, so the start cell must lie there.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.GridSize < 3 {
		return fmt.Errorf("%w: grid_size %d is below 3", ErrInvalidConfig, b.GridSize)
	}
	if b.Start.X <= 0 || b.Start.X >= b.GridSize || b.Start.Y <= 0 || b.Start.Y >= b.GridSize {
		return fmt.Errorf("%w: start (%d, %d) is outside the playable interior 1..%d",
			ErrInvalidConfig, b.Start.X, b.Start.Y, b.GridSize-1)
	}
	if _, ok := CanonicalDirection(b.InitialDirection); !ok && strings.TrimSpace(b.InitialDirection) != "" {
		return fmt.Errorf("%w: unknown initial_direction %q", ErrInvalidConfig, b.InitialDirection)
	}
	if c.Timing.MoveIntervalMs <= 0 {
		return fmt.Errorf("%w: move_interval_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
