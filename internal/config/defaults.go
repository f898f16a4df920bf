package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			GridSize:         11,
			Start:            GridPoint{X: 5, Y: 5},
			InitialDirection: "east",
		},
		Timing: SnakeTiming{
			MoveIntervalMs: 200,
			MinIntervalMs:  80,
			StartPaused:    true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
