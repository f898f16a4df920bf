// snake is a terminal snake game that can also be hosted over SSH and websockets.
//
// Usage:
//
//	snake play       - Play in this terminal
//	snake menu       - Pick a difficulty and browse scores interactively
//	snake scores     - Show high scores and recent runs
//	snake serve      - Start SSH server for remote play
//	snake web        - Start websocket server for bots and browsers
//	snake config     - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - Server log level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagEnvFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the food, grow,
and do not hit the walls or yourself.

Available commands:
  play     - Play in this terminal
  menu     - Interactive difficulty picker and scoreboard
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play
  web      - Start websocket server
  config   - Print the effective game configuration

Flags default to the SNAKE_DB, SNAKE_CONFIG and SNAKE_LOG_LEVEL
environment variables, which may also be set in a .env file.

Examples:
  snake play
  snake play --difficulty hard --seed 42
  snake menu
  snake serve --ssh :2222
  snake web --addr :8080`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file to load")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the environment file, fills flags the user did not set from
// the environment and hands the game settings to the snake package.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(flagEnvFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.EnvOr(config.EnvDBPath, flagDBPath)
	}
	if !flags.Changed("config") {
		flagConfig = config.EnvOr(config.EnvConfig, flagConfig)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.EnvOr(config.EnvLogLevel, flagLogLevel)
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)
	return nil
}

// logLevel parses --log-level, falling back to info.
func logLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		return log.InfoLevel
	}
	return level
}
