package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// GameID is the registry identifier of the snake game.
const GameID = "snake"

// Run end reasons reported in core.RunSummary.
const (
	EndCollision = "collision"
	EndCleared   = "cleared"
	EndQuit      = "quit"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path used by games created with New.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by games created with New.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the configuration the CLI settings point at.
func LoadConfig() (config.SnakeConfig, error) {
	return LoadConfigPreset(difficultyPreset)
}

// LoadConfigPreset loads the configuration from the CLI config path with the
// given difficulty preset applied instead of the CLI one.
func LoadConfigPreset(preset config.DifficultyPreset) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)
	return cfg, nil
}

// Game drives a Board at the platform frame rate and adds the player-facing
// rules around it: pausing, run bookkeeping, difficulty pacing and rendering.
type Game struct {
	cfg       config.SnakeConfig
	hasConfig bool

	board      *Board
	difficulty *config.DifficultyManager
	tickRate   int

	tick       uint64 // Platform frames since Reset
	moves      uint64 // Board updates in the current run
	moveTicker int    // Frames since the last board update

	paused   bool
	gameOver bool // Last run ended in a collision; cleared when a new run starts
	cleared  bool // Last run filled the board
	lastRun  *core.RunSummary
	bestLen  int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a snake game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a snake game with a fixed configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, hasConfig: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes the game with a fresh board seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.hasConfig {
		loaded, err := LoadConfig()
		if err != nil {
			loaded = config.DefaultSnakeConfig()
		}
		g.cfg = loaded
	}

	dir, err := ParseDirection(g.cfg.Board.InitialDirection)
	if err != nil {
		dir = DefaultDirection
	}

	start := GridCoord{X: g.cfg.Board.Start.X, Y: g.cfg.Board.Start.Y}
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoard(g.cfg.Board.GridSize, start, dir, rng)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.tick = 0
	g.moves = 0
	g.moveTicker = 0
	g.paused = g.cfg.Timing.StartPaused
	g.gameOver = false
	g.cleared = false
	g.lastRun = nil
	g.bestLen = 1
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the screen size. The board does not depend on it.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < g.requiredWidth() || height < g.requiredHeight()
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.cleared) {
		g.restart()
	}

	if dir, ok := steering(input); ok && !g.cleared {
		g.board.UpdateSnakeDirection(dir)
		g.paused = false
		g.gameOver = false
	}

	if input.Has(core.ActionPause) && !g.cleared && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.cleared || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.moveTicker++
	if g.moveTicker < g.moveEveryTicks() {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	return core.StepResult{State: g.State(), Finished: g.advance()}
}

// advance runs one board update and handles the end of a run.
func (g *Game) advance() *core.RunSummary {
	if !g.board.Update() {
		summary := g.finishRun(EndCollision)
		// Same as the classic loop: reset straight away and wait for input.
		g.board.Reset()
		g.moves = 0
		g.paused = true
		g.gameOver = true
		return summary
	}

	g.moves++
	if n := g.board.snake.Len(); n > g.bestLen {
		g.bestLen = n
	}

	if g.board.Cleared() {
		g.cleared = true
		return g.finishRun(EndCleared)
	}
	return nil
}

func (g *Game) finishRun(reason string) *core.RunSummary {
	n := g.board.snake.Len()
	summary := &core.RunSummary{
		Score:     n - 1,
		Length:    n,
		Ticks:     g.moves,
		EndReason: reason,
	}
	g.lastRun = summary
	return summary
}

// Abandon ends the run in progress, for when the player leaves mid-game.
// The board is reset as after a collision. Returns nil when no run is in progress.
func (g *Game) Abandon() *core.RunSummary {
	if g.board == nil || g.moves == 0 || g.gameOver || g.cleared {
		return nil
	}
	summary := g.finishRun(EndQuit)
	g.board.Reset()
	g.moves = 0
	g.moveTicker = 0
	g.paused = true
	return summary
}

// restart starts a new run after a game over or a cleared board.
func (g *Game) restart() {
	if g.cleared {
		g.board.Reset()
		g.moves = 0
	}
	g.cleared = false
	g.gameOver = false
	g.paused = false
	g.moveTicker = 0
}

// steering maps the last direction key of the frame to a heading.
func steering(input core.InputFrame) (Direction, bool) {
	switch input.Last(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight) {
	case core.ActionUp:
		return North, true
	case core.ActionDown:
		return South, true
	case core.ActionLeft:
		return West, true
	case core.ActionRight:
		return East, true
	}
	return 0, false
}

// moveEveryTicks converts the current move interval into platform frames.
func (g *Game) moveEveryTicks() int {
	base := time.Duration(g.cfg.Timing.MoveIntervalMs) * time.Millisecond
	floor := time.Duration(g.cfg.Timing.MinIntervalMs) * time.Millisecond
	interval := g.difficulty.MoveInterval(base, floor, g.score(), g.moves)

	frame := time.Second / time.Duration(g.tickRate)
	n := int((interval + frame/2) / frame)
	return max(1, n)
}

// score is the food eaten in the current run.
func (g *Game) score() int {
	return g.board.snake.Len() - 1
}

// LastRun returns the summary of the most recently finished run, or nil.
func (g *Game) LastRun() *core.RunSummary {
	return g.lastRun
}

// State returns the current game state. While the game-over screen is shown
// the score is the one of the run that just ended.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	score := g.score()
	if g.gameOver && g.lastRun != nil {
		score = g.lastRun.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.cleared,
		Paused:   g.paused,
	}
}
