package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// LocalPlayer is the player name recorded for runs played in a local terminal.
const LocalPlayer = "local"

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastRunID  string
	tickLoop   uint64
	quitting   bool
	backToMenu bool
	embedded   bool // Back returns to the enclosing menu instead of quitting
}

// NewModel creates a new Bubble Tea model for the given game.
// Finished runs are saved to store under player; store may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == "" {
		player = LocalPlayer
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		tickLoop:   newTickLoop(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate, m.tickLoop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.tickLoop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.abandonRun()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.abandonRun()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recordRun(result.Finished)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickLoop)
}

// abandonRun records the run in progress when the player leaves.
func (m *Model) abandonRun() {
	if a, ok := m.game.(registry.RunAbandoner); ok {
		m.recordRun(a.Abandon())
	}
}

// recordRun saves a finished run. Saving is best-effort.
func (m *Model) recordRun(run *core.RunSummary) {
	if run == nil || m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.RunRecord{
		GameID:    m.game.ID(),
		Player:    m.player,
		Score:     run.Score,
		Length:    run.Length,
		Ticks:     run.Ticks,
		EndReason: run.EndReason,
	})
	if err == nil {
		m.lastRunID = id
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the ID of the last run saved to storage, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg, LocalPlayer)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
