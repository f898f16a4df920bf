package web

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Message types sent by the server.
const (
	MsgConfig = "config"
	MsgState  = "state"
	MsgRunEnd = "run_end"
	MsgError  = "error"
)

// ServerMessage is one JSON frame sent to the client.
type ServerMessage struct {
	Type    string           `json:"type"`
	Session string           `json:"session,omitempty"`
	Config  *GameConfig      `json:"config,omitempty"`
	State   *snake.Snapshot  `json:"state,omitempty"`
	Run     *core.RunSummary `json:"run,omitempty"`
	RunID   string           `json:"run_id,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// GameConfig describes the board and pacing of a session. Sent once on connect.
type GameConfig struct {
	GridSize       int             `json:"grid_size"`
	Start          snake.GridCoord `json:"start"`
	TickRate       int             `json:"tick_rate"`
	MoveIntervalMs int             `json:"move_interval_ms"`
	Difficulty     string          `json:"difficulty"`
}

// ClientMessage is one JSON frame received from the client.
type ClientMessage struct {
	Action string `json:"action"`
}

// parseAction maps a client action name to a game action.
func parseAction(s string) (core.Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "up":
		return core.ActionUp, true
	case "south", "down":
		return core.ActionDown, true
	case "west", "left":
		return core.ActionLeft, true
	case "east", "right":
		return core.ActionRight, true
	case "pause":
		return core.ActionPause, true
	case "restart":
		return core.ActionRestart, true
	}
	return core.ActionNone, false
}
