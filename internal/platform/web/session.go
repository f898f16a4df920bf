package web

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	actionBuffer   = 16

	// Games over the websocket have no terminal; this size never triggers
	// the too-small-window pause.
	headlessSize = 1 << 12
)

// session is one websocket connection and the game it drives.
type session struct {
	id       string
	conn     *websocket.Conn
	game     *snake.Game
	cfg      config.SnakeConfig
	preset   config.DifficultyPreset
	tickRate int
	store    *storage.Store
	logger   *log.Logger

	writeMu sync.Mutex
	actions chan core.Action
	last    stateKey
}

// stateKey holds the snapshot fields whose change is worth a state frame.
type stateKey struct {
	moves  uint64
	state  snake.GameStateType
	dir    snake.Direction
	length int
}

func keyOf(snap snake.Snapshot) stateKey {
	return stateKey{moves: snap.Moves, state: snap.State, dir: snap.Dir, length: snap.Length}
}

// run drives the game until the client goes away or ctx is cancelled.
func (s *session) run(ctx context.Context, seed int64) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.game.Reset(core.RuntimeConfig{
		ScreenW:  headlessSize,
		ScreenH:  headlessSize,
		TickRate: s.tickRate,
		Seed:     seed,
	})
	defer func() {
		s.recordRun(s.game.Abandon())
	}()

	go s.readLoop(cancel)

	if err := s.send(ServerMessage{Type: MsgConfig, Session: s.id, Config: s.gameConfig()}); err != nil {
		return
	}
	if err := s.sendState(); err != nil {
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	frame := core.NewInputFrame()
	for {
		select {
		case <-ctx.Done():
			return

		case a := <-s.actions:
			frame.Set(a)

		case <-ticker.C:
			res := s.game.Step(frame)
			frame.Clear()

			if res.Finished != nil {
				runID := s.recordRun(res.Finished)
				if err := s.send(ServerMessage{Type: MsgRunEnd, Run: res.Finished, RunID: runID}); err != nil {
					return
				}
			}
			if keyOf(s.game.Snapshot()) != s.last {
				if err := s.sendState(); err != nil {
					return
				}
			}

		case <-ping.C:
			s.writeMu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			s.writeMu.Unlock()
			if err != nil {
				s.logger.Debug("ping failed", "error", err)
				return
			}
		}
	}
}

// readLoop turns client frames into game actions. It cancels the session when
// the connection fails.
func (s *session) readLoop(cancel context.CancelFunc) {
	defer cancel()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read failed", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.send(ServerMessage{Type: MsgError, Error: "invalid message"}) //nolint:errcheck
			continue
		}
		action, ok := parseAction(msg.Action)
		if !ok {
			s.send(ServerMessage{Type: MsgError, Error: fmt.Sprintf("unknown action %q", msg.Action)}) //nolint:errcheck
			continue
		}

		select {
		case s.actions <- action:
		default:
			// Client is flooding; drop the action
		}
	}
}

func (s *session) sendState() error {
	snap := s.game.Snapshot()
	s.last = keyOf(snap)
	return s.send(ServerMessage{Type: MsgState, State: &snap})
}

// send writes one JSON frame. Safe for concurrent use.
func (s *session) send(msg ServerMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Debug("write failed", "type", msg.Type, "error", err)
		return err
	}
	return nil
}

func (s *session) gameConfig() *GameConfig {
	preset := string(s.preset)
	if preset == "" {
		preset = string(config.DifficultyNormal)
	}
	return &GameConfig{
		GridSize:       s.cfg.Board.GridSize,
		Start:          snake.GridCoord{X: s.cfg.Board.Start.X, Y: s.cfg.Board.Start.Y},
		TickRate:       s.tickRate,
		MoveIntervalMs: s.cfg.Timing.MoveIntervalMs,
		Difficulty:     preset,
	}
}

// recordRun saves a finished run and returns its ID. Saving is best-effort.
func (s *session) recordRun(run *core.RunSummary) string {
	if run == nil || s.store == nil {
		return ""
	}
	id, err := s.store.SaveRun(storage.RunRecord{
		GameID:    snake.GameID,
		Player:    "web:" + s.id[:8],
		Score:     run.Score,
		Length:    run.Length,
		Ticks:     run.Ticks,
		EndReason: run.EndReason,
	})
	if err != nil {
		s.logger.Warn("could not save run", "error", err)
		return ""
	}
	s.logger.Info("run finished", "run", id, "score", run.Score, "reason", run.EndReason)
	return id
}
