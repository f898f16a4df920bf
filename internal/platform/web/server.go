// Package web streams snake games over websockets. Every connection gets its
// own game, driven by a server-side ticker; clients send steering actions and
// receive board snapshots.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/limit"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Config holds configuration for the websocket server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the simulation rate of every session.
	TickRate int

	// MaxConnsPerIP limits concurrent sessions from one address. 0 disables the limit.
	MaxConnsPerIP int

	// Difficulty is the preset used when the client does not ask for one.
	Difficulty config.DifficultyPreset

	// Game fixes the game configuration. When nil it is loaded the way the CLI does.
	Game *config.SnakeConfig
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:       ":8080",
		TickRate:      core.DefaultConfig().TickRate,
		MaxConnsPerIP: 2,
	}
}

// Server hosts the /ws endpoint.
type Server struct {
	cfg      Config
	store    *storage.Store
	logger   *log.Logger
	limiter  *limit.Limiter
	upgrader websocket.Upgrader
}

// NewServer creates a websocket server. store and logger may be nil.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:     cfg,
		store:   store,
		logger:  logger,
		limiter: limit.New(cfg.MaxConnsPerIP),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // Bots and local pages connect from anywhere
			},
		},
	}
}

// Handler returns the HTTP handler serving /ws and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting websocket server", "address", s.cfg.Address, "max_per_ip", s.cfg.MaxConnsPerIP)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// handleWebSocket upgrades the request and runs one game session on it.
// Query parameters: difficulty (easy|normal|hard|fixed) and seed.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ip := limit.HostOnly(r.RemoteAddr)
	count, ok := s.limiter.Acquire(ip)
	if !ok {
		s.logger.Warn("connection denied: IP limit exceeded", "ip", ip, "attempted", count, "limit", s.limiter.Max())
		http.Error(w, "too many connections", http.StatusTooManyRequests)
		return
	}
	defer s.limiter.Release(ip)

	preset := s.cfg.Difficulty
	if p := config.ParsePreset(r.URL.Query().Get("difficulty")); p != "" {
		preset = p
	}

	seed := time.Now().UnixNano()
	if v := r.URL.Query().Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return
		}
		seed = parsed
	}

	gameCfg := s.gameConfig(preset)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		s.logger.Warn("upgrade failed", "ip", ip, "error", err)
		return
	}
	defer conn.Close()

	sess := &session{
		id:       uuid.NewString(),
		conn:     conn,
		game:     snake.NewWithConfig(gameCfg),
		cfg:      gameCfg,
		preset:   preset,
		tickRate: s.cfg.TickRate,
		store:    s.store,
		actions:  make(chan core.Action, actionBuffer),
	}
	sess.logger = s.logger.With("session", sess.id)

	sess.logger.Info("session started", "remote", r.RemoteAddr, "difficulty", string(preset), "seed", seed)
	start := time.Now()
	sess.run(r.Context(), seed)
	sess.logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
}

// gameConfig resolves the game configuration for a session.
func (s *Server) gameConfig(preset config.DifficultyPreset) config.SnakeConfig {
	if s.cfg.Game != nil {
		cfg := *s.cfg.Game
		config.ApplySnakePreset(&cfg, preset)
		return cfg
	}
	cfg, err := snake.LoadConfigPreset(preset)
	if err != nil {
		s.logger.Warn("could not load game config, using defaults", "error", err)
		cfg = config.DefaultSnakeConfig()
		config.ApplySnakePreset(&cfg, preset)
	}
	return cfg
}
