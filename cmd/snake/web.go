package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/web"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagWSAddr     string
	flagWSMaxPerIP int
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the websocket server",
	Long: `Start an HTTP server with a websocket endpoint at /ws.

Every connection plays its own game. Clients send
  {"action": "north" | "east" | "south" | "west" | "pause" | "restart"}
and receive a "config" message once, then "state" messages with the
board snapshot whenever it changes and "run_end" when a run finishes.

Query parameters: ?difficulty=easy|normal|hard|fixed&seed=<int>

Examples:
  snake web
  snake web --addr :9000
  snake web --difficulty hard --max-per-ip 1`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	defaults := web.DefaultConfig()
	webCmd.Flags().StringVar(&flagWSAddr, "addr", defaults.Address, "HTTP listen address (host:port)")
	webCmd.Flags().IntVar(&flagWSMaxPerIP, "max-per-ip", defaults.MaxConnsPerIP, "Concurrent connections allowed per IP (0 = unlimited)")
}

func runWeb(cmd *cobra.Command, _ []string) {
	if !cmd.Flags().Changed("addr") {
		flagWSAddr = config.EnvOr(config.EnvWSAddr, flagWSAddr)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-web",
		Level:           logLevel(),
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	server := web.NewServer(web.Config{
		Address:       flagWSAddr,
		TickRate:      flagFPS,
		MaxConnsPerIP: flagWSMaxPerIP,
		Difficulty:    config.ParsePreset(flagDifficulty),
	}, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := server.ListenAndServe(ctx)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}
