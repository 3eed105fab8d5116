package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mshel/gridsnake/internal/config"
	"github.com/Mshel/gridsnake/internal/game"
	"github.com/Mshel/gridsnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}
	log.SetLevel(cfg.LogLevel)

	settings := game.Settings{
		FoodAvoidsSnake: cfg.FoodAvoidsSnake,
		Seed:            cfg.Seed,
		Autopilot:       cfg.Autopilot,
	}

	var leaderboard ui.Leaderboard
	keeperCtx, stopKeeper := context.WithCancel(context.Background())
	keeperDone := make(chan struct{})
	if cfg.DBPath != "" {
		scores, err := game.NewHighScoreService(cfg.DBPath)
		if err != nil {
			log.Fatal("Failed to open leaderboard", "path", cfg.DBPath, "error", err)
		}
		defer scores.Close()

		keeper := game.NewScoreKeeper(scores)
		go func() {
			defer close(keeperDone)
			keeper.Run(keeperCtx)
		}()
		settings.Recorder = keeper
		leaderboard = scores
		log.Info("Leaderboard enabled", "path", cfg.DBPath)
	} else {
		close(keeperDone)
	}

	newGame := game.NewManagerFactory(settings)
	viewHandler := func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sshSession.Pty()
		playerName := sshSession.User()
		if playerName == "" {
			playerName = "anonymous"
		}
		// the session context ends the game loop when the client disconnects
		controllerModel := ui.NewControllerModel(sshSession.Context(), newGame, leaderboard, playerName, pty.Window.Width, pty.Window.Height)
		return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
	}

	limiter := newConnectionLimiter(cfg.MaxConnectionsPerIP)
	sshServer, err := wish.NewServer(
		wish.WithAddress(cfg.Address()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler),
			logging.Middleware(),
			activeterm.Middleware(),
			limiter.Middleware,
		),
	)
	if err != nil {
		log.Fatal("Failed to create ssh server", "error", err)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", cfg.Host, "port", cfg.Port)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}

	stopKeeper()
	<-keeperDone
}
