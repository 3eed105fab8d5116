package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mshel/gridsnake/internal/config"
	"github.com/Mshel/gridsnake/internal/game"
	"github.com/Mshel/gridsnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the alt screen owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := game.Settings{
		FoodAvoidsSnake: cfg.FoodAvoidsSnake,
		Seed:            cfg.Seed,
		Autopilot:       cfg.Autopilot,
	}

	var leaderboard ui.Leaderboard
	if cfg.DBPath != "" {
		scores, err := game.NewHighScoreService(cfg.DBPath)
		if err != nil {
			return err
		}
		defer scores.Close()

		keeper := game.NewScoreKeeper(scores)
		keeperCtx, stopKeeper := context.WithCancel(context.Background())
		keeperDone := make(chan struct{})
		go func() {
			defer close(keeperDone)
			keeper.Run(keeperCtx)
		}()
		// flush pending rounds before the database closes
		defer func() {
			stopKeeper()
			<-keeperDone
		}()

		settings.Recorder = keeper
		leaderboard = scores
	}

	playerName := os.Getenv("USER")
	if playerName == "" {
		playerName = "anonymous"
	}

	log.Info("Starting local game", "autopilot", cfg.Autopilot, "leaderboard", cfg.DBPath != "")
	p := tea.NewProgram(
		ui.NewControllerModel(ctx, game.NewManagerFactory(settings), leaderboard, playerName, 0, 0),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
