package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) {
	// Logs would garble the game screen unless they go to a file
	logger, closeLog, err := newLogger("invasion", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(config.ProfileTerminal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := invasion.New(cfg, invasion.WithLogger(logger))

	runErr := tui.Run(game, runtime, tui.Options{
		Store:      store,
		Logger:     logger,
		Host:       "terminal",
		Difficulty: difficultyName(),
		KeyHold:    cfg.KeyHold(),
	})
	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	st := game.Stats()
	fmt.Printf("Final score: %d (level %d)\n", st.Score, st.Level)
}
