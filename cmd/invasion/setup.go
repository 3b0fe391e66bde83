package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// newLogger builds the process logger. --log-file wins over fallback.
// The returned func closes the log file, if any.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// loadConfig loads a profile and applies --difficulty.
func loadConfig(profile config.Profile) (config.InvasionConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.InvasionConfig{}, err
	}
	return config.LoadWithPreset(profile, flagConfig, preset)
}

// difficultyName returns the preset name recorded with each run.
func difficultyName() string {
	if flagDifficulty == "" {
		return string(config.DifficultyNormal)
	}
	return flagDifficulty
}

// openStore opens the score log if --db is set. Failure is logged and play
// continues without it.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open score log", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open score log: %v\n", err)
		return nil
	}
	return store
}
