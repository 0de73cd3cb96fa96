package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/game"
	"github.com/vovakirdan/blockbreaker/internal/leaderboard"
	"github.com/vovakirdan/blockbreaker/internal/platform/tui"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

// scores bundles the leaderboard file and the optional history archive.
type scores struct {
	board *leaderboard.Board
	store *storage.Store // nil when the database could not be opened
}

// openScores opens the history database and the leaderboard.
// A database failure is logged and play continues without history.
func openScores() (*scores, error) {
	s := &scores{}

	store, err := storage.Open(settings.GetString("db"))
	if err != nil {
		logger.Warn("history disabled", "error", err)
	} else {
		s.store = store
	}

	opts := []leaderboard.Option{leaderboard.WithLogger(logger)}
	if s.store != nil {
		opts = append(opts, leaderboard.WithHistory(s.store))
	}

	board, err := leaderboard.Open(settings.GetString("leaderboard"), opts...)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.board = board
	return s, nil
}

// history returns the archive as a scoreboard source, or nil.
func (s *scores) history() tui.HistorySource {
	if s.store == nil {
		return nil
	}
	return s.store
}

// Close releases the history database.
func (s *scores) Close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		logger.Warn("closing history", "error", err)
	}
}

// loadSettings loads the game config and applies a difficulty preset.
func loadSettings(configPath string, preset config.DifficultyPreset) (game.Settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return game.Settings{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return game.Settings{}, err
	}
	return game.SettingsFromConfig(cfg), nil
}

// runtimeConfig returns the terminal size and tick rate.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if fps := settings.GetInt("fps"); fps > 0 {
		cfg.TickRate = fps
	}
	return cfg
}

// playSession runs one interactive session until the player quits.
func playSession(s *scores, gs game.Settings, rc core.RuntimeConfig) error {
	session := game.NewSession(gs, s.board, game.WithLogger(logger))
	logger.Info("session started", "leaderboard", s.board.Path(), "fps", rc.TickRate)

	if err := tui.Run(session, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
