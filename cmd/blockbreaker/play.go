package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/config"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Block Breaker.

Controls:
  Left/Right, A/D  - Move platform
  P/Esc            - Pause
  L/Tab            - Toggle leaderboard
  R                - Retry (when paused or after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Slower ball, wider platform
  normal - Settings from the config file
  hard   - Faster ball, narrower platform

Examples:
  blockbreaker play
  blockbreaker play --difficulty easy
  blockbreaker play --config ./my-blockbreaker.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	gs, err := loadSettings(flagConfig, preset)
	if err != nil {
		return err
	}

	s, err := openScores()
	if err != nil {
		return err
	}
	defer s.Close()

	return playSession(s, gs, runtimeConfig())
}
