package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start Block Breaker in interactive menu mode.

Use arrow keys or j/k to pick a difficulty and Enter to play.
After you quit a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scores
  Q/Esc        - Quit

Examples:
  blockbreaker menu
  blockbreaker menu --fps 30
  blockbreaker menu --config ./my-blockbreaker.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openScores()
	if err != nil {
		return err
	}
	defer s.Close()

	rc := runtimeConfig()

	for {
		result, err := tui.RunMenu(rc)
		if err != nil {
			return err
		}
		rc = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(s.board.TopScores(), s.history(), rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		gs, err := loadSettings(flagConfig, result.Preset)
		if err != nil {
			return err
		}
		if err := playSession(s, gs, rc); err != nil {
			return err
		}
	}
}
