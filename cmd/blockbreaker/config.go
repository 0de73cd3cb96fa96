package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config that 'play' would use, as YAML.

The output is a complete config file: save it to
~/.blockbreaker/configs/blockbreaker.yaml and edit it to customize the game.

Examples:
  blockbreaker config
  blockbreaker config --difficulty hard
  blockbreaker config --config ./my-blockbreaker.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var (
	flagConfigPath      string
	flagConfigDifficult string
)

func init() {
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagConfigDifficult, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagConfigDifficult)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
