// blockbreaker is a single-player block breaker game for the terminal.
//
// Usage:
//
//	blockbreaker play          - Play a game
//	blockbreaker menu          - Pick a difficulty interactively
//	blockbreaker scores        - Show the leaderboard and game history
//	blockbreaker config        - Print the effective game config
//
// Global flags (also read from BLOCKBREAKER_* environment variables):
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--leaderboard <path>  - Leaderboard file (default: ~/.blockbreaker/leaderboard.json)
//	--db <path>           - History database (default: ~/.blockbreaker/history.db)
//	--log-file <path>     - Log file, empty for stderr (default: ~/.blockbreaker/blockbreaker.log)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/blockbreaker/internal/logging"
	"github.com/vovakirdan/blockbreaker/internal/paths"
)

// envPrefix namespaces environment overrides, e.g. BLOCKBREAKER_FPS.
const envPrefix = "BLOCKBREAKER"

var (
	settings  = viper.New()
	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreaker",
	Short: "Block Breaker - clear the wall with a bouncing ball",
	Long: `Block Breaker is a terminal game: keep the ball in play with your
platform and destroy every block to win.

Available commands:
  play     - Start a game
  menu     - Pick a difficulty interactively
  scores   - View the leaderboard and game history
  config   - Print the effective game config

Examples:
  blockbreaker play
  blockbreaker play --difficulty hard
  blockbreaker scores --history 20
  BLOCKBREAKER_FPS=30 blockbreaker menu`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 60, "Tick rate (frames per second)")
	flags.String("leaderboard", paths.Default("leaderboard.json"), "Path to leaderboard file")
	flags.String("db", paths.Default("history.db"), "Path to game history database")
	flags.String("log-file", logging.DefaultOptions().File, "Path to log file (empty logs to stderr)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")

	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	if err := settings.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the process logger from flags and environment.
func setupLogging(_ *cobra.Command, _ []string) error {
	opts := logging.DefaultOptions()
	opts.File = settings.GetString("log-file")
	opts.Level = settings.GetString("log-level")

	l, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	log.SetDefault(logger)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}
