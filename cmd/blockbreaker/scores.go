package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/leaderboard"
	"github.com/vovakirdan/blockbreaker/internal/platform/tui"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var (
	flagHistory      int
	flagInteractive  bool
	flagClearHistory bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 scores from the leaderboard file.

With --history, also list the most recent games from the history
database together with overall statistics.

Examples:
  blockbreaker scores
  blockbreaker scores --history 20
  blockbreaker scores --interactive
  blockbreaker scores --clear-history`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagHistory, "history", 0, "Number of recent games to list from the history database")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClearHistory, "clear-history", false, "Delete all games from the history database")
}

func runScores(cmd *cobra.Command, _ []string) error {
	s, err := openScores()
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()

	if flagClearHistory {
		if s.store == nil {
			return fmt.Errorf("history database unavailable")
		}
		if err := s.store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	if flagInteractive {
		rc := runtimeConfig()
		_, err := tui.RunScoreboard(s.board.TopScores(), s.history(), rc.ScreenW, rc.ScreenH)
		return err
	}

	printTopScores(out, s.board.TopScores())

	if s.store != nil {
		if best, err := s.store.HighScore(); err == nil && best > 0 {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "All-time best: %d\n", best)
		}
	}

	if flagHistory > 0 && s.store != nil {
		fmt.Fprintln(out)
		if err := printHistory(out, s.store, flagHistory); err != nil {
			return err
		}
	}
	return nil
}

// printTopScores writes the leaderboard as a ranked table.
func printTopScores(w io.Writer, entries []leaderboard.ScoreEntry) {
	fmt.Fprintln(w, "High Scores - Block Breaker")
	fmt.Fprintln(w)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'blockbreaker play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Lives")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "-----")
	for i, e := range entries {
		fmt.Fprintf(w, "  %-4d  %-10d  %d\n", i+1, e.Score, e.Lives)
	}
}

// printHistory writes the most recent games and aggregate statistics.
func printHistory(w io.Writer, store *storage.Store, limit int) error {
	records, err := store.Recent(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Recent Games")
	fmt.Fprintln(w)
	if len(records) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-10s  %-5s  %s\n", "Date", "Score", "Lives", "Result")
	fmt.Fprintf(w, "  %-16s  %-10s  %-5s  %s\n", "----", "-----", "-----", "------")
	for _, r := range records {
		result := "lose"
		if r.Won() {
			result = "win"
		}
		fmt.Fprintf(w, "  %-16s  %-10d  %-5d  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Lives, result)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Wins: %d  Average: %.1f  Last played: %s\n",
		stats.GamesCount, stats.Wins, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}
