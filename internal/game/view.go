package game

import (
	"slices"

	"github.com/vovakirdan/blockbreaker/internal/leaderboard"
)

// Phase is the session-level state derived from the game flags.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "playing"
	}
}

// View is a snapshot of a session for drawing. It shares no memory with
// the live state. Destroyed blocks are never included.
type View struct {
	Width, Height float64

	Blocks   []Block
	Balls    []Ball
	Platform Platform

	Score int
	Lives int

	IsGameOver      bool
	Outcome         Outcome
	Paused          bool
	ShowLeaderboard bool

	// Leaderboard is filled only while ShowLeaderboard is set.
	Leaderboard []leaderboard.ScoreEntry
}

func newView(state *GameState, s Settings) View {
	return View{
		Width:           s.Width,
		Height:          s.Height,
		Blocks:          slices.Clone(state.Blocks),
		Balls:           slices.Clone(state.Balls),
		Platform:        state.Platform,
		Score:           state.Score,
		Lives:           state.Lives,
		IsGameOver:      state.IsGameOver,
		Outcome:         state.Outcome,
		Paused:          state.Paused,
		ShowLeaderboard: state.ShowLeaderboard,
	}
}

// Phase returns the current session phase.
func (v View) Phase() Phase {
	switch {
	case v.IsGameOver:
		return PhaseGameOver
	case v.Paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Ball returns the primary ball and whether one exists.
func (v View) Ball() (Ball, bool) {
	if len(v.Balls) == 0 {
		return Ball{}, false
	}
	return v.Balls[0], true
}
