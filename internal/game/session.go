package game

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/leaderboard"
	"github.com/vovakirdan/blockbreaker/internal/logging"
)

// toggleKey is the debounce key shared by the pause and leaderboard toggles:
// accepting either one starts the window for both.
const toggleKey = "toggle"

// Scoreboard is the leaderboard as seen by a session.
type Scoreboard interface {
	ScoreRecorder
	TopScores() []leaderboard.ScoreEntry
}

// Session owns the single live game and routes input to it.
// It is driven from one goroutine and is not safe for concurrent use.
type Session struct {
	settings Settings
	board    Scoreboard
	engine   *Engine
	state    *GameState
	gate     *CooldownGate
	clock    Clock
	logger   *log.Logger
	runID    string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock sets the clock used by the toggle debounce.
func WithClock(c Clock) SessionOption {
	return func(s *Session) {
		s.clock = c
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates a session and starts its first game.
// board may be nil, in which case finished games are not recorded.
func NewSession(settings Settings, board Scoreboard, opts ...SessionOption) *Session {
	s := &Session{
		settings: settings,
		board:    board,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}

	window := settings.Cooldown
	if window <= 0 {
		window = DefaultCooldown
	}
	s.gate = NewCooldownGate(window, s.clock)

	s.Reset()
	return s
}

// Reset discards the current game and starts a fresh one.
func (s *Session) Reset() {
	s.runID = uuid.NewString()
	logger := s.logger.With("run", s.runID)

	var recorder ScoreRecorder
	if s.board != nil {
		recorder = s.board
	}
	s.engine = NewEngine(recorder, logger)
	s.state = NewGameState(s.settings)

	logger.Debug("game started", "blocks", len(s.state.Blocks), "lives", s.state.Lives)
}

// HandleInput processes one frame of input. While paused or after game over
// only menu actions apply; otherwise the platform moves, toggles are read and
// the simulation advances one tick.
func (s *Session) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionLeaderboard) && s.gate.Allow(toggleKey) {
		s.state.ShowLeaderboard = !s.state.ShowLeaderboard
	}

	if s.state.IsGameOver || s.state.Paused {
		s.handleMenu(in)
		return
	}

	s.movePlatform(in)

	if in.Has(core.ActionPause) && s.gate.Allow(toggleKey) {
		s.state.Paused = true
		return
	}

	s.engine.Tick(s.state, s.settings)
}

// handleMenu applies retry and unpause. A pause press after game over is
// still debounced but has no effect.
func (s *Session) handleMenu(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		s.Reset()
		return
	}
	if in.Has(core.ActionPause) && s.gate.Allow(toggleKey) && !s.state.IsGameOver {
		s.state.Paused = false
	}
}

// movePlatform applies held left/right input, clamped to the field.
func (s *Session) movePlatform(in core.InputFrame) {
	p := &s.state.Platform
	if in.Has(core.ActionLeft) {
		p.X -= s.settings.PlatformSpeed
	}
	if in.Has(core.ActionRight) {
		p.X += s.settings.PlatformSpeed
	}
	p.X = core.ClampF(p.X, 0, s.settings.Width-p.W)
}

// Settings returns the session settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// RunID identifies the current game in logs.
func (s *Session) RunID() string {
	return s.runID
}

// Snapshot returns a read-only copy of the state for the presentation layer.
func (s *Session) Snapshot() View {
	v := newView(s.state, s.settings)
	if s.state.ShowLeaderboard && s.board != nil {
		v.Leaderboard = s.board.TopScores()
	}
	return v
}
