package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/leaderboard"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeBoard struct {
	fakeRecorder
	top []leaderboard.ScoreEntry
}

func (b *fakeBoard) TopScores() []leaderboard.ScoreEntry {
	return b.top
}

func newTestSession(t *testing.T) (*Session, *fakeClock, *fakeBoard) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	board := &fakeBoard{}
	return NewSession(DefaultSettings(), board, WithClock(clock)), clock, board
}

func TestCooldownGate(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	g := NewCooldownGate(200*time.Millisecond, clock)

	if !g.Allow("pause") {
		t.Fatal("first press should be allowed")
	}
	clock.Advance(100 * time.Millisecond)
	if g.Allow("pause") {
		t.Error("press inside the window should be rejected")
	}
	if !g.Allow("other") {
		t.Error("other keys have their own window")
	}
	clock.Advance(100 * time.Millisecond)
	if !g.Allow("pause") {
		t.Error("press at the window edge should be allowed")
	}
}

func TestSessionPauseDebounce(t *testing.T) {
	s, clock, _ := newTestSession(t)
	pause := core.NewInputFrame(core.ActionPause)

	s.HandleInput(pause)
	if !s.Snapshot().Paused {
		t.Fatal("first pause press should pause")
	}

	clock.Advance(100 * time.Millisecond)
	s.HandleInput(pause)
	if !s.Snapshot().Paused {
		t.Error("second press within cooldown should be ignored")
	}

	clock.Advance(150 * time.Millisecond)
	s.HandleInput(pause)
	if s.Snapshot().Paused {
		t.Error("press after cooldown should unpause")
	}
}

func TestSessionPausedDoesNotTick(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.HandleInput(core.NewInputFrame(core.ActionPause))
	before := s.Snapshot()
	ticks := s.state.Ticks

	s.HandleInput(core.NewInputFrame(core.ActionRight))
	after := s.Snapshot()

	if s.state.Ticks != ticks {
		t.Errorf("ticks advanced while paused")
	}
	if after.Platform != before.Platform {
		t.Errorf("platform moved while paused: %+v -> %+v", before.Platform, after.Platform)
	}
	if after.Balls[0] != before.Balls[0] {
		t.Errorf("ball moved while paused")
	}
}

func TestSessionPlayingTicks(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.HandleInput(core.NewInputFrame())
	s.HandleInput(core.NewInputFrame())

	if s.state.Ticks != 2 {
		t.Errorf("ticks = %d, want 2", s.state.Ticks)
	}
	if s.Snapshot().Phase() != PhasePlaying {
		t.Errorf("phase = %v, want playing", s.Snapshot().Phase())
	}
}

func TestSessionPlatformClamp(t *testing.T) {
	s, _, _ := newTestSession(t)
	set := s.Settings()

	for range 100 {
		s.HandleInput(core.NewInputFrame(core.ActionLeft))
	}
	if x := s.Snapshot().Platform.X; x != 0 {
		t.Errorf("platform x = %v, want 0", x)
	}

	s.Reset()
	for range 100 {
		s.HandleInput(core.NewInputFrame(core.ActionRight))
	}
	if x := s.Snapshot().Platform.X; x != set.Width-set.PlatformWidth {
		t.Errorf("platform x = %v, want %v", x, set.Width-set.PlatformWidth)
	}
}

func TestSessionLeaderboardOverlay(t *testing.T) {
	s, clock, board := newTestSession(t)
	board.top = []leaderboard.ScoreEntry{{Score: 120, Lives: 2}, {Score: 40, Lives: 0}}

	if v := s.Snapshot(); v.ShowLeaderboard || v.Leaderboard != nil {
		t.Fatal("overlay should start hidden")
	}

	s.HandleInput(core.NewInputFrame(core.ActionLeaderboard))
	v := s.Snapshot()
	if !v.ShowLeaderboard {
		t.Fatal("overlay should be shown")
	}
	if len(v.Leaderboard) != 2 || v.Leaderboard[0].Score != 120 {
		t.Errorf("leaderboard = %v", v.Leaderboard)
	}

	clock.Advance(50 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionLeaderboard))
	if !s.Snapshot().ShowLeaderboard {
		t.Error("toggle within cooldown should be ignored")
	}

	clock.Advance(200 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionLeaderboard))
	if s.Snapshot().ShowLeaderboard {
		t.Error("overlay should be hidden again")
	}
}

func TestSessionTogglesShareCooldown(t *testing.T) {
	s, clock, _ := newTestSession(t)

	s.HandleInput(core.NewInputFrame(core.ActionLeaderboard))
	if !s.Snapshot().ShowLeaderboard {
		t.Fatal("overlay should be shown")
	}

	clock.Advance(100 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionPause))
	if s.Snapshot().Paused {
		t.Error("pause right after a leaderboard toggle should be rejected")
	}

	clock.Advance(150 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionPause))
	if !s.Snapshot().Paused {
		t.Error("pause after the window should be accepted")
	}

	clock.Advance(50 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionLeaderboard))
	if !s.Snapshot().ShowLeaderboard {
		t.Error("leaderboard right after a pause should be rejected")
	}

	// Both keys in one frame: the leaderboard toggle wins the window.
	clock.Advance(250 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionLeaderboard, core.ActionPause))
	v := s.Snapshot()
	if v.ShowLeaderboard {
		t.Error("overlay should be hidden")
	}
	if !v.Paused {
		t.Error("pause in the same frame should be rejected")
	}
}

func TestSessionLeaderboardWhilePausedAndGameOver(t *testing.T) {
	s, clock, board := newTestSession(t)
	board.top = []leaderboard.ScoreEntry{{Score: 90, Lives: 1}}

	s.HandleInput(core.NewInputFrame(core.ActionPause))
	ticks := s.state.Ticks

	clock.Advance(250 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionLeaderboard))
	v := s.Snapshot()
	if !v.ShowLeaderboard {
		t.Error("overlay should toggle while paused")
	}
	if !v.Paused || s.state.Ticks != ticks {
		t.Errorf("paused=%v ticks=%d, want paused with %d ticks", v.Paused, s.state.Ticks, ticks)
	}

	s.state.IsGameOver = true
	s.state.Outcome = OutcomeLose

	clock.Advance(250 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionLeaderboard))
	if s.Snapshot().ShowLeaderboard {
		t.Error("overlay should toggle off after game over")
	}

	clock.Advance(250 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionLeaderboard))
	v = s.Snapshot()
	if !v.ShowLeaderboard {
		t.Fatal("overlay should toggle on after game over")
	}
	if len(v.Leaderboard) != 1 || v.Leaderboard[0].Score != 90 {
		t.Errorf("leaderboard = %v", v.Leaderboard)
	}
	if v.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, want game over", v.Phase())
	}
}

func TestSessionRetry(t *testing.T) {
	s, _, _ := newTestSession(t)
	firstRun := s.RunID()

	s.state.Score = 70
	s.state.Lives = 1
	s.state.Blocks = s.state.Blocks[:3]

	// Retry is ignored while playing.
	s.HandleInput(core.NewInputFrame(core.ActionRestart))
	if s.state.Lives != 1 {
		t.Fatal("retry should be ignored while playing")
	}

	s.state.IsGameOver = true
	s.state.Outcome = OutcomeLose
	s.HandleInput(core.NewInputFrame(core.ActionRestart))

	v := s.Snapshot()
	set := s.Settings()
	if v.IsGameOver || v.Outcome != OutcomeNone {
		t.Error("retry should start a new game")
	}
	if v.Lives != set.Lives || v.Score != set.InitialScore {
		t.Errorf("lives=%d score=%d after retry", v.Lives, v.Score)
	}
	if len(v.Blocks) != set.Rows*set.Columns {
		t.Errorf("blocks = %d after retry", len(v.Blocks))
	}
	if s.RunID() == firstRun {
		t.Error("retry should start a new run")
	}
}

func TestSessionGameOverPauseConsumesCooldown(t *testing.T) {
	s, clock, _ := newTestSession(t)
	pause := core.NewInputFrame(core.ActionPause)

	s.state.IsGameOver = true
	s.HandleInput(pause)
	if s.Snapshot().Paused {
		t.Fatal("pause has no effect after game over")
	}

	clock.Advance(10 * time.Millisecond)
	s.HandleInput(core.NewInputFrame(core.ActionRestart))

	clock.Advance(40 * time.Millisecond)
	s.HandleInput(pause)
	if s.Snapshot().Paused {
		t.Error("pause inside the cooldown should be rejected")
	}

	clock.Advance(250 * time.Millisecond)
	s.HandleInput(pause)
	if !s.Snapshot().Paused {
		t.Error("pause after the cooldown should be accepted")
	}
}

func TestSessionRecordsFinishedGame(t *testing.T) {
	s, _, board := newTestSession(t)

	s.state.Blocks = []Block{NewBlock(300, 100, 80, 25)}
	s.state.Balls = []Ball{NewBall(340, 130, 8, 0, -4)}

	s.HandleInput(core.NewInputFrame())
	s.HandleInput(core.NewInputFrame())

	if len(board.calls) != 1 || board.calls[0] != (recordedScore{10, 3}) {
		t.Errorf("board calls = %v, want [{10 3}]", board.calls)
	}
	if v := s.Snapshot(); v.Phase() != PhaseGameOver || v.Outcome != OutcomeWin {
		t.Errorf("phase=%v outcome=%v", v.Phase(), v.Outcome)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s, _, _ := newTestSession(t)

	v := s.Snapshot()
	v.Blocks[0].Destroyed = true
	v.Balls[0].X = -100

	if s.state.Blocks[0].Destroyed || s.state.Balls[0].X == -100 {
		t.Error("snapshot shares memory with the live state")
	}
	if b, ok := s.Snapshot().Ball(); !ok || b.X != 400 {
		t.Errorf("Ball() = %+v, %v", b, ok)
	}
}
