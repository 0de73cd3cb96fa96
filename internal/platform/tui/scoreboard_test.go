package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreaker/internal/leaderboard"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

type fakeHistory struct {
	best    []storage.GameRecord
	records []storage.GameRecord
	err     error
}

func (f fakeHistory) TopScores(limit int) ([]storage.GameRecord, error) {
	return f.best, f.err
}

func (f fakeHistory) Recent(limit int) ([]storage.GameRecord, error) {
	return f.records, f.err
}

func TestScoreboardTabs(t *testing.T) {
	top := []leaderboard.ScoreEntry{{Score: 300, Lives: 2}, {Score: 100, Lives: 0}}
	now := time.Now()
	history := fakeHistory{
		best: []storage.GameRecord{
			{ID: 2, Score: 300, Lives: 2, CreatedAt: now},
			{ID: 1, Score: 100, Lives: 0, CreatedAt: now},
		},
		records: []storage.GameRecord{
			{ID: 1, Score: 100, Lives: 0, CreatedAt: now},
		},
	}

	m := NewScoreboardModel(top, history, 80, 24)
	if m.Tab() != TabTopScores {
		t.Fatalf("initial tab = %v", m.Tab())
	}
	if got := len(m.table.Rows()); got != 2 {
		t.Errorf("top rows = %d, want 2", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Tab() != TabAllTime {
		t.Fatalf("tab after switch = %v", m.Tab())
	}
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "300" {
		t.Errorf("all time rows = %v", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Tab() != TabHistory {
		t.Fatalf("tab after switch = %v", m.Tab())
	}
	rows := m.table.Rows()
	if len(rows) != 1 || rows[0][2] != "lose" {
		t.Errorf("history rows = %v", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).Tab() != TabTopScores {
		t.Error("tab should wrap around to top scores")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if next.(ScoreboardModel).Tab() != TabAllTime {
		t.Error("shift+tab should go back one tab")
	}
}

func TestScoreboardWithoutHistory(t *testing.T) {
	m := NewScoreboardModel(nil, fakeHistory{err: errors.New("locked")}, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.table.Rows()) != 0 {
		t.Errorf("expected no rows, got %v", m.table.Rows())
	}
	if m.View() == "" {
		t.Error("empty scoreboard should still render")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey("q"))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
