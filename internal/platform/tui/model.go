package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/game"
	"github.com/vovakirdan/blockbreaker/internal/logging"
	"github.com/vovakirdan/blockbreaker/internal/paths"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The simulation keeps its own coordinates, so only the screen changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick feeds the collected input to the session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.inputFrame.Clone()

	// Clear input for next frame
	m.inputFrame.Clear()

	m.session.HandleInput(frame)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawView(m.screen, m.session.Snapshot())

	dir, err := paths.Expand(paths.Default("screenshots"))
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blockbreaker_%s.txt", timestamp))
	if err := paths.EnsureDir(path); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawView(m.screen, m.session.Snapshot())

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the session and blocks until the
// player quits.
func Run(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
