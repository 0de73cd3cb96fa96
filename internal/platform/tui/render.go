package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/game"
)

// Glyphs used to draw the field.
const (
	PlatformChar = '='
	BallChar     = '●'
	BlockChar    = '█'
	BorderHoriz  = '─'
)

// Minimum terminal size for a playable field.
const (
	minScreenW = 40
	minScreenH = 12
	hudRows    = 2
)

// blockColors cycles by screen row so the grid reads as bands.
var blockColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// hitColors maps the ball's last collision to its color.
var hitColors = map[game.CollisionTag]core.Color{
	game.HitNone:  core.ColorBrightWhite,
	game.HitWall:  core.ColorCyan,
	game.HitTop:   core.ColorYellow,
	game.HitBlock: core.ColorMagenta,
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// fieldMapper converts game units to screen cells below the HUD.
type fieldMapper struct {
	cols, rows float64
	w, h       float64
}

func newFieldMapper(dst *core.Screen, v game.View) fieldMapper {
	return fieldMapper{
		cols: float64(dst.Width()),
		rows: float64(dst.Height() - hudRows),
		w:    v.Width,
		h:    v.Height,
	}
}

func (f fieldMapper) x(gx float64) int {
	return int(gx * f.cols / f.w)
}

func (f fieldMapper) y(gy float64) int {
	return hudRows + int(gy*f.rows/f.h)
}

// DrawView draws a session snapshot onto dst.
func DrawView(dst *core.Screen, v game.View) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH || v.Width <= 0 || v.Height <= 0 {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	f := newFieldMapper(dst, v)

	drawHUD(dst, v)
	drawBlocks(dst, f, v.Blocks)
	drawPlatform(dst, f, v.Platform)
	drawBalls(dst, f, v.Balls)
	drawOverlay(dst, v)

	if v.ShowLeaderboard {
		drawLeaderboard(dst, v)
	}
}

// drawHUD draws score and lives above the field.
func drawHUD(dst *core.Screen, v game.View) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", v.Score))

	lives := fmt.Sprintf("Lives: %d", v.Lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightRed)

	dst.DrawTextCentered(0, "L: scores  P: pause  Q: quit")

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// drawBlocks draws every intact block, leaving a one-cell gap on the right
// so neighbours stay distinguishable.
func drawBlocks(dst *core.Screen, f fieldMapper, blocks []game.Block) {
	for _, b := range blocks {
		x0, x1 := f.x(b.X), f.x(b.Right())
		y0, y1 := f.y(b.Y), f.y(b.Bottom())
		if y1 <= y0 {
			y1 = y0 + 1
		}
		if x1-x0 > 1 {
			x1--
		}
		c := blockColors[y0%len(blockColors)]
		dst.DrawRect(core.NewRect(x0, y0, core.Max(x1-x0, 1), y1-y0), BlockChar, c)
	}
}

// drawPlatform draws the player's platform on a single row.
func drawPlatform(dst *core.Screen, f fieldMapper, p game.Platform) {
	x0, x1 := f.x(p.X), f.x(p.Right())
	y := f.y(p.Y)
	for x := x0; x < core.Max(x1, x0+1); x++ {
		dst.SetColored(x, y, PlatformChar, core.ColorBrightWhite)
	}
}

// drawBalls draws each ball colored by its last collision.
func drawBalls(dst *core.Screen, f fieldMapper, balls []game.Ball) {
	for _, b := range balls {
		x, y := f.x(b.X), f.y(b.Y)
		if y < hudRows {
			continue
		}
		dst.SetColored(x, y, BallChar, hitColors[b.LastHit])
	}
}

// drawOverlay draws pause and game over messages.
func drawOverlay(dst *core.Screen, v game.View) {
	switch v.Phase() {
	case game.PhasePaused:
		drawCenteredBox(dst, "PAUSED", "P: resume  |  R: retry")

	case game.PhaseGameOver:
		title := "GAME OVER"
		if v.Outcome == game.OutcomeWin {
			title = "YOU WIN!"
		}
		subtitle := fmt.Sprintf("Score: %d  |  R: retry  |  Q: quit", v.Score)
		drawCenteredBox(dst, title, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// drawLeaderboard draws the top scores over the field.
func drawLeaderboard(dst *core.Screen, v game.View) {
	lines := leaderboardLines(v)

	boxW := 28
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := core.Max((dst.Height()-boxH)/2, 0)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	title := "LEADERBOARD"
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, line := range lines {
		dst.DrawText(boxX+2, boxY+3+i, line)
	}
}

func leaderboardLines(v game.View) []string {
	if len(v.Leaderboard) == 0 {
		return []string{"No scores yet"}
	}
	lines := make([]string, len(v.Leaderboard))
	for i, e := range v.Leaderboard {
		lines[i] = fmt.Sprintf("%2d. %6d   lives %d", i+1, e.Score, e.Lives)
	}
	return lines
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
