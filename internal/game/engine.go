package game

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreaker/internal/logging"
)

// ScoreRecorder receives the final score of a finished game.
// leaderboard.Board implements it.
type ScoreRecorder interface {
	AddScore(score, lives int) error
}

// Engine advances a GameState one discrete step at a time.
type Engine struct {
	recorder ScoreRecorder
	logger   *log.Logger
}

// NewEngine creates an engine that reports finished games to recorder.
// A nil recorder is allowed; a nil logger discards output.
func NewEngine(recorder ScoreRecorder, logger *log.Logger) *Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{recorder: recorder, logger: logger}
}

// Tick advances the simulation by exactly one step.
// It does nothing once the game is over.
func (e *Engine) Tick(state *GameState, s Settings) {
	if state.IsGameOver {
		return
	}
	state.Ticks++

	for i := range state.Balls {
		ball := &state.Balls[i]

		moveBall(ball, s.Step)
		bounceWalls(ball, s.Width)
		bouncePlatform(ball, state.Platform)
		state.Score += hitBlocks(ball, state.Blocks, s.BlockPoints)

		if ball.Y > s.Height {
			e.loseLife(state, ball, s)
		}
		if state.IsGameOver {
			break
		}
	}

	state.Blocks = slices.DeleteFunc(state.Blocks, func(b Block) bool {
		return b.Destroyed
	})

	if len(state.Blocks) == 0 {
		e.finalize(state, OutcomeWin)
	}
}

// moveBall integrates one fixed step. There is no sub-stepping.
func moveBall(ball *Ball, step float64) {
	ball.X += ball.DX * step
	ball.Y += ball.DY * step
}

// bounceWalls reflects the ball off the side and top walls.
// The position is not corrected, so the ball may sit past a wall for a tick.
func bounceWalls(ball *Ball, width float64) {
	if ball.X-ball.Radius < 0 || ball.X+ball.Radius > width {
		ball.DX = -ball.DX
		ball.LastHit = HitWall
	}
	if ball.Y-ball.Radius < 0 {
		ball.DY = -ball.DY
		ball.LastHit = HitTop
	}
}

// bouncePlatform reflects the ball when its lower edge is below the platform
// top and its center is within the platform span. There is no lower bound,
// so a ball under the platform is reflected too.
func bouncePlatform(ball *Ball, p Platform) {
	if ball.Y+ball.Radius > p.Y && ball.X >= p.X && ball.X <= p.Right() {
		ball.DY = -ball.DY
	}
}

// hitBlocks destroys every intact block the ball overlaps and returns the
// points earned. Each hit reflects the vertical velocity on its own.
func hitBlocks(ball *Ball, blocks []Block, points int) int {
	earned := 0
	for i := range blocks {
		b := &blocks[i]
		if b.Destroyed {
			continue
		}
		overlapsY := ball.Y+ball.Radius > b.Y && ball.Y-ball.Radius < b.Bottom()
		insideX := ball.X >= b.X && ball.X <= b.Right()
		if !overlapsY || !insideX {
			continue
		}
		b.Destroyed = true
		ball.DY = -ball.DY
		ball.LastHit = HitBlock
		earned += points
	}
	return earned
}

// loseLife handles a ball falling below the field.
func (e *Engine) loseLife(state *GameState, ball *Ball, s Settings) {
	state.Lives--

	if state.Lives > 0 {
		deducted := s.Deductions.Amount(state.Score, state.Lives)
		state.Score -= deducted
		if state.Score < state.InitialScore {
			state.Score = state.InitialScore
		}
		respawn(ball, state.Platform, s)
		e.logger.Debug("ball lost", "lives", state.Lives, "deducted", deducted, "score", state.Score)
		return
	}

	e.finalize(state, OutcomeLose)
}

// respawn puts the ball above the platform center heading right and down.
func respawn(ball *Ball, p Platform, s Settings) {
	ball.X = p.CenterX()
	ball.Y = p.Y - s.RespawnOffset
	ball.DX = s.BallSpeed
	ball.DY = s.BallSpeed
}

// finalize ends the game and records the score. It runs at most once per
// game: the terminal flag itself is the guard.
func (e *Engine) finalize(state *GameState, outcome Outcome) {
	if state.IsGameOver {
		return
	}
	state.IsGameOver = true
	state.Outcome = outcome

	e.logger.Info("game over", "outcome", outcome, "score", state.Score, "lives", state.Lives, "ticks", state.Ticks)

	if e.recorder == nil {
		return
	}
	if err := e.recorder.AddScore(state.Score, state.Lives); err != nil {
		e.logger.Warn("leaderboard not saved", "score", state.Score, "error", err)
	}
}
