// Package game implements the Block Breaker simulation: the entity model,
// the per-tick engine and the session controller that routes input.
// It has no terminal dependencies; the platform layer reads View snapshots.
package game

// CollisionTag records the kind of the ball's most recent collision.
// The presentation layer maps it to a display color.
type CollisionTag int

const (
	HitNone  CollisionTag = iota // No collision yet
	HitWall                      // Left or right wall
	HitTop                       // Top wall
	HitBlock                     // A block
)

// String returns the tag name.
func (t CollisionTag) String() string {
	switch t {
	case HitWall:
		return "wall"
	case HitTop:
		return "top"
	case HitBlock:
		return "block"
	default:
		return "none"
	}
}

// Outcome tells how a finished game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // Game still running
	OutcomeWin                 // All blocks destroyed
	OutcomeLose                // No lives left
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Block is one destructible block in the grid.
type Block struct {
	X, Y      float64 // Top-left corner
	W, H      float64
	Destroyed bool
}

// NewBlock creates an intact block.
func NewBlock(x, y, w, h float64) Block {
	return Block{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Block) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Block) Bottom() float64 {
	return b.Y + b.H
}

// Ball is the moving ball. X and Y are its center.
type Ball struct {
	X, Y    float64
	Radius  float64
	DX, DY  float64 // Velocity per tick
	LastHit CollisionTag
}

// NewBall creates a ball at (x, y) moving by (dx, dy) each tick.
func NewBall(x, y, radius, dx, dy float64) Ball {
	return Ball{X: x, Y: y, Radius: radius, DX: dx, DY: dy}
}

// Platform is the player's paddle. X and Y are its top-left corner.
type Platform struct {
	X, Y float64
	W, H float64
}

// NewPlatform creates a platform.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{X: x, Y: y, W: w, H: h}
}

// CenterX returns the horizontal center of the platform.
func (p Platform) CenterX() float64 {
	return p.X + p.W/2
}

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 {
	return p.X + p.W
}

// GameState is the complete mutable state of one game.
// It is replaced wholesale on reset, never partially reinitialized.
type GameState struct {
	Blocks   []Block
	Balls    []Ball
	Platform Platform

	Score        int
	InitialScore int // Floor the score never drops below
	Lives        int

	IsGameOver      bool
	Outcome         Outcome
	Paused          bool
	ShowLeaderboard bool

	Ticks uint64
}

// NewGameState builds a fresh game: full block grid, centered platform,
// one ball in the middle of the field heading up and to the right.
func NewGameState(s Settings) *GameState {
	platform := NewPlatform(
		(s.Width-s.PlatformWidth)/2,
		s.Height-s.PlatformMargin-s.PlatformHeight,
		s.PlatformWidth,
		s.PlatformHeight,
	)

	ball := NewBall(s.Width/2, s.Height/2, s.BallRadius, s.BallSpeed, -s.BallSpeed)

	return &GameState{
		Blocks:       BuildGrid(s),
		Balls:        []Ball{ball},
		Platform:     platform,
		Score:        s.InitialScore,
		InitialScore: s.InitialScore,
		Lives:        s.Lives,
	}
}

// BuildGrid lays out Rows x Columns blocks spanning the full field width,
// starting at BlockTop.
func BuildGrid(s Settings) []Block {
	if s.Rows <= 0 || s.Columns <= 0 {
		return nil
	}

	width := s.Width / float64(s.Columns)
	blocks := make([]Block, 0, s.Rows*s.Columns)
	for row := range s.Rows {
		y := s.BlockTop + float64(row)*s.BlockHeight
		for col := range s.Columns {
			blocks = append(blocks, NewBlock(float64(col)*width, y, width, s.BlockHeight))
		}
	}
	return blocks
}
