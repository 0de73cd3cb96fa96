package game

import (
	"maps"
	"time"

	"github.com/vovakirdan/blockbreaker/internal/config"
)

// DeductionTable maps remaining lives to the percent of the score lost
// when a ball falls through. Lives without an entry lose nothing.
type DeductionTable map[int]int

// Percent returns the deduction percent for the given remaining lives.
func (t DeductionTable) Percent(lives int) int {
	return t[lives]
}

// Amount returns floor(score * percent / 100) for the given remaining lives.
func (t DeductionTable) Amount(score, lives int) int {
	if score <= 0 {
		return 0
	}
	return score * t.Percent(lives) / 100
}

// Settings holds the immutable per-session parameters.
// Distances are game units; speeds are units per tick.
type Settings struct {
	Width  float64
	Height float64

	Rows        int
	Columns     int
	BlockHeight float64
	BlockTop    float64
	BlockPoints int

	BallRadius float64
	BallSpeed  float64

	PlatformWidth  float64
	PlatformHeight float64
	PlatformSpeed  float64
	PlatformMargin float64

	Lives         int
	InitialScore  int
	RespawnOffset float64
	Step          float64       // Velocity multiplier applied per tick
	Cooldown      time.Duration // Debounce window for toggle actions
	Deductions    DeductionTable
}

// SettingsFromConfig converts a loaded config into session settings.
func SettingsFromConfig(cfg config.Config) Settings {
	step := cfg.Gameplay.Step
	if step <= 0 {
		step = 1
	}
	return Settings{
		Width:          cfg.Field.Width,
		Height:         cfg.Field.Height,
		Rows:           cfg.Blocks.Rows,
		Columns:        cfg.Blocks.Columns,
		BlockHeight:    cfg.Blocks.Height,
		BlockTop:       cfg.Blocks.Top,
		BlockPoints:    cfg.Blocks.Points,
		BallRadius:     cfg.Ball.Radius,
		BallSpeed:      cfg.Ball.Speed,
		PlatformWidth:  cfg.Platform.Width,
		PlatformHeight: cfg.Platform.Height,
		PlatformSpeed:  cfg.Platform.Speed,
		PlatformMargin: cfg.Platform.BottomMargin,
		Lives:          cfg.Gameplay.Lives,
		InitialScore:   cfg.Gameplay.InitialScore,
		RespawnOffset:  cfg.Gameplay.RespawnOffset,
		Step:           step,
		Cooldown:       time.Duration(cfg.Gameplay.CooldownMS) * time.Millisecond,
		Deductions:     DeductionTable(maps.Clone(cfg.Gameplay.Deductions)),
	}
}

// DefaultSettings returns settings built from the default config.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultConfig())
}
