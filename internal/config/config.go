// Package config provides YAML-based game configuration loading and
// difficulty presets for Block Breaker.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of a Block Breaker session.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Ball     BallConfig     `yaml:"ball"`
	Platform PlatformConfig `yaml:"platform"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// FieldConfig defines the playfield size in game units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BlocksConfig defines the uniform block grid.
type BlocksConfig struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Height  float64 `yaml:"height"`
	Top     float64 `yaml:"top"`    // Y of the first row
	Points  int     `yaml:"points"` // Score per destroyed block
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Units per tick on each axis
}

// PlatformConfig defines the player's platform.
type PlatformConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per input frame
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between platform bottom and field bottom
}

// GameplayConfig defines lives, scoring and timing rules.
type GameplayConfig struct {
	Lives         int         `yaml:"lives"`
	InitialScore  int         `yaml:"initial_score"`  // Floor the score never drops below
	RespawnOffset float64     `yaml:"respawn_offset"` // Distance above the platform for a respawned ball
	Step          float64     `yaml:"step"`           // Velocity multiplier per tick
	CooldownMS    int         `yaml:"cooldown_ms"`    // Debounce window for toggle keys
	Deductions    map[int]int `yaml:"deductions"`     // Remaining lives -> percent of score lost
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// An empty string selects no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Lives are never changed: every session starts with the configured count.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed = 3
		cfg.Platform.Width = 140
		cfg.Platform.Speed = 10
	case DifficultyHard:
		cfg.Ball.Speed = 6
		cfg.Platform.Width = 80
		cfg.Platform.Speed = 9
	}
}

// Validate reports settings that would make the simulation meaningless.
func (c Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Blocks.Rows <= 0 || c.Blocks.Columns <= 0 {
		errs = append(errs, fmt.Errorf("block grid must be positive, got %dx%d", c.Blocks.Rows, c.Blocks.Columns))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Platform.Width <= 0 || c.Platform.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("platform width %v does not fit field width %v", c.Platform.Width, c.Field.Width))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.InitialScore < 0 {
		errs = append(errs, fmt.Errorf("initial score must not be negative, got %d", c.Gameplay.InitialScore))
	}
	for lives, pct := range c.Gameplay.Deductions {
		if pct < 0 || pct > 100 {
			errs = append(errs, fmt.Errorf("deduction for %d lives must be 0-100, got %d", lives, pct))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
