package config

import (
	_ "embed"
)

//go:embed defaults/blockbreaker.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in Block Breaker configuration.
// It mirrors defaults/blockbreaker.yaml.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Blocks: BlocksConfig{
			Rows:    5,
			Columns: 10,
			Height:  25,
			Top:     50,
			Points:  10,
		},
		Ball: BallConfig{
			Radius: 8,
			Speed:  4,
		},
		Platform: PlatformConfig{
			Width:        100,
			Height:       10,
			Speed:        16,
			BottomMargin: 30,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			InitialScore:  0,
			RespawnOffset: 30,
			Step:          1,
			CooldownMS:    200,
			Deductions:    map[int]int{2: 10, 1: 25},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
