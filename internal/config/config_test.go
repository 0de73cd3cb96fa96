package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() differ:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  speed: 7\nblocks:\n  rows: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ball.Speed != 7 {
		t.Errorf("Ball.Speed = %v, expected 7", cfg.Ball.Speed)
	}
	if cfg.Blocks.Rows != 2 {
		t.Errorf("Blocks.Rows = %d, expected 2", cfg.Blocks.Rows)
	}
	// Unset keys keep their defaults
	if cfg.Blocks.Columns != DefaultConfig().Blocks.Columns {
		t.Errorf("Blocks.Columns = %d, expected default", cfg.Blocks.Columns)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("blocks:\n  columns: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "block grid") {
		t.Errorf("Load() of an invalid file should report the grid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Field.Width = 0 }},
		{"no rows", func(c *Config) { c.Blocks.Rows = 0 }},
		{"no radius", func(c *Config) { c.Ball.Radius = 0 }},
		{"platform too wide", func(c *Config) { c.Platform.Width = c.Field.Width + 1 }},
		{"no lives", func(c *Config) { c.Gameplay.Lives = 0 }},
		{"negative initial score", func(c *Config) { c.Gameplay.InitialScore = -1 }},
		{"deduction over 100", func(c *Config) { c.Gameplay.Deductions = map[int]int{1: 101} }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	hard := DefaultConfig()
	ApplyPreset(&hard, DifficultyHard)
	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)

	if easy.Ball.Speed >= hard.Ball.Speed {
		t.Errorf("easy ball speed %v should be below hard %v", easy.Ball.Speed, hard.Ball.Speed)
	}
	if easy.Platform.Width <= hard.Platform.Width {
		t.Errorf("easy platform %v should be wider than hard %v", easy.Platform.Width, hard.Platform.Width)
	}
	if !reflect.DeepEqual(normal, DefaultConfig()) {
		t.Error("normal preset should keep the defaults")
	}
	if easy.Gameplay.Lives != 3 || hard.Gameplay.Lives != 3 {
		t.Error("presets must not change lives")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("marshalled config should decode to the same values")
	}
}
