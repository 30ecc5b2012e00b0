package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  width: 40\nspeed:\n  ticks_per_second: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Grid.Width != 40 {
		t.Errorf("Grid.Width = %d, expected 40", cfg.Grid.Width)
	}
	// Missing keys keep defaults
	if cfg.Grid.Height != 24 {
		t.Errorf("Grid.Height = %d, expected default 24", cfg.Grid.Height)
	}
	if cfg.Speed.TicksPerSecond != 12 {
		t.Errorf("TicksPerSecond = %d, expected 12", cfg.Speed.TicksPerSecond)
	}
	if cfg.Glyphs.Body != "[]" {
		t.Errorf("Glyphs.Body = %q, expected default", cfg.Glyphs.Body)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadSnake() should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("colors:\n  body: chartreuse\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadSnake() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"defaults", func(*SnakeConfig) {}, false},
		{"tiny grid", func(c *SnakeConfig) { c.Grid.Width = 1 }, true},
		{"zero speed", func(c *SnakeConfig) { c.Speed.TicksPerSecond = 0 }, true},
		{"unknown color", func(c *SnakeConfig) { c.Colors.Target = "nope" }, true},
		{"one-rune glyph", func(c *SnakeConfig) { c.Glyphs.Body = "#" }, true},
		{"unicode glyph", func(c *SnakeConfig) { c.Glyphs.Target = "◀▶" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
		wantErr  bool
	}{
		{"", 20, false},
		{DifficultyEasy, 10, false},
		{DifficultyNormal, 20, false},
		{DifficultyHard, 30, false},
		{"insane", 20, true},
	}

	for _, tc := range tests {
		cfg := DefaultSnakeConfig()
		err := ApplySnakePreset(&cfg, tc.preset)
		if (err != nil) != tc.wantErr {
			t.Errorf("ApplySnakePreset(%q) error = %v, wantErr %v", tc.preset, err, tc.wantErr)
		}
		if cfg.Speed.TicksPerSecond != tc.expected {
			t.Errorf("ApplySnakePreset(%q) ticks = %d, expected %d", tc.preset, cfg.Speed.TicksPerSecond, tc.expected)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Width = 50

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := parseSnake(data)
	if err != nil {
		t.Fatalf("parseSnake() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
