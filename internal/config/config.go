// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid   GridConfig  `yaml:"grid"`
	Speed  SpeedConfig `yaml:"speed"`
	Colors ColorConfig `yaml:"colors"`
	Glyphs GlyphConfig `yaml:"glyphs"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the tick rate. One tick moves the snake one cell.
type SpeedConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// ColorConfig holds color names understood by core.ParseColor.
type ColorConfig struct {
	Background string `yaml:"background"`
	Body       string `yaml:"body"`
	Border     string `yaml:"border"`
	Target     string `yaml:"target"`
	HUD        string `yaml:"hud"`
}

// GlyphConfig holds the two-rune strings drawn for one grid cell.
type GlyphConfig struct {
	Body   string `yaml:"body"`
	Target string `yaml:"target"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// TicksForPreset returns the tick rate for a difficulty preset, or 0 for an
// unknown or empty preset.
func TicksForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 10
	case DifficultyNormal:
		return 20
	case DifficultyHard:
		return 30
	default:
		return 0
	}
}

// DefaultSnakeConfig returns the hardcoded fallback configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		Speed: SpeedConfig{
			TicksPerSecond: 20,
		},
		Colors: ColorConfig{
			Background: "black",
			Body:       "green",
			Border:     "bright_cyan",
			Target:     "red",
			HUD:        "bright_white",
		},
		Glyphs: GlyphConfig{
			Body:   "[]",
			Target: "()",
		},
	}
}
