package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if cfg, err := parseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSnake decodes YAML over the defaults and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplySnakePreset overrides the tick rate from a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	ticks := TicksForPreset(preset)
	if ticks == 0 {
		return fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, preset)
	}
	cfg.Speed.TicksPerSecond = ticks
	return nil
}

// Validate reports every problem with the configuration at once.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("%w: grid must be at least 2x2, got %dx%d",
			ErrInvalid, c.Grid.Width, c.Grid.Height))
	}
	if c.Speed.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("%w: ticks_per_second must be positive, got %d",
			ErrInvalid, c.Speed.TicksPerSecond))
	}

	colors := map[string]string{
		"background": c.Colors.Background,
		"body":       c.Colors.Body,
		"border":     c.Colors.Border,
		"target":     c.Colors.Target,
		"hud":        c.Colors.HUD,
	}
	for _, key := range []string{"background", "body", "border", "target", "hud"} {
		if _, err := core.ParseColor(colors[key]); err != nil {
			errs = append(errs, fmt.Errorf("%w: colors.%s: %v", ErrInvalid, key, err))
		}
	}

	if n := len([]rune(c.Glyphs.Body)); n != 2 {
		errs = append(errs, fmt.Errorf("%w: glyphs.body must be 2 runes, got %d", ErrInvalid, n))
	}
	if n := len([]rune(c.Glyphs.Target)); n != 2 {
		errs = append(errs, fmt.Errorf("%w: glyphs.target must be 2 runes, got %d", ErrInvalid, n))
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
