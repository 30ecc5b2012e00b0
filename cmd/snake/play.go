package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: snake).

Variants:
  snake             - Classic 32x24 grid (needs a 66x28 terminal)
  snake_fullscreen  - Grid sized to the terminal

Controls:
  Arrows/WASD/hjkl  - Steer
  Ctrl+S            - Save a text screenshot
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy   - 10 ticks per second
  normal - 20 ticks per second
  hard   - 30 ticks per second

Examples:
  snake play
  snake play snake_fullscreen --difficulty easy
  snake play --seed 42 --fps 15
  snake play --config ./my-snake.yaml --log ./snake.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// stderrLogger reports problems before the TUI takes over the terminal.
var stderrLogger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := string(snake.VariantClassic)
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage; the game still works without it.
	best := 0
	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderrLogger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
		if best, err = store.HighScore(gameID); err != nil {
			logger.Warn("could not read high score", "error", err)
		}
	}

	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = cfg.Speed.TicksPerSecond
	}

	return tui.Run(game, store, logger, core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  tickRate,
		Seed:      flagSeed,
		HighScore: best,
	})
}

// loadConfig loads the YAML config and applies the difficulty preset.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if err := config.ApplySnakePreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// openLogger returns a logger writing to path, or a discarding logger when
// path is empty. The TUI owns the terminal so nothing is logged to stderr.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
