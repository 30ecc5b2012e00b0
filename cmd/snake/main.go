// snake is a terminal Snake game on a wrapping (toroidal) grid.
//
// Usage:
//
//	snake                    - Play the classic variant
//	snake play [variant]     - Play a variant (snake, snake_fullscreen)
//	snake list               - List available variants
//	snake scores [variant]   - Show high scores for a variant
//	snake board              - Browse high scores interactively
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - Speed preset: easy, normal, hard
//	--log <path>          - Write a debug log to this file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake [variant]",
	Short: "Snake on a wrapping grid, in your terminal",
	Long: `Steer the snake with the arrow keys, WASD or hjkl. Eat the target to
grow, leave one edge to come back on the opposite one, and don't bite
yourself: a crash starts a fresh snake with the score back at zero.

Available commands:
  play     - Play a variant (default: snake)
  list     - Show all variants
  scores   - View high scores
  board    - Interactive scoreboard
  config   - Print the effective configuration

Examples:
  snake
  snake play snake_fullscreen
  snake --difficulty hard
  snake scores
  snake config --config ./my-snake.yaml`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Speed preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}
