package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 scores for the specified variant (default: snake).
A score is recorded whenever a crash resets a non-zero score and when you
quit with points on the board.

Examples:
  snake scores
  snake scores snake_fullscreen
  snake scores --clear snake_fullscreen`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var flagClear bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := string(snake.VariantClassic)
	if len(args) > 0 {
		gameID = args[0]
	}

	title := ""
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}
	if title == "" {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "---", "----")
	for i, entry := range scores {
		run := entry.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, run, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
