package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores stored in --db, optionally for one difficulty.

Examples:
  shooter scores --db ~/.shooter/scores.db
  shooter scores --db ~/.shooter/scores.db --difficulty hard --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		fmt.Println("No scores database given; scores are only kept for one run.")
		fmt.Println("Use --db <path> when playing and here to keep a scoreboard.")
		return nil
	}

	logger := newLogger(os.Stderr, "shooter")
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// An explicit --difficulty filters the table; otherwise all are ranked together.
	difficulty := ""
	if cmd.Flags().Changed("difficulty") {
		difficulty = cfg.Difficulties[cfg.StartDifficulty()].Name
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("shooter: open scores: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(difficulty, flagLimit)
	if err != nil {
		return fmt.Errorf("shooter: read scores: %w", err)
	}

	title := "All difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "Rank", "Score", "Level", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "----", "-----", "-----", "----------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %-10s  %s\n",
			i+1, e.Score, e.Level+1, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if difficulty != "" {
		if best, err := store.HighScore(difficulty); err == nil {
			fmt.Printf("\nBest: %d\n", best)
		}
		return nil
	}

	stats, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("shooter: read stats: %w", err)
	}
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	for _, name := range names {
		st := stats[name]
		fmt.Printf("%-8s games: %-4d best: %-5d avg: %.1f\n", name, st.Games, st.HighScore, st.AvgScore)
	}
	return nil
}
