package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagRecent int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores, overall statistics and the most
recent runs.

Examples:
  snake scores
  snake scores --recent 20
  snake scores --player alice
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show runs of this player only")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(snake.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(snake.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}
	}

	if stats, err := store.GetGameStats(snake.GameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.1f  Games: %d  Longest run: %d moves  Cleared: %d\n",
			stats.HighScore, stats.AvgScore, stats.GamesCount, stats.LongestRun, stats.Cleared)
	}

	if flagRecent <= 0 {
		return
	}

	var runs []storage.RunRecord
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagRecent)
	} else {
		runs, err = store.RecentRuns(snake.GameID, flagRecent)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-8s  %-12s  %-5s  %-6s  %-6s  %-9s  %s\n", "Run", "Player", "Score", "Length", "Moves", "End", "Date")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-12s  %-5d  %-6d  %-6d  %-9s  %s\n",
			shortID(r.RunID), r.Player, r.Score, r.Length, r.Ticks, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
