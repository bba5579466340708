package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tank/internal/games/tank"
	"github.com/vovakirdan/tui-tank/internal/platform/tui"
	"github.com/vovakirdan/tui-tank/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best and most recent recorded runs.

In a terminal this opens an interactive table; Tab switches between
top and recent runs. Use --plain for text output.

Examples:
  tank scores
  tank scores --plain --limit 5
  tank scores --plain --recent
  tank scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Print the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded run history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(tank.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, tank.GameID, "Tank Shooter", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printRuns(store)
}

// printRuns writes the run history as plain text.
func printRuns(store *storage.Store) {
	title := "Top Runs"
	runs, err := store.TopRuns(tank.GameID, flagLimit)
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(tank.GameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Tank Shooter\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tank play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Ticks", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, r := range runs {
		score := fmt.Sprintf("%d", r.Score)
		if r.NewRecord {
			score += "*"
		}
		fmt.Printf("  %-4d  %-10s  %-5d  %-8d  %s\n", i+1, score, r.Level, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(tank.GameID)
	if err != nil {
		return
	}
	stats, err := store.GetGameStats(tank.GameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Best level: %d  Average: %.0f\n",
		stats.RunsCount, best, stats.BestLevel, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println("* new high score at the time")
}
