package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galaxy-runner/internal/platform/tui"
)

var (
	flagScoresLevel       int
	flagScoresLimit       int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores.

By default the global top 10 is printed. Use --level to restrict to one
level, or -i for an interactive table with per-level tabs.

Examples:
  galaxy scores
  galaxy scores --level 2
  galaxy scores --limit 25
  galaxy scores -i`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Show only this level (0 = all)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rows, err := store.Leaderboard(flagScoresLevel, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if flagScoresLevel > 0 {
		fmt.Printf("High Scores - Level %d\n\n", flagScoresLevel)
	} else {
		fmt.Printf("High Scores - Global\n\n")
	}

	if len(rows) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'galaxy play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-4s  %-6s  %s\n", "Rank", "Player", "Score", "Lvl", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-4s  %-6s  %s\n", "----", "------", "-----", "---", "----", "----")

	for i, row := range rows {
		fmt.Printf("  %-4d  %-16s  %-8d  %-4d  %-6s  %s\n",
			i+1, row.PlayerName, row.Score, row.Level,
			fmt.Sprintf("%ds", row.ElapsedTime),
			row.RecordedAt.Format("2006-01-02 15:04"))
	}
}
