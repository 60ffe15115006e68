package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show a player's aggregate statistics",
	Long: `Display lifetime statistics for a player: games played, total stars
collected, best combo and longest run.

Examples:
  galaxy stats Ana`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	name := args[0]

	store := openStore()
	defer store.Close()

	player, err := store.GetPlayer(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving player: %v\n", err)
		os.Exit(1)
	}
	if player == nil {
		fmt.Fprintf(os.Stderr, "Error: no player named %q\n", name)
		os.Exit(1)
	}

	stats, err := store.PlayerStats(player.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}
	if stats == nil {
		fmt.Printf("%s has no statistics yet.\n", name)
		return
	}

	fmt.Printf("Statistics - %s\n", player.Name)
	if !player.RegisteredAt.IsZero() {
		fmt.Printf("Registered: %s\n", player.RegisteredAt.Format("2006-01-02"))
	}
	fmt.Println()
	fmt.Printf("  Games played:  %d\n", stats.GamesPlayed)
	fmt.Printf("  Total stars:   %d\n", stats.TotalStars)
	fmt.Printf("  Best combo:    x%d\n", stats.BestCombo)
	fmt.Printf("  Longest run:   %ds\n", stats.BestTime)
}
