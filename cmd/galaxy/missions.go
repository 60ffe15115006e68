package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagMissionTarget int
	flagMissionKind   string
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List active missions",
	Long: `List missions that are still active: not yet completed and within
their validity window. Stars collected in a run count toward every active
mission.

Examples:
  galaxy missions
  galaxy missions add "Collect 50 stars" --target 50`,
	Run: runMissionsList,
}

var missionsAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new mission",
	Args:  cobra.ExactArgs(1),
	Run:   runMissionsAdd,
}

func init() {
	missionsAddCmd.Flags().IntVar(&flagMissionTarget, "target", 10, "Progress needed to complete the mission")
	missionsAddCmd.Flags().StringVar(&flagMissionKind, "kind", "daily", "Mission kind")
	missionsCmd.AddCommand(missionsAddCmd)
}

func runMissionsList(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	missions, err := store.ActiveMissions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving missions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Active Missions")
	fmt.Println()

	if len(missions) == 0 {
		fmt.Println("No active missions.")
		fmt.Println()
		fmt.Println("Add one with: galaxy missions add \"Collect 10 stars\" --target 10")
		return
	}

	for _, m := range missions {
		until := "open-ended"
		if m.ValidUntil != "" {
			until = "until " + m.ValidUntil
		}
		fmt.Printf("  [%d/%d] %s (%s, %s)\n", m.Progress, m.Target, m.Description, m.Kind, until)
	}
}

func runMissionsAdd(cmd *cobra.Command, args []string) {
	if flagMissionTarget <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --target must be positive")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	id, err := store.CreateMission(args[0], flagMissionTarget, flagMissionKind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mission: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created mission %d: %s (target %d)\n", id, args[0], flagMissionTarget)
}
