package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galaxy-runner/internal/core"
	"github.com/vovakirdan/galaxy-runner/internal/platform/tui"
	"github.com/vovakirdan/galaxy-runner/internal/scene"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Galaxy Runner",
	Long: `Start the game.

Controls:
  Left/Right or a/d  - Steer
  Down or s          - Stop
  P                  - Pause
  Esc                - Back to menu / quit
  Ctrl+C             - Quit

After a run ends, type your name and press Enter (or click "Save & Menu")
to put your score on the board.

Examples:
  galaxy play
  galaxy play --seed 7
  galaxy play --config ./my-galaxy.yaml
  galaxy play --player Ana`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()
	defer store.Close()

	deps := scene.Deps{
		Store:  store,
		Logger: newSessionLogger(),
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Game:     loadGameConfig(),
		PlayerID: resolvePlayerID(store),
	}

	if err := tui.Run(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
