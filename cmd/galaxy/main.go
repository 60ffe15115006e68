// galaxy is a terminal rendition of the Galaxy Runner arcade game: steer a
// ship through falling debris, collect stars, and climb the leaderboard.
//
// Usage:
//
//	galaxy                   - Play (same as "galaxy play")
//	galaxy play              - Play the game
//	galaxy scores            - Show the leaderboard
//	galaxy stats <name>      - Show a player's aggregate statistics
//	galaxy missions          - List active missions
//	galaxy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible drop patterns
//	--db <path>      - Set database path (default: ~/.galaxy-runner/galaxy.db)
//	--config <path>  - Custom gameplay config YAML
//	--player <name>  - Player whose settings apply
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-runner/internal/config"
	"github.com/vovakirdan/galaxy-runner/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagPlayer string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "Galaxy Runner - dodge debris, collect stars",
	Long: `Galaxy Runner is an endless-runner arcade game for the terminal.
Steer your ship with the arrow keys (or a/d), grab stars for combo points,
dodge debris, and pick up shields to survive a little longer.

Running galaxy with no command starts the game.

Available commands:
  play     - Play the game
  scores   - View the leaderboard
  stats    - View a player's aggregate statistics
  missions - List or add missions
  serve    - Start SSH server for remote play

Examples:
  galaxy
  galaxy play --seed 7
  galaxy scores --level 2
  galaxy scores -i
  galaxy stats Ana
  galaxy serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.galaxy-runner/galaxy.db", "Path to game database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player whose settings apply (default: first player)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(missionsCmd)
	rootCmd.AddCommand(serveCmd)
}

// openStore opens the game database or exits with an error message.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// loadGameConfig loads the gameplay config, falling back to the built-in
// defaults on failure.
func loadGameConfig() config.GameConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot load config: %v (using defaults)\n", err)
		return config.Default()
	}
	return cfg
}

// resolvePlayerID maps --player to a player id. Unset or unknown names fall
// back to the first player, the original behavior.
func resolvePlayerID(store *storage.Store) int64 {
	if flagPlayer == "" {
		return 1
	}
	player, err := store.GetPlayer(flagPlayer)
	if err != nil || player == nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown player %q, using default settings\n", flagPlayer)
		return 1
	}
	return player.ID
}

// newSessionLogger logs to ~/.galaxy-runner/galaxy.log so log lines never
// tear the alt-screen. Falls back to a discarding logger.
func newSessionLogger() *log.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard)
	}
	dir := filepath.Join(home, ".galaxy-runner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(filepath.Join(dir, "galaxy.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "galaxy"})
}
