// cave runs the Cave Explorer platformer.
//
// Usage:
//
//	cave [play]              - Play (default command)
//	cave replay <file>       - Re-simulate a recording headless
//	cave scores              - Show the best finished runs
//
// Global flags:
//
//	--seed <value>    - RNG seed (0 = random based on time)
//	--config <file>   - Config file on disk, or the name of a bundled one
//	--db <path>       - Score database path (default: ~/.cave/scores.db)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cave",
	Short: "Cave Explorer - a side-scrolling cave platformer",
	Long: `Cave Explorer is a side-scrolling platformer: cross a randomly
generated cave, avoid spikes and enemies, and reach the goal before time
runs out.

Available commands:
  play     - Play the game (default)
  replay   - Re-simulate a recorded run
  scores   - View the best runs

Examples:
  cave
  cave play --seed 42 --record run.json
  cave --config simple.json
  cave replay run.json --verify
  cave scores`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path or bundled config name (game.yaml, simple.json)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cave/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input of the first run to file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}
