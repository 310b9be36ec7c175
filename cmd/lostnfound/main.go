// lostnfound is a hot/cold search game for the terminal: click cells to
// reveal arrows pointing at the hidden star before the clock runs out.
//
// Usage:
//
//	lostnfound play          - Start a run
//	lostnfound scores        - Show the best finished runs
//	lostnfound curve         - Print the difficulty table
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: from config, 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.lostnfound/runs.db)
//	--log <path>    - Set log file (default: ~/.lostnfound/lostnfound.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lost-n-found/internal/logging"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lostnfound",
	Short: "Lost-n-Found - find the hidden star before time runs out",
	Long: `Lost-n-Found is a hot/cold search game played with the mouse.

Every click reveals a cell for a few seconds. Arrows point toward the
hidden star, red traps scramble the arrows for a while, and each level
brings a bigger board, a shorter clock and fewer cells visible at once.

Available commands:
  play     - Start a run
  scores   - Show the best finished runs
  curve    - Print the difficulty table

Examples:
  lostnfound play
  lostnfound play --difficulty hard
  lostnfound scores --limit 5
  lostnfound curve --max 30`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = display.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lostnfound/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", logging.DefaultPath, "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(curveCmd)
}
