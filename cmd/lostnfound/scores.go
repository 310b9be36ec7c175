package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lost-n-found/internal/platform/tui"
	"github.com/vovakirdan/lost-n-found/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Long: `Display the best finished runs, ranked by level reached, then rounds
won, then the shorter play time.

Examples:
  lostnfound scores
  lostnfound scores --limit 5
  lostnfound scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagLimit <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --limit must be positive, got %d\n", flagLimit)
		os.Exit(1)
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		n, err := clearHistory(store)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %d runs.\n", n)
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	total, err := store.RunCount()
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Lost-n-Found")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lostnfound play' to set the first record!")
		return
	}

	fmt.Println(tui.RunsTable(runs).View())
	fmt.Println()
	fmt.Printf("Best: level %d (%d runs played)\n", runs[0].LevelReached, total)
}

// clearHistory deletes every recorded run and reports how many there were.
func clearHistory(store *storage.Store) (int, error) {
	n, err := store.RunCount()
	if err != nil {
		return 0, err
	}
	if err := store.ClearRuns(); err != nil {
		return 0, err
	}
	return n, nil
}
