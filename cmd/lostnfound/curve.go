package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lost-n-found/internal/config"
	"github.com/vovakirdan/lost-n-found/internal/platform/tui"
)

var flagMaxLevel int

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the difficulty table",
	Long: `Print round time, board size and visible cells per level, using the
same config search as play.

Examples:
  lostnfound curve
  lostnfound curve --max 40
  lostnfound curve --config ./my-lostnfound.yaml`,
	Args: cobra.NoArgs,
	Run:  runCurve,
}

func init() {
	curveCmd.Flags().IntVar(&flagMaxLevel, "max", 30, "Last level to list")
	curveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runCurve(cmd *cobra.Command, args []string) {
	if flagMaxLevel < 1 {
		fmt.Fprintf(os.Stderr, "Error: --max must be at least 1, got %d\n", flagMaxLevel)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tui.CurveTable(cfg.Difficulty, flagMaxLevel).View())
}
