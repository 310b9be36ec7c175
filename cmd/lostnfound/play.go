package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lost-n-found/internal/config"
	"github.com/vovakirdan/lost-n-found/internal/core"
	"github.com/vovakirdan/lost-n-found/internal/logging"
	"github.com/vovakirdan/lost-n-found/internal/platform/tui"
	"github.com/vovakirdan/lost-n-found/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagDebug      bool
	flagASCII      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run of Lost-n-Found. Winning a round moves on to the next
level; losing one ends the run and records it.

Controls:
  Left click  - Reveal a cell
  R           - New run (after the run is over)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 7, where the clock starts shrinking
  hard   - Start at level 16, with the shortest clock

Examples:
  lostnfound play
  lostnfound play --difficulty normal
  lostnfound play --level 12
  lostnfound play --ascii
  lostnfound play --config ./my-lostnfound.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (overrides --difficulty)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	playCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Draw the board with ASCII symbols only")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagASCII {
		cfg.Display.Glyphs = "ascii"
	}

	startLevel, err := config.StartLevelForPreset(config.DifficultyPreset(flagDifficulty))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLevel > 0 {
		startLevel = flagLevel
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger, logFile, err := logging.OpenFile(flagLogPath, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, logFile = logging.Discard(), io.NopCloser(nil)
	}
	defer logFile.Close()

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history disabled", "error", err)
		// Continue without storage - the game still works
		store = nil
	}

	logger.Info("session started",
		"start_level", startLevel,
		"screen", fmt.Sprintf("%dx%d", width, height),
		"seed", flagSeed,
	)

	runErr := tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    runtime,
		StartLevel: startLevel,
		Store:      store,
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("session ended")
}
