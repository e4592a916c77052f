package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump (fire in the shooter)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, more lives
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, fewer lives
  fixed  - No progression, stays at config's initial level

With --watch, saving the --config file restarts the game with the new
values, which makes level editing quick.

Examples:
  arcade play platformer
  arcade play runner --difficulty easy
  arcade play shooter --difficulty hard
  arcade play platformer --config ./level.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the game when the --config file changes")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if flagWatch && flagConfig == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch requires --config")
		os.Exit(1)
	}

	logger, closeLog := mustLogger()
	defer closeLog()

	cfg := terminalConfig()
	cfg.Logger = logger

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	registry.Configure(game, flagConfig, flagDifficulty)

	var opts []tui.Option
	if flagWatch {
		w, err := config.WatchFile(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching config: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
		opts = append(opts, tui.WithWatcher(w))
		logger.Info("watching config", "path", flagConfig)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, opts...)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
