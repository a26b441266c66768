package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in this terminal",
	Long: `Start a hot-seat game: both players take turns at this keyboard.

Controls:
  Left/H, Right/L  - Move the column marker
  Enter/Space      - Drop a piece under the marker
  1-7              - Drop a piece in that column
  R                - New game (play again after a win or tie)
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Finished games are recorded in the results database unless
storage.record is false in the config.

Examples:
  connect4 play
  connect4 play --config ./my-connect4.yaml
  connect4 play --log-file /tmp/connect4.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	theme, err := cfg.Theme()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, logCloser, err := newLogger(cfg, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// Get terminal size
	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Theme:  theme,
		Store:  store,
		Origin: "local",
		Logger: logger,
	}, core.RuntimeConfig{ScreenW: width, ScreenH: height})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
