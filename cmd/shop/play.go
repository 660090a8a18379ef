package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shop/internal/platform/tui"
	"github.com/vovakirdan/tui-shop/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse      - Move the cart
  P          - Pause items (the cart still follows the mouse)
  R          - Respawn items
  Ctrl+S     - Save a screenshot to ~/.shop/screenshots
  Esc/B/Q    - Quit

Difficulty options:
  easy   - Fewer, slower items
  normal - Configured count and speed
  hard   - More, faster items

Examples:
  shop play cartchase
  shop play cartchase --difficulty hard
  shop play cartchase --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	loadConfig()

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		fail("unknown game %q\nRun 'shop games' to see available games.", gameID)
	}
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, runtimeConfig()); err != nil {
		fail("running game: %v", err)
	}
}
