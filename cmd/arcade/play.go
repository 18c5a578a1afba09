package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/platform/tui"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game right away. Leaving the game opens
its settings screen; leaving that returns to the menu.

Controls:
  Space      - Jump (runner)
  Arrows     - Steer, move the snake, move the cursor
  Enter      - Place a mark (tic-tac-toe)
  P          - Pause
  Esc        - Pause, then back to settings
  R          - Restart (after game over)
  Q          - Leave the game
  Ctrl+C     - Quit

Difficulty options:
  easy, normal, hard

Examples:
  arcade play runner
  arcade play racer --difficulty hard
  arcade play snake --mode modern
  arcade play runner --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty: easy, normal, hard")
	playCmd.Flags().StringVar(&flagName, "name", config.DefaultPlayerName, "Player name shown in the HUD and scoreboard")
	playCmd.Flags().StringVar(&flagMode, "mode", string(config.SnakeClassic), "Snake mode: classic, modern")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	settings, err := playSettings()
	if err != nil {
		fail("%v", err)
	}

	// Fail before the terminal is taken over when the game cannot be built
	game, err := registry.Create(gameID, settings, nil)
	if err != nil {
		fail("creating game: %v", err)
	}
	game.Close()

	runHub(tui.HubOptions{
		Settings: settings,
		GameID:   gameID,
		Direct:   true,
	})
}

// playSettings builds the game settings from the play flags.
func playSettings() (config.Settings, error) {
	d, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Settings{}, err
	}
	mode, err := config.ParseSnakeMode(flagMode)
	if err != nil {
		return config.Settings{}, err
	}

	s := config.Settings{
		Difficulty: d,
		PlayerName: flagName,
		SnakeMode:  mode,
		ConfigPath: flagConfig,
	}
	return s.Normalize(), s.Validate()
}
