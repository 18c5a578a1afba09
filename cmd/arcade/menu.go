package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/platform/tui"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive game picker",
	Long: `Opens the arcade menu. Pick a game, choose your name and difficulty,
play, and come back to the settings screen when the run is over.

Controls:
  Up/Down    - Navigate
  Enter      - Select
  Tab        - Scoreboard
  Esc        - Back
  Q          - Quit (from the menu)`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	runHub(tui.HubOptions{Settings: config.DefaultSettings()})
}

// runHub opens the session store and runs the hub until the player quits.
func runHub(opts tui.HubOptions) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		// The games still work without a scoreboard
		logger.Warn("could not open scoreboard", "err", err)
		store = nil
	}

	opts.Store = store
	opts.Logger = logger
	opts.Config = runtimeConfig()
	logger.Info("arcade started", "fps", opts.Config.TickRate, "seed", opts.Config.Seed,
		"width", opts.Config.ScreenW, "height", opts.Config.ScreenH)

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		logger.Error("arcade stopped", "err", runErr)
		closeLog()
		fail("running arcade: %v", runErr)
	}
	logger.Info("arcade stopped")
}
