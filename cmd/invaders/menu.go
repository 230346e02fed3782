package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right and press Enter on Play.
Going back from a finished game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	difficulty := invaders.Difficulty()
	highScore := startingHighScore(store, difficulty)
	title := invaders.New().Title()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(title, difficulty, highScore, width, height)
		if err != nil {
			return err
		}
		width, height = menuResult.Width, menuResult.Height
		difficulty = menuResult.Difficulty

		switch menuResult.Choice {
		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(store, invaders.GameID, difficulty, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue

		case tui.MenuPlay:
		default:
			return nil
		}

		cfg, err := invaders.LoadConfigFor(difficulty)
		if err != nil {
			return err
		}
		rt := runtimeConfig(width, height)
		result, err := tui.RunGame(invaders.NewWithConfig(cfg), rt, tui.GameOptions{
			Store:      store,
			Difficulty: difficulty,
			HighScore:  highScore,
			HoldTicks:  cfg.KeyHoldTicks(rt.TickRate),
			Logger:     log.Default(),
		})
		if err != nil {
			return err
		}
		highScore = max(highScore, result.State.HighScore)

		if !result.BackToMenu {
			return nil
		}
	}
}
