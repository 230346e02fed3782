package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/replay"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing.

Controls:
  Left/A, Right/D  - Move the ship
  Space            - Fire
  Enter/P, click   - Start a new game on the Play button
  B/Esc            - Back to menu (between games)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More ships and bullets, slower fleet, gentler speed-up
  normal - The configured values
  hard   - One spare ship, fewer bullets, faster fleet, steeper speed-up

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invaders.yaml
  invaders play --record game.replay`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the game's input to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Fail on a bad config before taking over the terminal
	cfg, err := invaders.LoadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(invaders.GameID)
	if err != nil {
		return err
	}

	rt := runtimeConfig(terminalSize())
	difficulty := invaders.Difficulty()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.GameOptions{
		Store:      store,
		Difficulty: difficulty,
		HighScore:  startingHighScore(store, difficulty),
		HoldTicks:  cfg.KeyHoldTicks(rt.TickRate),
		Logger:     log.Default(),
	}
	if flagRecord != "" {
		opts.Recorder = replay.NewRecorder(invaders.GameID, difficulty, cfg, rt)
	}

	result, runErr := tui.RunGame(game, rt, opts)

	if opts.Recorder != nil {
		if err := opts.Recorder.Save(flagRecord); err != nil {
			log.Error("could not save recording", "path", flagRecord, "error", err)
		} else {
			log.Info("recording saved", "path", flagRecord, "ticks", opts.Recorder.Len())
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	if s := result.State; s.HighScore > 0 {
		fmt.Printf("High score: %s\n", humanize.Comma(int64(s.HighScore)))
	}
	return nil
}
