package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/loop"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/replay"
)

var flagReplayWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a recorded game",
	Long: `Run a recording made with 'invaders play --record'.

The recording carries its own game config and tick rate, so the
--config, --difficulty and --fps flags do not apply. Without --watch the
game runs as fast as possible and only the result is printed.

Examples:
  invaders replay game.replay
  invaders replay game.replay --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayWatch, "watch", false, "Play the recording back in real time")
}

// screenPresenter redraws each frame over the previous one.
type screenPresenter struct {
	out io.Writer
}

func (p screenPresenter) Present(screen *core.Screen, _ core.GameState) error {
	// Cursor home, then the frame
	_, err := fmt.Fprint(p.out, "\x1b[H"+tui.RenderScreen(screen))
	return err
}

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	if rec.GameID != invaders.GameID {
		return fmt.Errorf("replay: recording is for %q, not %q", rec.GameID, invaders.GameID)
	}

	log.Debug("replay loaded",
		"path", args[0],
		"ticks", len(rec.Ticks),
		"difficulty", rec.Difficulty,
		"recorded", humanize.Time(rec.CreatedAt),
	)

	game := invaders.NewWithConfig(rec.Config)
	game.Reset(rec.Runtime())
	src := replay.NewSource(rec, game)

	var events int
	runner := &loop.Runner{
		Game:   game,
		Source: src,
		OnStep: func(tick uint64, res core.StepResult) {
			for _, ev := range res.Events {
				events++
				log.Debug("game event", "event", ev.Type, "value", ev.Value, "tick", tick)
			}
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if flagReplayWatch {
		screen := core.NewScreen(rec.Cols, rec.Rows)
		runner.Screen = screen
		runner.Presenter = screenPresenter{out: os.Stdout}
		runner.Scheduler = loop.NewScheduler(loop.SystemClock(), rec.TickRate)

		// Render at the recorded terminal size so presses land where they did
		onStep := runner.OnStep
		runner.OnStep = func(tick uint64, res core.StepResult) {
			onStep(tick, res)
			if cols, rows := src.Size(); cols != screen.Width() || rows != screen.Height() {
				screen.Resize(cols, rows)
			}
		}

		// Clear screen, hide cursor; show it again when done
		fmt.Print("\x1b[2J\x1b[?25l")
		defer fmt.Print("\x1b[?25h\n")
	}

	state, err := runner.Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}

	fmt.Printf("Replayed %s ticks (%s at %d fps), %s events\n",
		humanize.Comma(int64(len(rec.Ticks))),
		rec.Duration().Round(time.Millisecond),
		rec.TickRate,
		humanize.Comma(int64(events)),
	)
	fmt.Printf("Score: %s  Level: %d  High score: %s  Ships left: %d\n",
		humanize.Comma(int64(state.Score)),
		state.Level,
		humanize.Comma(int64(state.HighScore)),
		state.Lives,
	)
	snap := game.Snapshot()
	fmt.Printf("State hash: %016x\n", snap.Hash())
	return nil
}
