// invaders is a terminal fleet shooter: a ship at the bottom of the screen
// fires at a fleet that sweeps sideways and drops at every edge.
//
// Usage:
//
//	invaders                 - Play (same as 'invaders play')
//	invaders play            - Play a game
//	invaders menu            - Title menu with difficulty and high scores
//	invaders scores          - Show high scores
//	invaders serve           - Start SSH server for remote play
//	invaders replay <file>   - Run a recorded game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Write logs to a file instead of stderr
//	--keep-high-score     - Start with the best score from the score log
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// Global flags
	flagFPS           int
	flagDBPath        string
	flagConfig        string
	flagDifficulty    string
	flagLogLevel      string
	flagLogFile       string
	flagKeepHighScore bool
)

// logFile is closed after the command finishes.
var logFile io.Closer

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Alien Invasion - shoot down the fleet in your terminal",
	Long: `Alien Invasion is a terminal fleet shooter.

Move the ship along the bottom of the screen and shoot down the fleet
before it reaches you. Clearing a fleet brings a faster one worth more points.

Available commands:
  play     - Play a game (default)
  menu     - Title menu with difficulty picker and high scores
  scores   - View high scores
  serve    - Start SSH server for remote play
  replay   - Run a recorded game

Examples:
  invaders
  invaders play --difficulty hard
  invaders play --record game.replay
  invaders replay game.replay --watch
  invaders serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagKeepHighScore, "keep-high-score", false, "Start with the best score from the score log")

	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record the game's input to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup validates the global flags and configures logging and the game package.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	log.SetDefault(log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	}))

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// runtimeConfig builds the runtime config for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openStore opens the score log. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// startingHighScore returns the logged best score when --keep-high-score is set.
func startingHighScore(store *storage.Store, difficulty string) int {
	if !flagKeepHighScore || store == nil {
		return 0
	}
	hs, err := store.HighScore(invaders.GameID, difficulty)
	if err != nil {
		log.Warn("could not read high score", "error", err)
		return 0
	}
	return hs
}
