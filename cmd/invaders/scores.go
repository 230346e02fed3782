package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores from the score log.

Without --difficulty all difficulties are listed together.

Examples:
  invaders scores
  invaders scores --difficulty hard --limit 20
  invaders scores --tui
  invaders scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the listed scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	// An unset --difficulty lists every difficulty
	difficulty := ""
	if cmd.Flags().Changed("difficulty") {
		difficulty = invaders.Difficulty()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(invaders.GameID, difficulty); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := terminalSize()
		_, err := tui.RunScoreboard(store, invaders.GameID, difficulty, width, height)
		return err
	}

	scores, err := store.TopScores(invaders.GameID, difficulty, flagScoresLimit)
	if err != nil {
		return err
	}

	heading := "High Scores - " + invaders.New().Title()
	if difficulty != "" {
		heading += " (" + difficulty + ")"
	}
	fmt.Println(heading)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'invaders play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %12s  %-5s  %-6s  %-12s  %s\n", "Rank", "Score", "Level", "Mode", "Player", "When")
	fmt.Printf("  %-4s  %12s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %12s  %-5d  %-6s  %-12s  %s\n",
			i+1,
			humanize.Comma(int64(entry.Score)),
			entry.Level,
			entry.Difficulty,
			player,
			humanize.Time(entry.CreatedAt),
		)
	}

	return printStats(store, difficulty)
}

// printStats prints the per-difficulty summary under the score table.
func printStats(store *storage.Store, difficulty string) error {
	stats, err := store.Stats(invaders.GameID)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(stats))
	for d := range stats {
		if difficulty == "" || d == difficulty {
			names = append(names, d)
		}
	}
	sort.Strings(names)

	fmt.Println()
	for _, d := range names {
		st := stats[d]
		fmt.Printf("%-6s  best %s over %s %s, average %s, top level %d\n",
			d,
			humanize.Comma(int64(st.HighScore)),
			humanize.Comma(int64(st.GamesCount)),
			humanize.PluralWord(st.GamesCount, "game", "games"),
			humanize.CommafWithDigits(st.AvgScore, 0),
			st.BestLevel,
		)
	}
	return nil
}
