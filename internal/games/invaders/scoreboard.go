package invaders

import (
	"github.com/dustin/go-humanize"
)

// Scoreboard holds the prepared HUD strings.
type Scoreboard struct {
	Score     string
	HighScore string
	Level     string
	Ships     int
}

// PrepScoreboard formats the stats for display.
func PrepScoreboard(st *GameStats) Scoreboard {
	return Scoreboard{
		Score:     FormatScore(st.Score),
		HighScore: FormatScore(st.HighScore),
		Level:     humanize.Comma(int64(st.Level)),
		Ships:     st.ShipsLeft,
	}
}

// FormatScore rounds a score to the nearest ten and adds thousands separators.
func FormatScore(score int) string {
	return humanize.Comma(int64(roundTen(score)))
}

// roundTen rounds to the nearest multiple of ten, ties to even.
func roundTen(n int) int {
	q, r := n/10, n%10
	if r > 5 || (r == 5 && q%2 != 0) {
		q++
	}
	return q * 10
}
