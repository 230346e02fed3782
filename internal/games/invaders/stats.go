package invaders

// GameStats tracks the numbers shown on the scoreboard.
type GameStats struct {
	ShipsLeft int
	Score     int
	Level     int
	HighScore int // Survives ResetStats
	Active    bool

	shipLimit int
}

// NewGameStats creates inactive stats for a fresh process.
func NewGameStats(shipLimit int) *GameStats {
	st := &GameStats{shipLimit: shipLimit}
	st.ResetStats()
	return st
}

// ResetStats resets the per-session values. HighScore and Active are untouched.
func (st *GameStats) ResetStats() {
	st.ShipsLeft = st.shipLimit
	st.Score = 0
	st.Level = 1
}

// CheckHighScore raises the high score to the current score if it is higher.
// Reports whether it changed.
func (st *GameStats) CheckHighScore() bool {
	if st.Score > st.HighScore {
		st.HighScore = st.Score
		return true
	}
	return false
}

// SeedHighScore raises the high score to at least score.
func (st *GameStats) SeedHighScore(score int) {
	if score > st.HighScore {
		st.HighScore = score
	}
}
