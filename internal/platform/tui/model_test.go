package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/replay"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// scriptedGame ends its session when it sees a fire key and reports every frame it got.
type scriptedGame struct {
	state      core.GameState
	frames     []core.InputFrame
	cols, rows int
	seeded     int
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.state = core.GameState{GameOver: true, Level: 1}
	g.cols, g.rows = cfg.ScreenW, cfg.ScreenH
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	var events []core.GameEvent
	switch {
	case in.Has(core.ActionStart) && g.state.GameOver:
		g.state = core.GameState{Level: 1, Lives: 3}
		events = append(events, core.GameEvent{Type: core.GameEventStarted, Value: 3})
	case in.Has(core.ActionFire) && !g.state.GameOver:
		g.state.Score += 50
		g.state.Level = 2
		g.state.GameOver = true
		events = append(events, core.GameEvent{Type: core.GameEventGameOver, Value: g.state.Score})
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

func (g *scriptedGame) PointerVisible() bool { return g.state.GameOver }

func (g *scriptedGame) Resize(cols, rows int) { g.cols, g.rows = cols, rows }

func (g *scriptedGame) SeedHighScore(score int) { g.seeded = score }

func newScriptedModel(t *testing.T, opts GameOptions) (*scriptedGame, GameModel) {
	t.Helper()
	g := &scriptedGame{}
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}, opts)
	m.Init()
	return g, m
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, TickMsg(time.Now()))
	return m
}

func TestGameModelInitSeedsHighScore(t *testing.T) {
	g, _ := newScriptedModel(t, GameOptions{HighScore: 700})
	if g.seeded != 700 {
		t.Errorf("seeded = %d, expected 700", g.seeded)
	}
	if g.cols != 40 || g.rows != 12 {
		t.Errorf("Reset saw %dx%d", g.cols, g.rows)
	}
}

func TestGameModelKeysReachStep(t *testing.T) {
	g, m := newScriptedModel(t, GameOptions{HoldTicks: 3})

	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	if m.State().GameOver {
		t.Fatal("start key should start the session")
	}

	m, _ = send(t, m, keyMsg("left"))
	m = tick(t, m)
	m = tick(t, m)
	m = tick(t, m)

	// frames: start, left down, (hold), left up
	if len(g.frames) != 4 {
		t.Fatalf("stepped %d times, expected 4", len(g.frames))
	}
	if !g.frames[1].Has(core.ActionLeft) {
		t.Error("second frame should carry the left press")
	}
	if !g.frames[2].Empty() {
		t.Errorf("held key should not repeat events: %+v", g.frames[2].Events)
	}
	last := g.frames[3].Events
	if len(last) != 1 || last[0].Kind != core.EventKeyUp {
		t.Errorf("expected synthesized key-up, got %+v", last)
	}
}

func TestGameModelMousePress(t *testing.T) {
	g, m := newScriptedModel(t, GameOptions{})

	m, _ = send(t, m, tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: 9, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	tick(t, m)

	evs := g.frames[0].Events
	if len(evs) != 1 || evs[0].Kind != core.EventPointerPress || evs[0].X != 7 || evs[0].Y != 3 {
		t.Errorf("expected one pointer press at (7, 3), got %+v", evs)
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g, m := newScriptedModel(t, GameOptions{})
	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.cols != 100 || g.rows != 30 {
		t.Errorf("game saw %dx%d after resize", g.cols, g.rows)
	}
	if g.state.GameOver {
		t.Error("resize must not reset the session")
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should render the game")
	}
}

func TestGameModelBackOnlyBetweenSessions(t *testing.T) {
	_, m := newScriptedModel(t, GameOptions{})
	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)

	m, _ = send(t, m, keyMsg("b"))
	if m.BackToMenu() {
		t.Fatal("back must be ignored mid-session")
	}

	m, _ = send(t, m, keyMsg(" "))
	m = tick(t, m)
	m, cmd := send(t, m, keyMsg("b"))
	if !m.BackToMenu() || cmd == nil {
		t.Error("back should leave once the session is over")
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, m := newScriptedModel(t, GameOptions{Store: store, Difficulty: "hard", Player: "alice"})
	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	m, _ = send(t, m, keyMsg(" "))
	m = tick(t, m)
	// Further ticks while over do not save again
	m = tick(t, m)
	tick(t, m)

	scores, err := store.AllScores("scripted", "")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	s := scores[0]
	if s.Score != 50 || s.Level != 2 || s.Difficulty != "hard" || s.Player != "alice" {
		t.Errorf("saved entry = %+v", s)
	}
}

func TestGameModelQuitIsRecorded(t *testing.T) {
	rt := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}
	rec := replay.NewRecorder("scripted", "normal", config.DefaultInvadersConfig(), rt)

	_, m := newScriptedModel(t, GameOptions{Recorder: rec})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	m = tick(t, m)
	m, cmd := send(t, m, keyMsg("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}

	got := rec.Recording()
	if len(got.Ticks) != 2 {
		t.Fatalf("recorded %d ticks, expected 2", len(got.Ticks))
	}
	if got.Ticks[0].Cols != 50 || got.Ticks[0].Rows != 20 {
		t.Errorf("resize not attached to the first tick: %+v", got.Ticks[0])
	}
	quit := got.Ticks[1].Events
	if len(quit) != 1 || quit[0].Kind != core.EventQuit {
		t.Errorf("last tick should hold the quit, got %+v", quit)
	}
	if m.View() != "" {
		t.Error("quitting model renders nothing")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorAlien)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel("ALIEN INVASION", "hard", 1234, 80, 24)
	if m.Difficulty() != "hard" {
		t.Fatalf("Difficulty() = %q", m.Difficulty())
	}
	if !strings.Contains(m.View(), "1,234") {
		t.Error("menu should show the high score")
	}

	step := func(key string) {
		next, _ := m.Update(keyMsg(key))
		m = next.(MenuModel)
	}
	step("right")
	if m.Difficulty() != "easy" {
		t.Errorf("difficulty should wrap to easy, got %q", m.Difficulty())
	}
	step("down")
	step("enter")
	if m.Choice() != MenuScores {
		t.Errorf("Choice() = %v, expected scores", m.Choice())
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	for _, e := range []storage.ScoreEntry{
		{GameID: "invaders", Difficulty: "easy", Score: 1500},
		{GameID: "invaders", Difficulty: "hard", Score: 90},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "invaders", "", 100, 30)
	if len(m.scores) != 2 {
		t.Fatalf("all tab shows %d scores, expected 2", len(m.scores))
	}
	if !strings.Contains(m.View(), "1,500") {
		t.Error("scores should use thousands separators")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.tab] != "easy" || len(m.scores) != 1 {
		t.Errorf("tab %q shows %d scores", m.tabs[m.tab], len(m.scores))
	}

	next, _ = m.Update(keyMsg("b"))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("b should go back")
	}
}
