package registry

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type stubGame struct {
	seeded     int
	pointer    bool
	cols, rows int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) SeedHighScore(score int) { g.seeded = score }
func (g *stubGame) PointerVisible() bool { return g.pointer }
func (g *stubGame) Resize(cols, rows int) { g.cols, g.rows = cols, rows }

type plainGame struct{ stubGame }

// Hide the optional methods behind a narrower type.
type bareGame struct{ g Game }

func (b bareGame) ID() string { return b.g.ID() }
func (b bareGame) Title() string { return b.g.Title() }
func (b bareGame) Reset(cfg core.RuntimeConfig) { b.g.Reset(cfg) }
func (b bareGame) Step(in core.InputFrame) core.StepResult { return b.g.Step(in) }
func (b bareGame) Render(dst *core.Screen) { b.g.Render(dst) }
func (b bareGame) State() core.GameState { return b.g.State() }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-test", func() Game { return &stubGame{} })

	if !Exists("stub-test") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("stub-test")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-test" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for unknown ids")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Game { return &stubGame{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", func() Game { return &stubGame{} })
}

func TestOptionalCapabilities(t *testing.T) {
	g := &plainGame{}
	g.pointer = true

	if !SeedHighScore(g, 1200) || g.seeded != 1200 {
		t.Errorf("SeedHighScore should reach the game, seeded=%d", g.seeded)
	}
	if !PointerVisible(g) {
		t.Error("PointerVisible should ask the game")
	}

	Resize(g, 120, 40)
	if g.cols != 120 || g.rows != 40 {
		t.Errorf("Resize should reach the game, got %dx%d", g.cols, g.rows)
	}

	bare := bareGame{g: &stubGame{pointer: true}}
	Resize(bare, 10, 10)
	if SeedHighScore(bare, 10) {
		t.Error("games without SeedHighScore should report false")
	}
	if PointerVisible(bare) {
		t.Error("games without PointerVisible default to hidden")
	}
}
