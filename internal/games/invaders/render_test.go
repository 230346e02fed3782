package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0"},
		{50, "50"},
		{75, "80"},
		{125, "120"},
		{1234, "1,230"},
		{1235, "1,240"},
		{1225, "1,220"},
		{1234567, "1,234,570"},
	}

	for _, tc := range tests {
		if got := FormatScore(tc.score); got != tc.want {
			t.Errorf("FormatScore(%d) = %q, expected %q", tc.score, got, tc.want)
		}
	}
}

func TestDrawListOrder(t *testing.T) {
	g := newTestGame(t, nil)
	g.fireBullet()

	list := g.DrawList()
	if list[0].Kind != DrawBackground || list[1].Kind != DrawShip {
		t.Fatalf("list should start with background and ship, got %v, %v", list[0].Kind, list[1].Kind)
	}
	if list[2].Kind != DrawBullet {
		t.Errorf("bullets come after the ship, got %v", list[2].Kind)
	}
	aliens := 0
	for _, it := range list {
		if it.Kind == DrawAlien {
			aliens++
		}
	}
	if aliens != g.fleet.Len() {
		t.Errorf("draw list has %d aliens, fleet has %d", aliens, g.fleet.Len())
	}
	if last := list[len(list)-1]; last.Kind != DrawButton || last.Text != "Play" {
		t.Errorf("inactive frame should end with the start button, got %+v", last)
	}

	startGame(t, g)
	for _, it := range g.DrawList() {
		if it.Kind == DrawButton {
			t.Fatal("no start button while active")
		}
	}
}

func TestRenderFitsTerminal(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"SCORE 0", "HIGH 0", "LEVEL 1", "Play", "▲▲▲", string(alienGlyph)} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q:\n%s", want, out)
		}
	}
	// Ship body on the bottom row
	if !strings.ContainsRune(screen.Row(23), shipBodyGlyph) {
		t.Errorf("ship should sit on the bottom row: %q", screen.Row(23))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(18, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("tiny terminals should show a notice")
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(80, 24, 1200, 800)
	if v.ScaleX != 15 {
		t.Errorf("ScaleX = %v, expected 15", v.ScaleX)
	}

	for _, c := range [][2]int{{0, 0}, {40, 12}, {79, 23}} {
		x, y := v.Logical(c[0], c[1])
		col, row := v.Cell(x, y)
		if col != c[0] || row != c[1] {
			t.Errorf("cell %v maps back to (%d, %d)", c, col, row)
		}
	}

	r := v.Cells(core.NewRectF(0, 752, 60, 48))
	if r.X != 0 || r.W != 4 || r.Bottom() != 24 {
		t.Errorf("ship cells = %+v", r)
	}
}
