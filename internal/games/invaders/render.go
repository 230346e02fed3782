package invaders

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DrawKind identifies one entry of a draw list.
type DrawKind int

const (
	DrawBackground DrawKind = iota
	DrawShip
	DrawBullet
	DrawAlien
	DrawText
	DrawButton
)

// Align controls how text is placed relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DrawItem is one thing to draw, in logical pixels.
// Text items use Rect.X/Rect.Y as the anchor.
type DrawItem struct {
	Kind  DrawKind
	Rect  core.RectF
	Text  string
	Align Align
	Color core.Color
}

// DrawList is the ordered list of draws for one frame.
type DrawList []DrawItem

// HUD layout in logical pixels.
const (
	hudMargin     = 20
	hudLineHeight = 36
	hudShipsX     = 10
	hudShipsY     = 10
	shipGlyph     = "▲"
)

// Sprite glyphs.
const (
	shipTopGlyph  = '▲'
	shipBodyGlyph = '█'
	bulletGlyph   = '┃'
	alienGlyph    = '▓'
	alienEyeGlyph = '▀'
)

// Minimum terminal size for a readable playfield.
const (
	minCols = 20
	minRows = 8
)

// DrawList builds the frame in draw order: background, ship, bullets, aliens,
// scoreboard, and the start button while no session is running.
func (g *Game) DrawList() DrawList {
	s := g.settings
	list := make(DrawList, 0, 8+len(g.bullets)+g.fleet.Len())

	list = append(list, DrawItem{Kind: DrawBackground, Rect: core.NewRectF(0, 0, s.ScreenW, s.ScreenH)})
	list = append(list, DrawItem{Kind: DrawShip, Rect: g.ship.Rect, Color: core.ColorShip})
	for _, b := range g.bullets {
		list = append(list, DrawItem{Kind: DrawBullet, Rect: b.Rect, Color: core.ColorBullet})
	}
	for _, a := range g.fleet.Aliens {
		list = append(list, DrawItem{Kind: DrawAlien, Rect: a.Rect, Color: core.ColorAlien})
	}

	sb := PrepScoreboard(g.stats)
	list = append(list,
		DrawItem{
			Kind:  DrawText,
			Rect:  core.NewRectF(s.ScreenW-hudMargin, hudMargin, 0, hudLineHeight),
			Text:  "SCORE " + sb.Score,
			Align: AlignRight,
			Color: core.ColorHUD,
		},
		DrawItem{
			Kind:  DrawText,
			Rect:  core.NewRectF(s.ScreenW/2, hudMargin, 0, hudLineHeight),
			Text:  "HIGH " + sb.HighScore,
			Align: AlignCenter,
			Color: core.ColorHUD,
		},
		DrawItem{
			Kind:  DrawText,
			Rect:  core.NewRectF(s.ScreenW-hudMargin, hudMargin+hudLineHeight+10, 0, hudLineHeight),
			Text:  "LEVEL " + sb.Level,
			Align: AlignRight,
			Color: core.ColorHUD,
		},
		DrawItem{
			Kind:  DrawText,
			Rect:  core.NewRectF(hudShipsX, hudShipsY, s.ShipW*float64(sb.Ships), s.ShipH),
			Text:  strings.Repeat(shipGlyph, sb.Ships),
			Color: core.ColorShip,
		},
	)

	if !g.stats.Active {
		list = append(list, DrawItem{
			Kind:  DrawButton,
			Rect:  g.button.Rect,
			Text:  g.button.Label,
			Color: core.ColorButton,
		})
	}
	return list
}

// Viewport maps logical pixels onto a grid of terminal cells.
type Viewport struct {
	Cols, Rows     int
	ScaleX, ScaleY float64 // Logical pixels per cell
}

// NewViewport fits a w x h logical playfield into cols x rows cells.
func NewViewport(cols, rows int, w, h float64) Viewport {
	cols, rows = core.Max(cols, 1), core.Max(rows, 1)
	return Viewport{
		Cols:   cols,
		Rows:   rows,
		ScaleX: w / float64(cols),
		ScaleY: h / float64(rows),
	}
}

// Cells returns the cell rectangle covered by a logical box.
func (v Viewport) Cells(r core.RectF) core.Rect {
	return r.Cells(v.ScaleX, v.ScaleY)
}

// Cell returns the cell containing a logical point.
func (v Viewport) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / v.ScaleX)), int(math.Floor(y / v.ScaleY))
}

// Logical returns the logical position of a cell's centre.
func (v Viewport) Logical(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * v.ScaleX, (float64(row) + 0.5) * v.ScaleY
}

// Rasterize draws a draw list onto a cell screen.
func Rasterize(dst *core.Screen, list DrawList, v Viewport) {
	for _, it := range list {
		switch it.Kind {
		case DrawBackground:
			dst.Clear()
		case DrawShip:
			drawShip(dst, v.Cells(it.Rect), it.Color)
		case DrawBullet:
			dst.DrawRectColored(v.Cells(it.Rect), bulletGlyph, it.Color)
		case DrawAlien:
			drawAlien(dst, v.Cells(it.Rect), it.Color)
		case DrawText:
			drawText(dst, v, it)
		case DrawButton:
			drawButton(dst, v.Cells(it.Rect), it.Text, it.Color)
		}
	}
}

func drawShip(dst *core.Screen, r core.Rect, c core.Color) {
	if r.H == 1 {
		dst.DrawRectColored(r, shipTopGlyph, c)
		return
	}
	cx, _ := r.Center()
	dst.SetColored(cx, r.Y, shipTopGlyph, c)
	dst.DrawRectColored(core.NewRect(r.X, r.Y+1, r.W, r.H-1), shipBodyGlyph, c)
}

func drawAlien(dst *core.Screen, r core.Rect, c core.Color) {
	dst.DrawRectColored(r, alienGlyph, c)
	if r.W < 4 {
		return
	}
	// Eyes on the top row
	dst.SetColored(r.X+1, r.Y, alienEyeGlyph, c)
	dst.SetColored(r.Right()-2, r.Y, alienEyeGlyph, c)
}

func drawText(dst *core.Screen, v Viewport, it DrawItem) {
	if it.Text == "" {
		return
	}
	n := utf8.RuneCountInString(it.Text)
	col, row := v.Cell(it.Rect.X, it.Rect.Y)

	switch it.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n - 1
	}
	col = core.Clamp(col, 0, core.Max(dst.Width()-n, 0))
	dst.DrawTextColored(col, row, it.Text, it.Color)
}

func drawButton(dst *core.Screen, r core.Rect, label string, c core.Color) {
	n := utf8.RuneCountInString(label)
	cx, cy := r.Center()
	if r.H >= 3 && r.W >= n+2 {
		dst.DrawRectColored(r, ' ', c)
		dst.DrawBoxColored(r, c)
		dst.DrawTextColored(cx-n/2, cy, label, core.ColorHUD)
	} else {
		text := "[ " + label + " ]"
		dst.DrawRectColored(r, ' ', c)
		dst.DrawTextColored(cx-utf8.RuneCountInString(text)/2, r.Y, text, c)
	}
	dst.DrawTextColored(cx-utf8.RuneCountInString(startHint)/2, r.Bottom(), startHint, core.ColorMuted)
}

const startHint = "click or press enter"

// Render draws the current state onto dst, scaling the playfield to fit.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < minCols || dst.Height() < minRows {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}
	g.view = NewViewport(dst.Width(), dst.Height(), g.settings.ScreenW, g.settings.ScreenH)
	Rasterize(dst, g.DrawList(), g.view)
}
