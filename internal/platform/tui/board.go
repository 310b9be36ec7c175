package tui

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/lost-n-found/internal/core"
	"github.com/vovakirdan/lost-n-found/internal/game"
)

// Rows reserved around the board.
const (
	hudRows    = 2 // status line + spacer
	footerRows = 2 // spacer + banner
)

// Layout places a board on the screen.
type Layout struct {
	Left, Top int
	TooSmall  bool
}

// ComputeLayout centres a width x height board below the HUD.
func ComputeLayout(screenW, screenH, width, height int) Layout {
	boardW, boardH := core.BoardSize(width, height)
	availH := screenH - hudRows - footerRows

	return Layout{
		Left:     core.Max(0, (screenW-boardW)/2),
		Top:      hudRows + core.Max(0, (availH-boardH)/2),
		TooSmall: screenW < boardW || availH < boardH,
	}
}

// HitTest maps a pointer sample to a grid click for the given layout.
func (l Layout) HitTest(p core.PointerSample, width, height int) game.Click {
	if !p.Clicked || l.TooSmall {
		return game.Click{}
	}
	x, y, ok := core.SurfaceToGridCell(p.X, p.Y, l.Left, l.Top, width, height)
	if !ok {
		return game.Click{}
	}
	return game.Click{Pressed: true, X: x, Y: y}
}

// Glyphs is the set of runes a board is drawn with.
type Glyphs struct {
	Solution rune
	Trap     rune
	Empty    rune
	Hover    rune
	Arrows   [4]rune // indexed by game.Direction
}

// UnicodeGlyphs draws stars and arrows.
var UnicodeGlyphs = Glyphs{
	Solution: '★',
	Trap:     '✱',
	Empty:    '·',
	Hover:    '░',
	Arrows:   [4]rune{'←', '↑', '→', '↓'},
}

// ASCIIGlyphs stays one column wide in every terminal.
var ASCIIGlyphs = Glyphs{
	Solution: '@',
	Trap:     'x',
	Empty:    '.',
	Hover:    '#',
	Arrows:   [4]rune{'<', '^', '>', 'v'},
}

// SelectGlyphs resolves a display.glyphs setting. "auto" falls back to
// ASCII when the locale makes the unicode set double width.
func SelectGlyphs(mode string) Glyphs {
	switch mode {
	case "ascii":
		return ASCIIGlyphs
	case "unicode":
		return UnicodeGlyphs
	default:
		if glyphsFit(UnicodeGlyphs, runewidth.DefaultCondition) {
			return UnicodeGlyphs
		}
		return ASCIIGlyphs
	}
}

// glyphsFit reports whether every glyph takes exactly one column.
func glyphsFit(g Glyphs, cond *runewidth.Condition) bool {
	runes := append([]rune{g.Solution, g.Trap, g.Empty, g.Hover}, g.Arrows[:]...)
	for _, r := range runes {
		if cond.RuneWidth(r) != 1 {
			return false
		}
	}
	return true
}

// cellGlyph returns the rune and color for a cell's inner row.
func (g Glyphs) cellGlyph(c game.Cell, showSolution bool) (rune, core.Color, bool) {
	if !c.Revealed && !(showSolution && c.Content.Kind == game.KindSolution) {
		return ' ', core.ColorDefault, false
	}
	switch c.Content.Kind {
	case game.KindSolution:
		return g.Solution, core.ColorGreen, true
	case game.KindHint:
		return g.Arrows[c.Content.Dir], core.ColorCyan, true
	case game.KindTrap:
		return g.Trap, core.ColorRed, true
	default:
		return g.Empty, core.ColorGray, true
	}
}

// DrawBoard draws the grid lines and revealed cells of snap at l. hoverX
// and hoverY mark the cell under the pointer, or -1.
func DrawBoard(dst *core.Screen, snap game.Snapshot, l Layout, glyphs Glyphs, hoverX, hoverY int) {
	showSolution := snap.State == game.StateLost || snap.State == game.StateFinished

	for col := 0; col < snap.Width; col++ {
		dst.DrawText(l.Left+1+4*col, l.Top, "___", core.ColorGray)
	}

	for row := 0; row < snap.Height; row++ {
		y := l.Top + 1 + 2*row
		dst.SetColored(l.Left, y, '|', core.ColorGray)
		dst.SetColored(l.Left, y+1, '|', core.ColorGray)

		for col := 0; col < snap.Width; col++ {
			r := core.GridToSurface(col, row, l.Left, l.Top)
			dst.DrawText(r.X, r.Y, "   |", core.ColorGray)
			dst.DrawText(r.X, r.Y+1, "___|", core.ColorGray)

			cell, _ := snap.Cell(col, row)
			if g, color, ok := glyphs.cellGlyph(cell, showSolution); ok {
				dst.SetColored(r.X+1, r.Y, g, color)
				continue
			}
			if col == hoverX && row == hoverY && snap.State == game.StatePlaying {
				dst.FillRect(core.NewRect(r.X, r.Y, r.W, 1), glyphs.Hover, core.ColorGray)
			}
		}
	}
}

// DrawHUD draws the status line.
func DrawHUD(dst *core.Screen, snap game.Snapshot, bestLevel int) {
	timeColor := core.ColorBrightWhite
	if snap.TimeLeft <= 3*time.Second {
		timeColor = core.ColorRed
	}

	revealed := 0
	for _, c := range snap.Cells {
		if c.Revealed {
			revealed++
		}
	}

	left := fmt.Sprintf(" Lost-n-Found   Level %d   Round %d   Visible %d/%d", snap.Level, snap.Round, revealed, snap.Capacity)
	dst.DrawText(0, 0, left, core.ColorDefault)

	x := len([]rune(left)) + 3
	clock := fmt.Sprintf("Time %4.1fs", snap.TimeLeft.Seconds())
	dst.DrawText(x, 0, clock, timeColor)
	x += len(clock) + 3

	if snap.Confused {
		dst.DrawText(x, 0, "CONFUSED", core.ColorMagenta)
		x += len("CONFUSED") + 3
	}
	if bestLevel > 0 {
		dst.DrawText(x, 0, fmt.Sprintf("Best level %d", bestLevel), core.ColorGray)
	}
}

// Banner returns the message shown under the board, if any.
func Banner(snap game.Snapshot) (string, core.Color) {
	switch snap.State {
	case game.StateWon:
		return fmt.Sprintf("Found it with %.1fs to spare! Level %d is next.", snap.TimeLeft.Seconds(), snap.Level+1), core.ColorGreen
	case game.StateLost:
		return "Time's up! The star marks where it was.", core.ColorRed
	case game.StateFinished:
		return fmt.Sprintf("Run over: reached level %d after %d rounds won.", snap.Level, snap.RoundsWon), core.ColorYellow
	default:
		return "", core.ColorDefault
	}
}
