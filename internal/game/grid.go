package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/lost-n-found/internal/core"
)

// Rand is the uniform integer source boards are drawn from.
// *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Content weights out of ten equally likely slots.
const (
	contentSlots = 10
	trapSlots    = 1
	emptySlots   = 2 // remaining 7 slots are hints
)

// Grid is one round's board. Its shape never changes; only the revealed
// flags do.
type Grid struct {
	width     int
	height    int
	cells     []Cell
	solutionX int
	solutionY int
	window    *RevealWindow
}

// NewGrid generates a width x height board with one hidden solution.
// Revealed cells fade after lifetime, and no more than capacity stay
// visible at once. Panics on a non-positive size.
func NewGrid(width, height, capacity int, rng Rand, clock core.Clock, lifetime time.Duration) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("game: invalid grid size %dx%d", width, height))
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		window: NewRevealWindow(capacity, clock, lifetime),
	}
	g.solutionX = rng.Intn(width)
	g.solutionY = rng.Intn(height)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.cells[g.index(col, row)].Content = g.generateContent(col, row, rng)
		}
	}
	return g
}

func (g *Grid) generateContent(col, row int, rng Rand) Content {
	if col == g.solutionX && row == g.solutionY {
		return Solution()
	}

	slot := rng.Intn(contentSlots)
	switch {
	case slot < trapSlots:
		return Trap(TrapConfusion)
	case slot < trapSlots+emptySlots:
		return Empty()
	default:
		return Hint(HintDirection(col-g.solutionX, row-g.solutionY))
	}
}

// HintDirection returns the arrow shown at displacement (dx, dy) from the
// solution. The longer axis wins, ties go horizontal, and the arrow points
// back toward the solution. Panics on a zero displacement.
func HintDirection(dx, dy int) Direction {
	if dx == 0 && dy == 0 {
		panic("game: hint direction for zero displacement")
	}
	if core.Abs(dx) >= core.Abs(dy) {
		if dx > 0 {
			return DirLeft
		}
		return DirRight
	}
	if dy > 0 {
		return DirUp
	}
	return DirDown
}

func (g *Grid) index(x, y int) int {
	return g.width*y + x
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Capacity returns how many cells may stay revealed at once.
func (g *Grid) Capacity() int {
	return g.window.Capacity()
}

// Solution returns the position of the solution cell.
func (g *Grid) Solution() (x, y int) {
	return g.solutionX, g.solutionY
}

// Cell returns the cell at (x, y); ok is false outside the board.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.index(x, y)], true
}

// Cells returns a copy of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Reveal shows the cell at (x, y) and returns its content. Every
// successful reveal, repeated ones included, starts a fresh fade timer.
func (g *Grid) Reveal(x, y int) (Content, bool) {
	if !g.inBounds(x, y) {
		return Content{}, false
	}
	cell := &g.cells[g.index(x, y)]
	cell.Revealed = true
	g.window.Register(x, y)
	return cell.Content, true
}

// Tick runs one step of the reveal window, hiding at most one cell.
func (g *Grid) Tick() {
	rec, ok := g.window.Expire()
	if !ok {
		return
	}
	g.cells[g.index(rec.X, rec.Y)].Revealed = false
}

// RevealedCount returns the number of currently visible cells.
func (g *Grid) RevealedCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Revealed {
			n++
		}
	}
	return n
}

// Pending returns the number of reveals the window is tracking.
func (g *Grid) Pending() int {
	return g.window.Len()
}
