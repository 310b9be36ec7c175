// Package game implements Lost-n-Found: a real-time hot/cold search on a
// grid. Boards are generated per level, revealed cells fade after a while,
// and each round is a small state machine driven one tick at a time.
package game

// Direction is a hint arrow pointing toward the solution.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// TrapKind identifies the effect a trap cell triggers.
type TrapKind int

const (
	TrapConfusion TrapKind = iota
)

// ContentKind distinguishes what a cell holds.
type ContentKind int

const (
	KindEmpty ContentKind = iota
	KindHint
	KindTrap
	KindSolution
)

// String returns a human-readable name for the kind.
func (k ContentKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindHint:
		return "Hint"
	case KindTrap:
		return "Trap"
	case KindSolution:
		return "Solution"
	default:
		return "Unknown"
	}
}

// Content is what a cell shows once revealed. Dir is meaningful only for
// hints and Trap only for traps.
type Content struct {
	Kind ContentKind
	Dir  Direction
	Trap TrapKind
}

// Solution returns the content of the hidden target cell.
func Solution() Content { return Content{Kind: KindSolution} }

// Hint returns a hint pointing in direction d.
func Hint(d Direction) Content { return Content{Kind: KindHint, Dir: d} }

// Trap returns a trap of the given kind.
func Trap(k TrapKind) Content { return Content{Kind: KindTrap, Trap: k} }

// Empty returns a blank cell.
func Empty() Content { return Content{Kind: KindEmpty} }

// Cell is a single board position.
type Cell struct {
	Content  Content
	Revealed bool
}
