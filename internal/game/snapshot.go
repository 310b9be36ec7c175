package game

import "time"

// StateType names the phase a run is in for the renderer.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateWon      StateType = "round_won"
	StateLost     StateType = "round_lost"
	StateFinished StateType = "finished"
)

// Snapshot is a read-only view of a run for one frame. Hint directions in
// Cells are already substituted while the flicker is on.
type Snapshot struct {
	Level     int
	Round     int
	Width     int
	Height    int
	Capacity  int
	Cells     []Cell
	TimeLeft  time.Duration
	Duration  time.Duration
	State     StateType
	Outcome   *Result
	Confused  bool
	Flicker   bool
	RoundsWon int
}

// Cell returns the displayed cell at (x, y); ok is false outside the board.
func (s Snapshot) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Cell{}, false
	}
	return s.Cells[s.Width*y+x], true
}

// snapshotRound builds the per-frame view of r.
func snapshotRound(r *Round) Snapshot {
	g := r.Grid()
	cells := g.Cells()
	confused, phase := r.scrambled()
	for i := range cells {
		if cells[i].Content.Kind == KindHint {
			cells[i].Content.Dir = DisplayedDirection(cells[i].Content.Dir, confused, phase, r.timing.FlickerPeriod)
		}
	}

	snap := Snapshot{
		Level:    r.Level(),
		Width:    g.Width(),
		Height:   g.Height(),
		Capacity: g.Capacity(),
		Cells:    cells,
		TimeLeft: r.TimeLeft(),
		Duration: r.timer.Duration(),
		State:    StatePlaying,
		Confused: r.Confused(),
		Flicker:  confused && FlickerOn(phase, r.timing.FlickerPeriod),
	}
	if out := r.Outcome(); out != nil {
		res := out.Result
		snap.Outcome = &res
		snap.State = StateWon
		if res == ResultLose {
			snap.State = StateLost
		}
	}
	return snap
}
