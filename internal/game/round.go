package game

import (
	"time"

	"github.com/vovakirdan/lost-n-found/internal/core"
)

// Default effect lengths.
const (
	DefaultConfusionDuration = 3 * time.Second
	DefaultMessageDuration   = 3 * time.Second
)

// Result is how a round ended.
type Result int

const (
	ResultWin Result = iota
	ResultLose
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Outcome is a finished round: the result, the timer for the end-of-round
// message, and the round clock frozen at the moment it ended.
type Outcome struct {
	Result  Result
	Message core.Timer
	Frozen  time.Duration
}

// Timing holds the fixed effect lengths, independent of difficulty.
type Timing struct {
	RevealLifetime time.Duration `yaml:"reveal_lifetime"`
	Confusion      time.Duration `yaml:"confusion"`
	Message        time.Duration `yaml:"message"`
	FlickerPeriod  time.Duration `yaml:"flicker_period"`
}

// DefaultTiming returns the standard effect lengths.
func DefaultTiming() Timing {
	return Timing{
		RevealLifetime: DefaultRevealLifetime,
		Confusion:      DefaultConfusionDuration,
		Message:        DefaultMessageDuration,
		FlickerPeriod:  DefaultFlickerPeriod,
	}
}

// Click is a pointer press already mapped to grid indices.
type Click struct {
	Pressed bool
	X, Y    int
}

// StepResult is returned by Round.Step. Done becomes true once the
// end-of-round message has been shown; Result is then final.
type StepResult struct {
	Done   bool
	Result Result
}

// Round is one level's play: a board, a countdown and, once decided, an
// outcome.
type Round struct {
	level     int
	clock     core.Clock
	timing    Timing
	grid      *Grid
	timer     core.Timer
	outcome   *Outcome
	confusion *core.Timer
}

// NewRound generates the board for level and starts its countdown.
func NewRound(level int, curve Curve, timing Timing, rng Rand, clock core.Clock) *Round {
	level = normalizeLevel(level)
	w, h := curve.GridSize(level)
	return &Round{
		level:  level,
		clock:  clock,
		timing: timing,
		grid:   NewGrid(w, h, curve.Capacity(level), rng, clock, timing.RevealLifetime),
		timer:  core.NewTimer(clock, curve.Duration(level)),
	}
}

// Level returns the round's level number.
func (r *Round) Level() int {
	return r.level
}

// Grid returns the round's board.
func (r *Round) Grid() *Grid {
	return r.grid
}

// Outcome returns the round's outcome, or nil while playing.
func (r *Round) Outcome() *Outcome {
	return r.outcome
}

// Playing reports whether the round is still undecided.
func (r *Round) Playing() bool {
	return r.outcome == nil
}

// Confused reports whether a trap effect is running.
func (r *Round) Confused() bool {
	return r.confusion != nil && !r.confusion.Finished()
}

// TimeLeft returns the time shown on the round clock. Once the round is
// decided it stays at the value it had then.
func (r *Round) TimeLeft() time.Duration {
	if r.outcome != nil {
		return r.outcome.Frozen
	}
	return r.timer.TimeLeft()
}

// Step advances the round by one tick with at most one click.
func (r *Round) Step(click Click) StepResult {
	if r.outcome != nil {
		if r.outcome.Message.Finished() {
			return StepResult{Done: true, Result: r.outcome.Result}
		}
		return StepResult{Result: r.outcome.Result}
	}

	r.grid.Tick()

	if r.timer.Finished() {
		r.finish(ResultLose, 0)
	} else if click.Pressed {
		r.handleClick(click.X, click.Y)
	}

	if r.confusion != nil && r.confusion.Finished() {
		r.confusion = nil
	}

	if r.outcome != nil {
		return StepResult{Result: r.outcome.Result}
	}
	return StepResult{}
}

func (r *Round) handleClick(x, y int) {
	content, ok := r.grid.Reveal(x, y)
	if !ok {
		return
	}
	switch content.Kind {
	case KindSolution:
		// Reveal queued the solution too. The round is decided here and a
		// decided round never ticks its grid again, so it is never evicted.
		r.finish(ResultWin, r.timer.TimeLeft())
	case KindTrap:
		if content.Trap == TrapConfusion {
			t := core.NewTimer(r.clock, r.timing.Confusion)
			r.confusion = &t
		}
	}
}

func (r *Round) finish(result Result, frozen time.Duration) {
	r.outcome = &Outcome{
		Result:  result,
		Message: core.NewTimer(r.clock, r.timing.Message),
		Frozen:  frozen,
	}
}

// scrambled reports whether hint presentation is under the confusion
// effect and how far into it the round is. Losing always shows the truth.
func (r *Round) scrambled() (bool, time.Duration) {
	if r.outcome != nil && r.outcome.Result == ResultLose {
		return false, 0
	}
	if !r.Confused() {
		return false, 0
	}
	return true, r.confusion.Elapsed()
}

// Flicker reports whether hints are currently drawn inverted.
func (r *Round) Flicker() bool {
	return r.DisplayedDirection(DirLeft) != DirLeft
}

// DisplayedDirection returns how a hint pointing d is drawn right now.
func (r *Round) DisplayedDirection(d Direction) Direction {
	confused, phase := r.scrambled()
	return DisplayedDirection(d, confused, phase, r.timing.FlickerPeriod)
}
