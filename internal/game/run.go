package game

import (
	"time"

	"github.com/vovakirdan/lost-n-found/internal/core"
)

// RunOptions configures a run of consecutive rounds.
type RunOptions struct {
	StartLevel int
	Curve      Curve
	Timing     Timing
	Rand       Rand
	Clock      core.Clock
}

// Summary describes a finished run.
type Summary struct {
	StartLevel   int
	LevelReached int
	RoundsWon    int
	Duration     time.Duration
}

// Run plays rounds back to back: a win moves on to the next level, a loss
// ends the run.
type Run struct {
	opts      RunOptions
	round     *Round
	rounds    int
	roundsWon int
	started   time.Time
	finished  time.Time
	over      bool
}

// NewRun starts a run at opts.StartLevel (level 1 when unset).
func NewRun(opts RunOptions) *Run {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	opts.StartLevel = normalizeLevel(opts.StartLevel)

	r := &Run{
		opts:    opts,
		started: opts.Clock.Now(),
	}
	r.startRound(opts.StartLevel)
	return r
}

func (r *Run) startRound(level int) {
	r.round = NewRound(level, r.opts.Curve, r.opts.Timing, r.opts.Rand, r.opts.Clock)
	r.rounds++
}

// Round returns the round in progress (or the last one once over).
func (r *Run) Round() *Round {
	return r.round
}

// Level returns the current level.
func (r *Run) Level() int {
	return r.round.Level()
}

// RoundNumber returns how many rounds this run has started.
func (r *Run) RoundNumber() int {
	return r.rounds
}

// Over reports whether the run has ended.
func (r *Run) Over() bool {
	return r.over
}

// Step advances the current round by one tick. It returns true on the tick
// a new round begins, which is the host's cue to recompute layout.
func (r *Run) Step(click Click) (newRound bool) {
	if r.over {
		return false
	}

	res := r.round.Step(click)
	if !res.Done {
		return false
	}

	if res.Result == ResultLose {
		r.over = true
		r.finished = r.opts.Clock.Now()
		return false
	}

	r.roundsWon++
	r.startRound(r.round.Level() + 1)
	return true
}

// Summary returns the run's totals. Duration keeps growing until the run
// is over.
func (r *Run) Summary() Summary {
	end := r.finished
	if !r.over {
		end = r.opts.Clock.Now()
	}
	return Summary{
		StartLevel:   r.opts.StartLevel,
		LevelReached: r.round.Level(),
		RoundsWon:    r.roundsWon,
		Duration:     end.Sub(r.started),
	}
}

// Snapshot returns the frame view of the run.
func (r *Run) Snapshot() Snapshot {
	snap := snapshotRound(r.round)
	snap.Round = r.rounds
	snap.RoundsWon = r.roundsWon
	if r.over {
		snap.State = StateFinished
	}
	return snap
}
