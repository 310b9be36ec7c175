package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/lost-n-found/internal/core"
)

func newTestRound(t *testing.T, level int, seed int64) (*Round, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Unix(1000, 0))
	r := NewRound(level, DefaultCurve(), DefaultTiming(), rand.New(rand.NewSource(seed)), clock)
	return r, clock
}

// findKind returns the first cell holding kind, scanning row-major.
func findKind(g *Grid, kind ContentKind) (int, int, bool) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c, _ := g.Cell(x, y); c.Content.Kind == kind {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func clickAt(x, y int) Click {
	return Click{Pressed: true, X: x, Y: y}
}

func TestRoundStartsPlaying(t *testing.T) {
	r, _ := newTestRound(t, 1, 1)

	if !r.Playing() || r.Outcome() != nil {
		t.Fatal("new round should be playing")
	}
	if r.Grid().Width() != 15 || r.Grid().Height() != 10 {
		t.Errorf("level 1 grid = %dx%d, want 15x10", r.Grid().Width(), r.Grid().Height())
	}
	if r.Grid().Capacity() != 6 {
		t.Errorf("level 1 capacity = %d, want 6", r.Grid().Capacity())
	}
	if r.TimeLeft() != 15*time.Second {
		t.Errorf("TimeLeft() = %v, want 15s", r.TimeLeft())
	}
}

func TestRoundWinOnSolution(t *testing.T) {
	r, clock := newTestRound(t, 1, 2)
	sx, sy := r.Grid().Solution()

	clock.Advance(4 * time.Second)
	res := r.Step(clickAt(sx, sy))
	if res.Done {
		t.Fatal("round should show its message before finishing")
	}

	out := r.Outcome()
	if out == nil || out.Result != ResultWin {
		t.Fatalf("Outcome() = %+v, want win", out)
	}
	if r.TimeLeft() != 11*time.Second {
		t.Errorf("frozen TimeLeft() = %v, want 11s", r.TimeLeft())
	}

	// Clock keeps running but the displayed time does not.
	clock.Advance(2 * time.Second)
	if r.TimeLeft() != 11*time.Second {
		t.Errorf("TimeLeft() moved to %v after win", r.TimeLeft())
	}
	if res := r.Step(Click{}); res.Done {
		t.Error("round finished before message timer")
	}

	clock.Advance(DefaultMessageDuration)
	res = r.Step(Click{})
	if !res.Done || res.Result != ResultWin {
		t.Errorf("Step() = %+v, want done win", res)
	}
}

func TestRoundLoseOnTimeout(t *testing.T) {
	r, clock := newTestRound(t, 1, 3)

	clock.Advance(15 * time.Second)
	sx, sy := r.Grid().Solution()
	// The timer is checked before the click, so a late click cannot win.
	r.Step(clickAt(sx, sy))

	out := r.Outcome()
	if out == nil || out.Result != ResultLose {
		t.Fatalf("Outcome() = %+v, want lose", out)
	}
	if r.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %v, want 0", r.TimeLeft())
	}
	if c, _ := r.Grid().Cell(sx, sy); c.Revealed {
		t.Error("late click should not reveal")
	}

	clock.Advance(DefaultMessageDuration)
	if res := r.Step(Click{}); !res.Done || res.Result != ResultLose {
		t.Errorf("Step() = %+v, want done lose", res)
	}
}

func TestRoundWinAndLoseAreExclusive(t *testing.T) {
	r, clock := newTestRound(t, 1, 4)
	sx, sy := r.Grid().Solution()
	r.Step(clickAt(sx, sy))

	clock.Advance(time.Minute)
	r.Step(Click{})
	if out := r.Outcome(); out.Result != ResultWin {
		t.Errorf("won round became %v after timeout", out.Result)
	}
}

func TestRoundOverIgnoresClicks(t *testing.T) {
	r, _ := newTestRound(t, 1, 5)
	sx, sy := r.Grid().Solution()
	r.Step(clickAt(sx, sy))

	before := r.Grid().Cells()
	pending := r.Grid().Pending()
	for x := 0; x < r.Grid().Width(); x++ {
		r.Step(clickAt(x, 0))
	}

	after := r.Grid().Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("cell %d changed after round ended", i)
		}
	}
	if r.Grid().Pending() != pending {
		t.Error("reveal window changed after round ended")
	}
}

func TestRoundTrapStartsConfusion(t *testing.T) {
	r, clock := newTestRound(t, 1, 6)
	tx, ty, ok := findKind(r.Grid(), KindTrap)
	if !ok {
		t.Skip("board without traps")
	}

	r.Step(clickAt(tx, ty))
	if !r.Playing() {
		t.Fatal("trap should not end the round")
	}
	if !r.Confused() {
		t.Fatal("trap should start confusion")
	}

	// Re-triggering restarts the effect.
	clock.Advance(2 * time.Second)
	r.Step(clickAt(tx, ty))
	clock.Advance(2 * time.Second)
	r.Step(Click{})
	if !r.Confused() {
		t.Error("re-triggered confusion expired early")
	}

	clock.Advance(DefaultConfusionDuration)
	r.Step(Click{})
	if r.Confused() {
		t.Error("confusion should clear once its timer finishes")
	}
	if r.confusion != nil {
		t.Error("finished confusion timer should be dropped")
	}
	if !r.Playing() {
		t.Error("round should still be playing")
	}
}

func TestRoundFlicker(t *testing.T) {
	r, clock := newTestRound(t, 1, 6)
	tx, ty, ok := findKind(r.Grid(), KindTrap)
	if !ok {
		t.Skip("board without traps")
	}
	r.Step(clickAt(tx, ty))

	if !r.Flicker() {
		t.Error("flicker should be on at the start of confusion")
	}
	clock.Advance(600 * time.Millisecond)
	if r.Flicker() {
		t.Error("flicker should be off in the second half of the period")
	}
	clock.Advance(500 * time.Millisecond)
	if !r.Flicker() {
		t.Error("flicker should be back on in the next period")
	}
}

func TestRoundFlickerSuppressedOnLose(t *testing.T) {
	r, clock := newTestRound(t, 10, 6)
	tx, ty, ok := findKind(r.Grid(), KindTrap)
	if !ok {
		t.Skip("board without traps")
	}

	// Level 10 lasts 13s; trigger confusion just before the end.
	clock.Advance(12 * time.Second)
	r.Step(clickAt(tx, ty))
	clock.Advance(time.Second)
	r.Step(Click{})

	if out := r.Outcome(); out == nil || out.Result != ResultLose {
		t.Fatalf("Outcome() = %+v, want lose", out)
	}
	if !r.Confused() {
		t.Fatal("confusion timer should still be running")
	}
	for i := 0; i < 4; i++ {
		if r.Flicker() {
			t.Fatal("a lost round must show true hints")
		}
		clock.Advance(250 * time.Millisecond)
	}
}

func TestRoundOtherContentKeepsPlaying(t *testing.T) {
	r, _ := newTestRound(t, 1, 8)

	for _, kind := range []ContentKind{KindHint, KindEmpty} {
		x, y, ok := findKind(r.Grid(), kind)
		if !ok {
			continue
		}
		r.Step(clickAt(x, y))
		if !r.Playing() || r.Confused() {
			t.Errorf("revealing %v changed round state", kind)
		}
		if c, _ := r.Grid().Cell(x, y); !c.Revealed {
			t.Errorf("%v cell not revealed", kind)
		}
	}

	// Out-of-board clicks are ignored.
	r.Step(clickAt(-1, 500))
	if !r.Playing() {
		t.Error("out-of-board click changed state")
	}
}

func TestRoundRevealsFade(t *testing.T) {
	r, clock := newTestRound(t, 1, 9)
	x, y, ok := findKind(r.Grid(), KindHint)
	if !ok {
		t.Fatal("board without hints")
	}
	r.Step(clickAt(x, y))

	clock.Advance(DefaultRevealLifetime)
	r.Step(Click{})
	if c, _ := r.Grid().Cell(x, y); c.Revealed {
		t.Error("hint should fade after its lifetime")
	}
}

func TestRoundDisplayedDirectionMatchesSnapshot(t *testing.T) {
	r, clock := newTestRound(t, 1, 6)
	tx, ty, ok := findKind(r.Grid(), KindTrap)
	if !ok {
		t.Skip("board without traps")
	}
	r.Step(clickAt(tx, ty))

	// Inverted in the first half of the period, true in the second.
	phases := []struct {
		advance  time.Duration
		inverted bool
	}{
		{0, true},
		{600 * time.Millisecond, false},
		{500 * time.Millisecond, true},
	}
	truth := r.Grid().Cells()
	for _, ph := range phases {
		clock.Advance(ph.advance)
		snap := snapshotRound(r)
		if snap.Flicker != ph.inverted {
			t.Errorf("after %v: Flicker = %v, want %v", ph.advance, snap.Flicker, ph.inverted)
		}
		for i, c := range snap.Cells {
			if c.Content.Kind != KindHint {
				continue
			}
			want := truth[i].Content.Dir
			if ph.inverted {
				want = want.Opposite()
			}
			if c.Content.Dir != want || r.DisplayedDirection(truth[i].Content.Dir) != want {
				t.Fatalf("cell %d shows %v, want %v", i, c.Content.Dir, want)
			}
		}
	}
}

func TestRoundSolutionStaysRevealedAfterWin(t *testing.T) {
	r, clock := newTestRound(t, 1, 3)
	sx, sy := r.Grid().Solution()
	r.Step(clickAt(sx, sy))

	// Well past the reveal lifetime and the message timer.
	for i := 0; i < 10; i++ {
		clock.Advance(time.Second)
		r.Step(Click{})
	}

	c, _ := r.Grid().Cell(sx, sy)
	if !c.Revealed {
		t.Error("solution should stay revealed once the round is won")
	}
	if r.Grid().Pending() != 1 {
		t.Errorf("Pending() = %d, want the solution record left untouched", r.Grid().Pending())
	}
}
