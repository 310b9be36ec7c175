package core

// PointerSample is one normalized pointer reading delivered per tick.
// X and Y are surface coordinates; Clicked is set for a primary-button press.
type PointerSample struct {
	Clicked bool
	X, Y    int
}

// Consume returns the sample and clears its click so a press is handled
// exactly once.
func (p *PointerSample) Consume() PointerSample {
	s := *p
	p.Clicked = false
	return s
}
