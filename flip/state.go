// Package flip tracks the page-flip transition started whenever the displayed minute changes.
// Duration is counted in drawn frames, so wall-clock length depends on the host redraw rate.
package flip

// DefaultDuration is the flip length in frames, half a second at 60 Hz
const DefaultDuration = 30

// State is the process-wide transition record, mutated only by the frame loop
type State struct {
	PreviousMinute int
	HasPrevious    bool
	Flipping       bool
	Frame          int
	OutgoingMinute int
	Duration       int
}

// NewState creates an idle state; non-positive duration falls back to DefaultDuration
func NewState(duration int) State {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return State{Duration: duration}
}

// Update records the sampled minute and starts a flip when it differs from the previous sample
// The first sample only primes the state. Returns true when a flip started
func (s *State) Update(currentMinute int) bool {
	if !s.HasPrevious {
		s.PreviousMinute = currentMinute
		s.HasPrevious = true
		return false
	}
	if currentMinute == s.PreviousMinute {
		return false
	}
	s.OutgoingMinute = s.PreviousMinute
	s.PreviousMinute = currentMinute
	s.Frame = 0
	s.Flipping = true
	return true
}

// Active reports whether this frame draws two overlaid pages
func (s *State) Active() bool {
	return s.Flipping && s.Frame < s.Duration
}

// Advance counts one drawn two-page frame and ends the flip at Duration
func (s *State) Advance() {
	if !s.Flipping {
		return
	}
	s.Frame++
	if s.Frame >= s.Duration {
		s.Frame = s.Duration
		s.Flipping = false
	}
}

// Settle clears a flip that has already run its course
func (s *State) Settle() {
	if s.Flipping && s.Frame >= s.Duration {
		s.Flipping = false
	}
}

// Progress returns Frame/Duration clamped to [0,1]
func (s *State) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	p := float64(s.Frame) / float64(s.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
