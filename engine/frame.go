package engine

import (
	"github.com/lixenwraith/lunar-clock/clock"
	"github.com/lixenwraith/lunar-clock/flip"
	"github.com/lixenwraith/lunar-clock/page"
)

// DefaultAngleStep is the per-frame advance of the decorative spiral phase
const DefaultAngleStep = 0.01

// State is the whole mutable animation state, owned by the frame loop
type State struct {
	Flip      flip.State
	Angle     float64
	AngleStep float64
	Frames    uint64

	lastHour int
	hasHour  bool
}

// NewState creates a fresh animation state
func NewState(flipFrames int, angleStep float64) *State {
	return &State{
		Flip:      flip.NewState(flipFrames),
		AngleStep: angleStep,
	}
}

// Plan is what one frame draws, pages listed in draw order
type Plan struct {
	Pages       []page.Input
	FlipStarted bool
	HourChanged bool
	From, To    int // minutes involved in a started flip
}

// Transitioning reports whether the plan overlays two pages
func (p Plan) Transitioning() bool {
	return len(p.Pages) == 2
}

// Step advances the animation by one frame for the given snapshot
// A running flip yields the outgoing page then the incoming page, and its frame
// counter advances once the two-page plan has been produced
func Step(s *State, snap clock.Snapshot) Plan {
	s.Frames++
	s.Angle += s.AngleStep

	plan := Plan{}
	if s.Flip.Update(snap.Minute) {
		plan.FlipStarted = true
		plan.From, plan.To = s.Flip.OutgoingMinute, snap.Minute
	}

	if s.hasHour && snap.Hour24 != s.lastHour {
		plan.HourChanged = true
	}
	s.lastHour, s.hasHour = snap.Hour24, true

	if !s.Flip.Active() {
		s.Flip.Settle()
		plan.Pages = []page.Input{{
			Minute:   snap.Minute,
			Snapshot: snap,
			Progress: 1,
			Angle:    s.Angle,
		}}
		return plan
	}

	p := s.Flip.Progress()
	plan.Pages = []page.Input{
		{
			Minute:        s.Flip.OutgoingMinute,
			Snapshot:      snap,
			Progress:      p,
			Outgoing:      true,
			Transitioning: true,
			Angle:         s.Angle,
		},
		{
			Minute:        snap.Minute,
			Snapshot:      snap,
			Progress:      p,
			Transitioning: true,
			Angle:         s.Angle,
		},
	}
	s.Flip.Advance()
	return plan
}
