package flip

import (
	"math"
	"testing"
)

func TestUpdateStartsOnMinuteChange(t *testing.T) {
	s := NewState(DefaultDuration)
	samples := []int{5, 5, 5, 6, 6, 7}
	wantStart := []bool{false, false, false, true, false, true}

	starts := 0
	for i, m := range samples {
		got := s.Update(m)
		if got != wantStart[i] {
			t.Errorf("sample %d (minute %d): expected start=%v, got %v", i, m, wantStart[i], got)
		}
		if got {
			starts++
		}
	}
	if starts != 2 {
		t.Errorf("Expected 2 flip starts, got %d", starts)
	}
	if s.OutgoingMinute != 6 || s.PreviousMinute != 7 {
		t.Errorf("Expected outgoing=6 previous=7, got outgoing=%d previous=%d", s.OutgoingMinute, s.PreviousMinute)
	}
}

func TestFirstUpdateDoesNotFlip(t *testing.T) {
	s := NewState(DefaultDuration)
	if s.Update(42) {
		t.Error("First sample must not start a flip")
	}
	if s.Active() {
		t.Error("Expected inactive state after first sample")
	}
	if !s.HasPrevious || s.PreviousMinute != 42 {
		t.Errorf("Expected previous minute 42 recorded, got %+v", s)
	}
}

func TestUpdateResetsFrameMidFlip(t *testing.T) {
	s := NewState(10)
	s.Update(1)
	s.Update(2)
	for i := 0; i < 4; i++ {
		s.Advance()
	}
	if s.Frame != 4 {
		t.Fatalf("Expected frame 4, got %d", s.Frame)
	}

	if !s.Update(3) {
		t.Fatal("Expected minute change to start a new flip")
	}
	if s.Frame != 0 || !s.Flipping || s.OutgoingMinute != 2 {
		t.Errorf("Expected restarted flip from minute 2, got %+v", s)
	}
}

func TestAdvanceCompletesFlip(t *testing.T) {
	s := NewState(DefaultDuration)
	s.Update(6)
	s.Update(7)

	for i := 0; i < DefaultDuration; i++ {
		if !s.Active() {
			t.Fatalf("Expected active flip at frame %d", i)
		}
		s.Advance()
	}

	if s.Active() || s.Flipping {
		t.Errorf("Expected flip complete after %d frames, got %+v", DefaultDuration, s)
	}
	if s.Frame != DefaultDuration {
		t.Errorf("Expected frame clamped to %d, got %d", DefaultDuration, s.Frame)
	}

	// Further advances are no-ops
	s.Advance()
	if s.Frame != DefaultDuration {
		t.Errorf("Advance on idle state changed frame to %d", s.Frame)
	}
}

func TestInvariantFlippingImpliesFrameBelowDuration(t *testing.T) {
	s := NewState(5)
	minutes := []int{0, 1, 1, 1, 1, 1, 1, 1, 2, 2, 3}
	for _, m := range minutes {
		s.Update(m)
		if s.Flipping && s.Frame >= s.Duration {
			t.Fatalf("Invariant violated after update: %+v", s)
		}
		if s.Active() {
			s.Advance()
		} else {
			s.Settle()
		}
		if s.Flipping && s.Frame >= s.Duration {
			t.Fatalf("Invariant violated after advance: %+v", s)
		}
	}
}

func TestNewStateDefaultsDuration(t *testing.T) {
	if got := NewState(0).Duration; got != DefaultDuration {
		t.Errorf("Expected default duration %d, got %d", DefaultDuration, got)
	}
	if got := NewState(-3).Duration; got != DefaultDuration {
		t.Errorf("Expected default duration %d, got %d", DefaultDuration, got)
	}
	if got := NewState(12).Duration; got != 12 {
		t.Errorf("Expected duration 12, got %d", got)
	}
}

func TestProgress(t *testing.T) {
	s := NewState(30)
	tests := []struct {
		frame int
		want  float64
	}{
		{-1, 0},
		{0, 0},
		{15, 0.5},
		{29, 29.0 / 30.0},
		{30, 1},
		{45, 1},
	}
	for _, tt := range tests {
		s.Frame = tt.frame
		if got := s.Progress(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Progress at frame %d = %f, want %f", tt.frame, got, tt.want)
		}
	}
}
