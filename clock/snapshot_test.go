package clock

import (
	"reflect"
	"testing"
	"time"
)

func TestFromTime(t *testing.T) {
	ts := time.Date(2026, time.October, 19, 14, 7, 33, 0, time.UTC)

	got := FromTime(ts)
	want := Snapshot{
		Hour24:  14,
		Hour12:  2,
		Minute:  7,
		Second:  33,
		Year:    2026,
		Month:   10,
		Weekday: "Monday",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromTime(%v) = %+v, want %+v", ts, got, want)
	}
}

func TestFromTimeHourNormalization(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		want12 int
	}{
		{"Midnight", 0, 0},
		{"Morning", 9, 9},
		{"Noon", 12, 0},
		{"Afternoon", 13, 1},
		{"Late", 23, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := FromTime(time.Date(2026, 1, 1, tt.hour, 0, 0, 0, time.UTC))
			if snap.Hour12 != tt.want12 {
				t.Errorf("Expected Hour12=%d for hour %d, got %d", tt.want12, tt.hour, snap.Hour12)
			}
			if snap.Hour24 != tt.hour {
				t.Errorf("Expected Hour24=%d, got %d", tt.hour, snap.Hour24)
			}
		})
	}
}

func TestWeekdayName(t *testing.T) {
	want := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if got := WeekdayName(d); got != want[d] {
			t.Errorf("WeekdayName(%d) = %q, want %q", d, got, want[d])
		}
	}
	if got := WeekdayName(time.Weekday(9)); got != "" {
		t.Errorf("Expected empty name for out-of-range weekday, got %q", got)
	}
}

// TestSampleReadsOnce verifies a snapshot stays consistent after the clock moves
func TestSampleReadsOnce(t *testing.T) {
	start := time.Date(2026, 3, 5, 10, 59, 59, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	snap := Sample(mock)
	mock.Advance(time.Second)

	if snap.Minute != 59 || snap.Second != 59 || snap.Hour24 != 10 {
		t.Errorf("Snapshot changed after clock advanced: %+v", snap)
	}

	next := Sample(mock)
	if next.Hour24 != 11 || next.Minute != 0 || next.Second != 0 {
		t.Errorf("Expected 11:00:00 after advance, got %02d:%02d:%02d", next.Hour24, next.Minute, next.Second)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected %v, got %v", start, mock.Now())
	}

	mock.Advance(90 * time.Second)
	if want := start.Add(90 * time.Second); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after advance, got %v", want, mock.Now())
	}

	later := time.Date(2027, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.SetTime(later)
	if !mock.Now().Equal(later) {
		t.Errorf("Expected %v after SetTime, got %v", later, mock.Now())
	}
}
