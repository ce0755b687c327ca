package clock

import "time"

var weekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Snapshot is the set of time fields read once per frame
// Every element drawn in a frame reads the same snapshot so header, numerals and grid agree
type Snapshot struct {
	Hour24  int // 0-23
	Hour12  int // 0-11
	Minute  int // 0-59
	Second  int // 0-59
	Year    int
	Month   int // 1-12
	Weekday string
}

// Sample reads the provider exactly once
func Sample(tp TimeProvider) Snapshot {
	return FromTime(tp.Now())
}

// FromTime extracts a snapshot from t in t's location
func FromTime(t time.Time) Snapshot {
	return Snapshot{
		Hour24:  t.Hour(),
		Hour12:  t.Hour() % 12,
		Minute:  t.Minute(),
		Second:  t.Second(),
		Year:    t.Year(),
		Month:   int(t.Month()),
		Weekday: WeekdayName(t.Weekday()),
	}
}

// WeekdayName maps a weekday to its English name
func WeekdayName(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return weekdays[d]
}
