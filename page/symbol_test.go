package page

import "testing"

func TestHourSymbolTwelveHourEquivalence(t *testing.T) {
	if HourSymbol(0) != HourSymbol(12) {
		t.Errorf("Expected midnight and noon to share a symbol, got %v and %v", HourSymbol(0), HourSymbol(12))
	}
	for h := 1; h <= 11; h++ {
		if HourSymbol(h) != HourSymbol(h+12) {
			t.Errorf("Expected hour %d and %d to share a symbol, got %v and %v", h, h+12, HourSymbol(h), HourSymbol(h+12))
		}
	}
}

func TestHourSymbolOrder(t *testing.T) {
	tests := []struct {
		hour int
		name string
	}{
		{1, "Rat"},
		{2, "Ox"},
		{3, "Tiger"},
		{6, "Snake"},
		{11, "Dog"},
		{12, "Pig"},
		{0, "Pig"},
		{13, "Rat"},
		{23, "Dog"},
	}
	for _, tt := range tests {
		if got := HourSymbol(tt.hour).Name; got != tt.name {
			t.Errorf("HourSymbol(%d) = %s, want %s", tt.hour, got, tt.name)
		}
	}
}

func TestHour12(t *testing.T) {
	for h := 0; h < 24; h++ {
		got := Hour12(h)
		if got < 1 || got > 12 {
			t.Errorf("Hour12(%d) = %d out of [1,12]", h, got)
		}
	}
	if Hour12(0) != 12 || Hour12(12) != 12 || Hour12(15) != 3 {
		t.Errorf("Unexpected normalization: 0->%d 12->%d 15->%d", Hour12(0), Hour12(12), Hour12(15))
	}
}

func TestZodiacDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i, s := range Zodiac() {
		if s.Glyph == "" || s.Name == "" {
			t.Errorf("symbol %d incomplete: %+v", i, s)
		}
		if seen[s.Name] {
			t.Errorf("duplicate symbol %s", s.Name)
		}
		seen[s.Name] = true
	}
}
