package page

// Symbol is an hour glyph plus a plain-text name for faces without emoji coverage
type Symbol struct {
	Glyph string
	Name  string
}

// Zodiac order, fixed at compile time
var zodiac = [12]Symbol{
	{"🐀", "Rat"},
	{"🐂", "Ox"},
	{"🐅", "Tiger"},
	{"🐇", "Rabbit"},
	{"🐉", "Dragon"},
	{"🐍", "Snake"},
	{"🐎", "Horse"},
	{"🐐", "Goat"},
	{"🐒", "Monkey"},
	{"🐓", "Rooster"},
	{"🐕", "Dog"},
	{"🐖", "Pig"},
}

// Hour12 normalizes a 0-23 hour to 1-12, with 0 and 12 both mapping to 12
func Hour12(hour int) int {
	switch {
	case hour == 0:
		return 12
	case hour > 12:
		return hour - 12
	default:
		return hour
	}
}

// HourSymbol returns the zodiac symbol for an hour in 24- or 12-hour form
func HourSymbol(hour int) Symbol {
	idx := (Hour12(hour) - 1) % 12
	if idx < 0 {
		idx += 12
	}
	return zodiac[idx]
}

// Zodiac returns the full symbol table in order
func Zodiac() [12]Symbol {
	return zodiac
}
