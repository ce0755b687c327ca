package audio

import "time"

// Sound timing
const (
	RustleDuration = 350 * time.Millisecond
	RustleAttack   = 30 * time.Millisecond
	RustleRelease  = 250 * time.Millisecond

	StrikeDuration           = 900 * time.Millisecond
	StrikeAttack             = 5 * time.Millisecond
	StrikeFundamentalRelease = 850 * time.Millisecond
	StrikeOvertoneRelease    = 300 * time.Millisecond
	StrikeGap                = 250 * time.Millisecond
)

// Config holds sound settings
type Config struct {
	Enabled    bool
	Volume     float64 // master volume in [0,1]
	SampleRate int
}

// DefaultConfig returns enabled audio at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 48000,
	}
}

func (c Config) rate() int {
	if c.SampleRate <= 0 {
		return DefaultConfig().SampleRate
	}
	return c.SampleRate
}

func (c Config) volume() float64 {
	if c.Volume < 0 {
		return 0
	}
	if c.Volume > 1 {
		return 1
	}
	return c.Volume
}
