package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint32
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     0x2545f491,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			// xorshift keeps the paper rustle reproducible
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; e.releaseSamples > 0 && remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; log2(0) is -Inf so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateRustleSound generates the short paper noise played when a page flips
func CreateRustleSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.rate())

	noise := NewOscillator(0, RustleDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, RustleDuration, RustleAttack, RustleRelease, rate)

	// Low triangle body under the noise
	body := NewOscillator(140, RustleDuration, WaveTriangle, rate)
	bodyShaped := NewEnvelope(body, RustleDuration, RustleAttack, RustleRelease, rate)

	mixed := beep.Take(rate.N(RustleDuration), beep.Mix(
		newVolume(shaped, 0.25),
		newVolume(bodyShaped, 0.1),
	))
	return newVolume(mixed, cfg.volume())
}

// createStrike generates one temple bell strike
func createStrike(rate beep.SampleRate) beep.Streamer {
	// Fundamental (A4)
	fund := NewOscillator(440, StrikeDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, StrikeDuration, StrikeAttack, StrikeFundamentalRelease, rate)

	// Inharmonic partial gives the gong color
	over := NewOscillator(440*2.76, StrikeDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, StrikeDuration, StrikeAttack, StrikeOvertoneRelease, rate)

	// Take bounds the mix to exactly one strike
	return beep.Take(rate.N(StrikeDuration), beep.Mix(
		newVolume(fundShaped, 0.6),
		newVolume(overShaped, 0.25),
	))
}

// ChimeStrikes returns how many strikes announce the hour, 12 for midnight and noon
func ChimeStrikes(hour int) int {
	h := hour % 12
	if h < 0 {
		h += 12
	}
	if h == 0 {
		return 12
	}
	return h
}

// CreateChimeSound generates the hour chime, one strike per hour on the 12-hour dial
func CreateChimeSound(cfg Config, hour int) beep.Streamer {
	rate := beep.SampleRate(cfg.rate())

	n := ChimeStrikes(hour)
	parts := make([]beep.Streamer, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			parts = append(parts, beep.Silence(rate.N(StrikeGap)))
		}
		parts = append(parts, createStrike(rate))
	}
	return newVolume(beep.Seq(parts...), cfg.volume())
}

// ChimeLength returns the total duration of the chime for hour
func ChimeLength(hour int) time.Duration {
	n := ChimeStrikes(hour)
	return time.Duration(n)*StrikeDuration + time.Duration(n-1)*StrikeGap
}
