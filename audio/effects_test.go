package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain reads a finite streamer to exhaustion and returns all samples
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) <= limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("Streamer did not end within %d samples", limit)
	return nil
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name string
		wave WaveType
	}{
		{"Sine", WaveSine},
		{"Triangle", WaveTriangle},
		{"Noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, rate)
			samples := drain(t, osc, 10000)
			if len(samples) != rate.N(100*time.Millisecond) {
				t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("Sample %d out of range or not mono: %v", i, s)
				}
			}
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Constant 1.0 source through the envelope exposes the gain curve
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)
	out := drain(t, env, 1000)

	if len(out) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(out))
	}
	if out[0][0] != 0 {
		t.Errorf("Attack should start silent, got %f", out[0][0])
	}
	if out[50][0] != 1 {
		t.Errorf("Sustain should be full, got %f", out[50][0])
	}
	if out[99][0] <= 0 || out[99][0] > 0.1 {
		t.Errorf("Release tail should be near silent, got %f", out[99][0])
	}
}

func TestRustleBounded(t *testing.T) {
	cfg := Config{Enabled: true, Volume: 1, SampleRate: 8000}
	samples := drain(t, CreateRustleSound(cfg), 100000)

	want := beep.SampleRate(8000).N(RustleDuration)
	if len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("Peak %f outside (0,1]", peak)
	}
}

func TestRustleSilentAtZeroVolume(t *testing.T) {
	cfg := Config{Enabled: true, Volume: 0, SampleRate: 8000}
	for _, s := range drain(t, CreateRustleSound(cfg), 100000) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence, got %v", s)
		}
	}
}

func TestChimeStrikes(t *testing.T) {
	tests := []struct {
		hour, want int
	}{
		{0, 12}, {12, 12}, {1, 1}, {13, 1}, {9, 9}, {23, 11},
	}
	for _, tt := range tests {
		if got := ChimeStrikes(tt.hour); got != tt.want {
			t.Errorf("ChimeStrikes(%d) = %d, want %d", tt.hour, got, tt.want)
		}
	}
}

func TestChimeLength(t *testing.T) {
	cfg := Config{Enabled: true, Volume: 0.5, SampleRate: 4000}
	rate := beep.SampleRate(cfg.SampleRate)

	for _, hour := range []int{1, 3} {
		samples := drain(t, CreateChimeSound(cfg, hour), 1000000)
		n := ChimeStrikes(hour)
		want := n*rate.N(StrikeDuration) + (n-1)*rate.N(StrikeGap)
		if len(samples) != want {
			t.Errorf("Hour %d: expected %d samples, got %d", hour, want, len(samples))
		}
	}
	if got := ChimeLength(3); got != 3*StrikeDuration+2*StrikeGap {
		t.Errorf("ChimeLength(3) = %v", got)
	}
}

func TestConfigClamps(t *testing.T) {
	if v := (Config{Volume: 2}).volume(); v != 1 {
		t.Errorf("volume() = %f, want 1", v)
	}
	if v := (Config{Volume: -1}).volume(); v != 0 {
		t.Errorf("volume() = %f, want 0", v)
	}
	if r := (Config{}).rate(); r != DefaultConfig().SampleRate {
		t.Errorf("rate() = %d, want default", r)
	}
}
