// Package audio plays the page-flip rustle and the hourly chime through beep's speaker.
// Missing audio hardware is never fatal: an uninitialized manager ignores every call.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      int
}

// NewSoundManager creates a manager; nothing is played until Initialize succeeds
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize opens the speaker with a 100ms buffer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.rate())
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close, clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether playback is suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Played returns how many sounds were queued since creation
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// PlayFlip plays the page rustle, matching engine's OnFlip hook
func (sm *SoundManager) PlayFlip(from, to int) {
	sm.play(func(cfg Config) beep.Streamer { return CreateRustleSound(cfg) })
}

// PlayChime strikes the hour, matching engine's OnHour hook
func (sm *SoundManager) PlayChime(hour int) {
	sm.play(func(cfg Config) beep.Streamer { return CreateChimeSound(cfg, hour) })
}

func (sm *SoundManager) play(build func(Config) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := build(sm.cfg)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}
