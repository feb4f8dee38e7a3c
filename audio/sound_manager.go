// Package audio plays the short synthesized cues that accompany scene transitions
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/advent/effect"
	"go.uber.org/zap"
)

const (
	sampleRate = beep.SampleRate(48000)

	wipeDuration  = 350 * time.Millisecond
	chimeDuration = 600 * time.Millisecond
	buzzDuration  = 150 * time.Millisecond
)

// Options configures the sound manager
type Options struct {
	Enabled bool
	Volume  float64 // Linear, 0..1
}

// SoundManager mixes cue sounds into a single speaker stream
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	opts        Options
	initialized bool
	played      int
	log         *zap.Logger
}

// NewSoundManager creates an uninitialized manager; nil logger disables logging
func NewSoundManager(opts Options, log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	opts.Volume = min(max(opts.Volume, 0), 1)
	return &SoundManager{
		mixer: &beep.Mixer{},
		opts:  opts,
		log:   log,
	}
}

// Initialize opens the speaker and starts the mixer
// A disabled manager stays silent and reports no error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.opts.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("audio initialized", zap.Int("sample_rate", int(sampleRate)), zap.Float64("volume", sm.opts.Volume))
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences all cues and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayWipe plays a descending sweep for the concealing half of a transition
func (sm *SoundManager) PlayWipe() {
	sm.play(NewSweepGenerator(sampleRate, 880, 220, wipeDuration))
}

// PlayChime plays a bell for the revealing half of a transition
func (sm *SoundManager) PlayChime() {
	sm.play(NewChimeGenerator(sampleRate, 1320, chimeDuration))
}

// PlayBuzz plays a short buzz for a wrong answer
func (sm *SoundManager) PlayBuzz() {
	sm.play(NewBuzzGenerator(sampleRate, 120, buzzDuration))
}

// Cue maps a wipe phase to its sound, for use as a transition hook
func (sm *SoundManager) Cue(p effect.Phase) {
	switch p {
	case effect.PhaseIn:
		sm.PlayWipe()
	case effect.PhaseOut:
		sm.PlayChime()
	}
}

// Played returns the number of cues sent to the mixer
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.opts.Volume))
	speaker.Unlock()
	sm.played++
}
