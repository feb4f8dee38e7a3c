package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/advent/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to completion and returns every produced sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestGeneratorsEndAfterDuration(t *testing.T) {
	sr := beep.SampleRate(8000)
	d := 100 * time.Millisecond

	tests := []struct {
		name string
		s    beep.Streamer
	}{
		{"sweep", NewSweepGenerator(sr, 880, 220, d)},
		{"chime", NewChimeGenerator(sr, 1320, d)},
		{"buzz", NewBuzzGenerator(sr, 120, d)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(t, tt.s)
			assert.Len(t, samples, sr.N(d))
			assert.NoError(t, tt.s.Err())

			peak := 0.0
			for _, s := range samples {
				assert.Equal(t, s[0], s[1], "mono on both channels")
				peak = math.Max(peak, math.Abs(s[0]))
			}
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)

			n, ok := tt.s.Stream(make([][2]float64, 16))
			assert.Zero(t, n)
			assert.False(t, ok)
		})
	}
}

func TestSweepFadesOut(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(t, NewSweepGenerator(sr, 440, 440, 200*time.Millisecond))

	head := 0.0
	tail := 0.0
	q := len(samples) / 4
	for i := 0; i < q; i++ {
		head = math.Max(head, math.Abs(samples[i][0]))
		tail = math.Max(tail, math.Abs(samples[len(samples)-1-i][0]))
	}
	assert.Greater(t, head, tail)
}

func TestNewVolumeSilentAtZero(t *testing.T) {
	s := newVolume(NewBuzzGenerator(8000, 120, 50*time.Millisecond), 0)
	for _, smp := range drain(t, s) {
		assert.Zero(t, smp[0])
	}
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(Options{Enabled: true, Volume: 0.5}, nil)

	assert.NotPanics(t, func() {
		sm.PlayWipe()
		sm.PlayChime()
		sm.PlayBuzz()
		sm.Cue(effect.PhaseIn)
		sm.Cue(effect.PhaseOut)
		sm.Cue(effect.PhaseIdle)
		sm.Cleanup()
	})
	assert.Zero(t, sm.Played())
}

func TestSoundManagerDisabledSkipsSpeaker(t *testing.T) {
	sm := NewSoundManager(Options{Enabled: false, Volume: 1}, nil)
	require.NoError(t, sm.Initialize())
	assert.False(t, sm.Initialized())

	sm.PlayWipe()
	assert.Zero(t, sm.Played())
}

// TestSoundManagerInitialization verifies the manager plays cues once the speaker is open
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(Options{Enabled: true, Volume: 2}, nil)

	// Speaker initialization fails in environments without an audio device
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	require.True(t, sm.Initialized())
	require.NoError(t, sm.Initialize(), "second initialize is a no-op")

	sm.Cue(effect.PhaseIn)
	sm.Cue(effect.PhaseOut)
	sm.Cue(effect.PhaseIdle)
	assert.Equal(t, 2, sm.Played())

	sm.Cleanup()
	assert.False(t, sm.Initialized())
	sm.PlayChime()
	assert.Equal(t, 2, sm.Played())
}
