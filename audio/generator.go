package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SweepGenerator is a sine glide between two frequencies with a linear fade out
// It ends after its duration
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	total    int
	phase    float64
}

// NewSweepGenerator creates a glide from -> to over d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the glide click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.25 * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ChimeGenerator is a bell tone: fundamental plus an inharmonic partial, exponential decay
type ChimeGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewChimeGenerator creates a chime at freq lasting d
func NewChimeGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		t := float64(g.pos) / float64(g.sr)
		decay := math.Exp(-6 * float64(g.pos) / float64(g.total))

		sample := 0.2 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.08 * math.Sin(2*math.Pi*g.freq*2.76*t)
		sample *= decay

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator is a low square-ish buzz for wrong answers
type BuzzGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewBuzzGenerator creates a buzz at freq lasting d
func NewBuzzGenerator(sr beep.SampleRate, freq float64, d time.Duration) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms attack
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// newVolume wraps s at a linear volume; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
