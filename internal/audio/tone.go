package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone describes a short synthesised effect: a triangle oscillator with a
// pitch slide, shaped by an attack/decay/sustain/release envelope.
type Tone struct {
	Volume        float64
	Frequency     float64 // Starting pitch in Hz
	Slide         float64 // Pitch change in Hz per second
	SlideAccel    float64 // Change of Slide in Hz per second squared
	ShapeCurve    float64 // Exponent applied to the wave; >1 thins it toward a pulse
	Attack        time.Duration
	Decay         time.Duration
	Sustain       time.Duration
	Release       time.Duration
	SustainVolume float64
}

// ShootTone is the laser zap played on every shot.
var ShootTone = Tone{
	Volume:        0.6,
	Frequency:     205,
	Slide:         900,
	SlideAccel:    -1300,
	ShapeCurve:    2.2,
	Attack:        20 * time.Millisecond,
	Decay:         140 * time.Millisecond,
	Sustain:       30 * time.Millisecond,
	Release:       50 * time.Millisecond,
	SustainVolume: 0.91,
}

// Duration returns the total length of the tone.
func (t Tone) Duration() time.Duration {
	return t.Attack + t.Decay + t.Sustain + t.Release
}

// toneGenerator streams one Tone and then ends.
type toneGenerator struct {
	tone     Tone
	rate     beep.SampleRate
	phase    float64 // [0, 1)
	position int
	total    int

	attack, decay, sustain int
}

// NewToneGenerator returns a finite streamer rendering tone at rate.
func NewToneGenerator(tone Tone, rate beep.SampleRate) beep.Streamer {
	return &toneGenerator{
		tone:    tone,
		rate:    rate,
		total:   rate.N(tone.Duration()),
		attack:  rate.N(tone.Attack),
		decay:   rate.N(tone.Decay),
		sustain: rate.N(tone.Sustain),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.position >= g.total {
		return 0, false
	}

	for i := range samples {
		if g.position >= g.total {
			return i, true
		}

		t := float64(g.position) / float64(g.rate)
		freq := g.tone.Frequency + g.tone.Slide*t + 0.5*g.tone.SlideAccel*t*t
		freq = math.Max(freq, 0)

		val := g.wave() * g.envelope() * g.tone.Volume
		val = math.Max(-1, math.Min(1, val))

		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.position++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// wave returns the shaped triangle value at the current phase.
func (g *toneGenerator) wave() float64 {
	tri := 1 - 4*math.Abs(g.phase-0.5) // -1..1
	if g.tone.ShapeCurve > 0 && g.tone.ShapeCurve != 1 {
		tri = math.Copysign(math.Pow(math.Abs(tri), g.tone.ShapeCurve), tri)
	}
	return tri
}

// envelope returns the gain at the current position.
func (g *toneGenerator) envelope() float64 {
	p := g.position
	switch {
	case p < g.attack:
		return float64(p) / float64(g.attack)
	case p < g.attack+g.decay:
		k := float64(p-g.attack) / float64(g.decay)
		return 1 - k*(1-g.tone.SustainVolume)
	case p < g.attack+g.decay+g.sustain:
		return g.tone.SustainVolume
	default:
		release := g.total - g.attack - g.decay - g.sustain
		if release <= 0 {
			return 0
		}
		k := float64(p-g.attack-g.decay-g.sustain) / float64(release)
		return g.tone.SustainVolume * (1 - k)
	}
}
