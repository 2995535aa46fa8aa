package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion in small buffers and returns the left channel.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] != smp[1] {
				t.Fatalf("channels differ: %v", smp)
			}
			out = append(out, smp[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneGeneratorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, NewToneGenerator(ShootTone, rate))

	if want := rate.N(ShootTone.Duration()); len(samples) != want {
		t.Errorf("streamed %d samples, want %d", len(samples), want)
	}
}

func TestToneGeneratorRangeAndEnvelope(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, NewToneGenerator(ShootTone, rate))

	peak := 0.0
	for i, v := range samples {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		t.Fatal("tone is silent")
	}

	if samples[0] != 0 {
		t.Errorf("first sample = %f, want 0 (attack starts silent)", samples[0])
	}
	tail := samples[len(samples)-1]
	if math.Abs(tail) > 0.05 {
		t.Errorf("last sample = %f, want near 0 after release", tail)
	}
}

func TestToneGeneratorEndsCleanly(t *testing.T) {
	g := NewToneGenerator(Tone{Volume: 1, Frequency: 440, Sustain: time.Millisecond, SustainVolume: 1}, beep.SampleRate(1000))
	buf := make([][2]float64, 8)

	n, ok := g.Stream(buf)
	if n != 1 || !ok {
		t.Errorf("first Stream = (%d, %v), want (1, true)", n, ok)
	}
	n, ok = g.Stream(buf)
	if n != 0 || ok {
		t.Errorf("drained Stream = (%d, %v), want (0, false)", n, ok)
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}
}

func TestSpeakerPlayBeforeInitIsNoop(t *testing.T) {
	s := NewSpeaker()
	s.Play(EffectShoot)
	s.Close()
	if len(s.playing) != 0 {
		t.Errorf("playing = %d entries, want 0", len(s.playing))
	}
}

func TestEffectString(t *testing.T) {
	if got := EffectShoot.String(); got != "shoot" {
		t.Errorf("EffectShoot.String() = %q, want shoot", got)
	}
	if effectStreamer(Effect(99)) != nil {
		t.Error("unknown effect should have no streamer")
	}
	Silent{}.Play(EffectShoot)
}
