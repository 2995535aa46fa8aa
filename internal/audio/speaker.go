package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays effects on the local sound device through one shared mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	playing     map[Effect]*beep.Ctrl
	initialized bool
}

var _ Player = (*Speaker)(nil)

// NewSpeaker creates a speaker. Call Init before any sound is heard.
func NewSpeaker() *Speaker {
	return &Speaker{
		mixer:   &beep.Mixer{},
		playing: make(map[Effect]*beep.Ctrl),
	}
}

// Init opens the sound device and starts the mixer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play stops any in-flight instance of e and starts it again from the beginning.
func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	streamer := effectStreamer(e)
	if streamer == nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: streamer}

	speaker.Lock()
	if prev := s.playing[e]; prev != nil {
		// A nil streamer makes the mixer drop it on the next buffer
		prev.Streamer = nil
	}
	s.mixer.Add(ctrl)
	speaker.Unlock()

	s.playing[e] = ctrl
}

// Close stops every sound. The device stays open; beep has no way to release it.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()

	clear(s.playing)
	s.initialized = false
}

// effectStreamer returns a fresh streamer for e, or nil for unknown effects.
func effectStreamer(e Effect) beep.Streamer {
	switch e {
	case EffectShoot:
		return NewToneGenerator(ShootTone, sampleRate)
	default:
		return nil
	}
}

// OpenSpeaker initialises the local sound device. When no device is available
// it logs a warning and returns a Silent player. The returned func stops playback.
func OpenSpeaker(logger *log.Logger) (Player, func()) {
	s := NewSpeaker()
	if err := s.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return Silent{}, func() {}
	}
	return s, s.Close
}
