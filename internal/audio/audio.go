// Package audio plays the short feedback tones of the shooter.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays feedback cues. Play must not block the caller.
type Player interface {
	Play(cue core.Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Cue) {}

// SpeakerPlayer plays cues as sine tones on the system speaker.
type SpeakerPlayer struct {
	tones  map[core.Cue]core.Tone
	volume float64
	mixer  *beep.Mixer
}

var initOnce struct {
	sync.Once
	err error
}

// NewSpeaker initializes the speaker and returns a player for the configured tones.
// The speaker is initialized once per process.
func NewSpeaker(cfg config.AudioConfig) (*SpeakerPlayer, error) {
	mixer := &beep.Mixer{}
	initOnce.Do(func() {
		initOnce.err = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if initOnce.err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", initOnce.err)
	}
	speaker.Play(mixer)

	return &SpeakerPlayer{
		tones:  cfg.Tones(),
		volume: cfg.Volume,
		mixer:  mixer,
	}, nil
}

// New returns a speaker-backed player, or Nop when audio is disabled or the
// device cannot be opened. Audio failures never stop the game.
func New(cfg config.AudioConfig, mute bool, logger *log.Logger) Player {
	if mute || !cfg.Enabled {
		return Nop{}
	}
	p, err := NewSpeaker(cfg)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return Nop{}
	}
	return p
}

// Play queues the tone for cue on the mixer. Unknown cues are ignored.
func (p *SpeakerPlayer) Play(cue core.Cue) {
	tone, ok := p.tones[cue]
	if !ok {
		return
	}
	s, err := ToneStreamer(sampleRate, tone, p.volume)
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close drops any queued tones.
func (p *SpeakerPlayer) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// ToneStreamer builds a finite sine tone at the given volume (0.0 to 1.0).
func ToneStreamer(sr beep.SampleRate, tone core.Tone, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, tone.Frequency)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0f Hz: %w", tone.Frequency, err)
	}
	return newVolume(beep.Take(sr.N(tone.Duration), sine), volume), nil
}

// newVolume wraps s in a volume effect. Zero volume is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
