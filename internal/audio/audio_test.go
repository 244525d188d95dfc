package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// drain streams s to completion and returns the number of samples produced
// and the peak absolute amplitude.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneStreamerLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tones := config.DefaultShooterConfig().Audio.Tones()

	tests := []struct {
		cue      core.Cue
		duration time.Duration
	}{
		{core.CueShoot, 45 * time.Millisecond},
		{core.CueHit, 60 * time.Millisecond},
		{core.CueLifeLost, 220 * time.Millisecond},
	}

	for _, tt := range tests {
		tone := tones[tt.cue]
		if tone.Duration != tt.duration {
			t.Errorf("cue %v: got duration %v, expected %v", tt.cue, tone.Duration, tt.duration)
		}

		s, err := ToneStreamer(rate, tone, 0.5)
		if err != nil {
			t.Fatalf("cue %v: unexpected error: %v", tt.cue, err)
		}
		n, peak := drain(s)
		if want := rate.N(tt.duration); n != want {
			t.Errorf("cue %v: got %d samples, expected %d", tt.cue, n, want)
		}
		if peak > 0.5+1e-9 {
			t.Errorf("cue %v: got peak %f, expected at most 0.5", tt.cue, peak)
		}
	}
}

func TestToneStreamerSilentAtZeroVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	s, err := ToneStreamer(rate, core.Tone{Frequency: 900, Duration: 10 * time.Millisecond}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, peak := drain(s); peak != 0 {
		t.Errorf("got peak %f, expected silence", peak)
	}
}

func TestToneStreamerRejectsAliasedFrequency(t *testing.T) {
	rate := beep.SampleRate(8000)
	if _, err := ToneStreamer(rate, core.Tone{Frequency: 5000, Duration: time.Millisecond}, 1); err == nil {
		t.Error("expected error for a frequency above the Nyquist limit")
	}
}

func TestNewReturnsNopWhenMuted(t *testing.T) {
	cfg := config.DefaultShooterConfig().Audio
	logger := log.New(io.Discard)

	if _, ok := New(cfg, true, logger).(Nop); !ok {
		t.Error("expected Nop player when muted")
	}

	cfg.Enabled = false
	if _, ok := New(cfg, false, logger).(Nop); !ok {
		t.Error("expected Nop player when audio is disabled")
	}

	// Must not panic.
	Nop{}.Play(core.CueShoot)
}
