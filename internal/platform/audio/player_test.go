package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tiny-bazooka/internal/config"
	"github.com/vovakirdan/tiny-bazooka/internal/games/bazooka"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer still running after %d samples", limit)
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := newOscillator(440, 100*time.Millisecond, waveSquare, rate)

	n, peak := drain(t, osc, rate.N(time.Second))
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", n, rate.N(100*time.Millisecond))
	}
	if peak != 1 {
		t.Errorf("peak = %v, expected 1", peak)
	}
}

func TestSquareWaveLevels(t *testing.T) {
	osc := newOscillator(220, 50*time.Millisecond, waveSquare, beep.SampleRate(44100))

	buf := make([][2]float64, 64)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %v, expected ±1", i, v)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := newOscillator(0, 50*time.Millisecond, waveSquare, rate)
	env := newEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 8)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, attack should start at 0", buf[0][0])
	}
}

func TestEffects(t *testing.T) {
	tests := []struct {
		sound bazooka.Sound
		dur   time.Duration
	}{
		{bazooka.SoundFire, fireDuration},
		{bazooka.SoundHit, hitDuration},
	}

	for _, tc := range tests {
		t.Run(tc.sound.String(), func(t *testing.T) {
			s := effect(tc.sound, sampleRate, 0.6)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			n, peak := drain(t, s, sampleRate.N(2*time.Second))
			if n != sampleRate.N(tc.dur) {
				t.Errorf("length = %d samples, expected %d", n, sampleRate.N(tc.dur))
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
		})
	}

	if effect(bazooka.Sound(99), sampleRate, 1) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, fireSound(sampleRate, 0), sampleRate.N(time.Second))
	if peak != 0 {
		t.Errorf("peak = %v at zero volume", peak)
	}
}

func TestBasslineNeverEnds(t *testing.T) {
	b := newBassline(sampleRate)
	buf := make([][2]float64, 4096)
	for i := 0; i < 100; i++ {
		n, ok := b.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("chunk %d: n=%d ok=%v", i, n, ok)
		}
	}
}

func TestPlayerDisabled(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: false, Volume: 1}, nil)

	if err := p.Init(); err != nil {
		t.Fatalf("Init on disabled player: %v", err)
	}
	p.Play(bazooka.SoundFire)
	p.Present(bazooka.Snapshot{State: bazooka.StatePlaying})
	if !p.musicOn {
		t.Error("player should track that a session is playing")
	}
	p.Present(bazooka.Snapshot{State: bazooka.StateGameOver})
	if p.musicOn {
		t.Error("music should be off after game over")
	}
	p.Close()

	if p.played != 0 {
		t.Errorf("disabled player played %d cues", p.played)
	}
}

func TestPlayerIsSink(t *testing.T) {
	var _ bazooka.Sink = NewPlayer(config.AudioConfig{}, nil)
}

func TestPlayerCloseBeforeInit(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: true, Music: true, Volume: 1}, nil)

	p.Present(bazooka.Snapshot{State: bazooka.StatePlaying})
	p.Close()

	if p.music != nil || p.initialized {
		t.Error("closing an unopened player should leave it untouched")
	}
	if !p.musicOn {
		t.Error("session state should still be tracked")
	}
}
