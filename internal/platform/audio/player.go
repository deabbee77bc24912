// Package audio plays the game's sound cues through the system speaker.
// Every sound is synthesized; no assets are loaded.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tiny-bazooka/internal/config"
	"github.com/vovakirdan/tiny-bazooka/internal/games/bazooka"
)

// Player is a bazooka.Sink that only handles sound. Until Init succeeds
// every call is a no-op, so a machine without audio still runs the game.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	music       *beep.Ctrl
	logger      *log.Logger
	initialized bool
	musicOn     bool
	played      int
}

// NewPlayer creates a player. logger may be nil.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker and starts the background loop when enabled.
// A disabled player returns nil without touching the device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)

	if p.cfg.Music {
		p.music = &beep.Ctrl{Streamer: newVolume(newBassline(sampleRate), p.cfg.Volume*0.5), Paused: true}
		speaker.Lock()
		p.mixer.Add(p.music)
		speaker.Unlock()
	}

	p.initialized = true
	p.logger.Debug("audio ready", "rate", int(sampleRate), "music", p.cfg.Music)
	return nil
}

// Play mixes in the streamer for a cue.
func (p *Player) Play(s bazooka.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := effect(s, sampleRate, p.cfg.Volume)
	if st == nil {
		p.logger.Warn("unknown sound cue", "sound", s)
		return
	}

	// The mixer is read from the speaker goroutine.
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
	p.played++
}

// Present follows the session state: the background loop only runs while
// a session is being played.
func (p *Player) Present(s bazooka.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	playing := s.State == bazooka.StatePlaying
	if p.musicOn == playing {
		return
	}
	p.musicOn = playing
	p.setMusicPaused(!playing)
}

// setMusicPaused pauses or resumes the background loop. p.mu must be held.
func (p *Player) setMusicPaused(paused bool) {
	if p.music == nil || !p.initialized {
		return
	}
	speaker.Lock()
	p.music.Paused = paused
	speaker.Unlock()
}

// Close silences everything. The speaker itself stays open.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.setMusicPaused(true)
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	p.initialized = false
	p.logger.Debug("audio closed", "cues", p.played)
}
