package tui

import "github.com/vovakirdan/tiny-bazooka/internal/games/bazooka"

// flashFrames is how many frames the score stays highlighted after a hit.
const flashFrames = 8

// Presenter is the terminal's bazooka.Sink. It keeps the last snapshot for
// View and turns hit cues into a short score flash.
type Presenter struct {
	snap  bazooka.Snapshot
	have  bool
	flash int
}

// NewPresenter creates an empty presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present stores the frame's snapshot.
func (p *Presenter) Present(s bazooka.Snapshot) {
	p.snap = s
	p.have = true
	if p.flash > 0 {
		p.flash--
	}
}

// Play reacts to audio cues visually.
func (p *Presenter) Play(s bazooka.Sound) {
	if s == bazooka.SoundHit {
		p.flash = flashFrames
	}
}

// Snapshot returns the last presented snapshot, if any.
func (p *Presenter) Snapshot() (bazooka.Snapshot, bool) {
	return p.snap, p.have
}

// Flashing reports whether the score should be highlighted.
func (p *Presenter) Flashing() bool {
	return p.flash > 0
}
