package bazooka

import (
	"fmt"

	"github.com/vovakirdan/tiny-bazooka/internal/core"
)

// Overlay text shown while not playing.
const (
	HeadingText  = "Tiny Bazooka"
	TutorialText = "Press Space Key to Fire and Start Game, Up Arrow to Jump"
)

// Overlay tells the presentation which text layer to draw.
type Overlay int

const (
	OverlayTitle Overlay = iota // Heading and tutorial
	OverlayScore                // Score only
)

// HeroView is the drawable state of the hero.
type HeroView struct {
	Pos        core.Vec2
	Size       core.Vec2
	Frame      int
	FrameCount int
	Grounded   bool
	JumpCount  int
}

// EntityView is the drawable state of an enemy or rocket.
type EntityView struct {
	ID   EntityID
	Pos  core.Vec2
	Size core.Vec2
	Tier int // Enemies only
}

// Snapshot is a copy of everything the presentation needs for one frame.
// It shares no memory with the game.
type Snapshot struct {
	State     State
	Overlay   Overlay
	Score     int
	ScoreText string
	Heading   string
	Tutorial  string

	View    core.Vec2 // World size
	Ground  float64   // Y of the ground line
	Elapsed float64   // Playing time this session

	Hero    HeroView
	Enemies []EntityView
	Rockets []EntityView
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:     g.state,
		Overlay:   OverlayScore,
		Score:     g.score,
		ScoreText: g.scoreText,
		View:      core.Vec2{X: g.cfg.View.Width, Y: g.cfg.View.Height},
		Ground:    g.hero.Ground(),
		Elapsed:   g.spawner.Elapsed(),
		Hero: HeroView{
			Pos:        g.hero.Position(),
			Size:       g.hero.size,
			Frame:      g.hero.Frame(),
			FrameCount: g.hero.frameCount,
			Grounded:   g.hero.Grounded(),
			JumpCount:  g.hero.JumpCount(),
		},
		Enemies: make([]EntityView, 0, g.enemies.Len()),
		Rockets: make([]EntityView, 0, g.rockets.Len()),
	}

	if g.state.ShowsTitle() {
		s.Overlay = OverlayTitle
		s.Heading = HeadingText
		s.Tutorial = TutorialText
	}

	g.enemies.Each(func(id EntityID, e Enemy) {
		s.Enemies = append(s.Enemies, EntityView{ID: id, Pos: e.Pos, Size: e.Size, Tier: e.Tier})
	})
	g.rockets.Each(func(id EntityID, r Rocket) {
		s.Rockets = append(s.Rockets, EntityView{ID: id, Pos: r.Pos, Size: r.Size})
	})

	return s
}

func formatScore(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
