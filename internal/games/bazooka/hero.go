package bazooka

import (
	"math"

	"github.com/vovakirdan/tiny-bazooka/internal/config"
	"github.com/vovakirdan/tiny-bazooka/internal/core"
)

// MaxJumps is how many jumps the hero may chain before touching the ground.
const MaxJumps = 2

// Hero is the player character. Position is the sprite centre; velocity is
// positive upward while screen Y grows downward.
type Hero struct {
	pos       core.Vec2
	velocity  float64
	mass      float64
	gravity   float64
	ground    float64 // Y of the ground line
	grounded  bool
	jumpCount int

	frameCount   int
	animDuration float64
	animElapsed  float64
	frame        int

	size core.Vec2
}

// NewHero places the hero according to the config. It starts airborne at
// start_y_ratio and falls to the ground once the game starts.
func NewHero(cfg config.HeroConfig, view config.ViewConfig) Hero {
	return Hero{
		pos: core.Vec2{
			X: view.Width * cfg.XRatio,
			Y: view.Height * cfg.StartYRatio,
		},
		mass:         cfg.Mass,
		gravity:      cfg.Gravity,
		ground:       view.Height * cfg.GroundRatio,
		frameCount:   cfg.FrameCount,
		animDuration: cfg.AnimDuration,
		size:         core.Vec2{X: cfg.Width, Y: cfg.Height},
	}
}

// Integrate advances animation and vertical motion by dt seconds and
// resolves landing on the ground line.
func (h *Hero) Integrate(dt float64) {
	h.animElapsed += dt
	h.frame = animFrame(h.animElapsed, h.animDuration, h.frameCount)

	h.velocity -= h.mass * h.gravity * dt
	h.pos.Y -= h.velocity * dt

	if h.pos.Y >= h.ground {
		h.pos.Y = h.ground
		h.velocity = 0
		h.grounded = true
		h.jumpCount = 0
	}
}

// Jump launches the hero with the given upward velocity.
// Returns false when the hero has already used all jumps.
func (h *Hero) Jump(impulse float64) bool {
	if h.jumpCount >= MaxJumps {
		return false
	}
	h.jumpCount++
	h.velocity = impulse
	h.grounded = false
	return true
}

// Position returns the sprite centre.
func (h *Hero) Position() core.Vec2 { return h.pos }

// Grounded reports whether the hero is standing on the ground line.
func (h *Hero) Grounded() bool { return h.grounded }

// JumpCount returns jumps used since the last landing.
func (h *Hero) JumpCount() int { return h.jumpCount }

// Frame returns the current animation frame index.
func (h *Hero) Frame() int { return h.frame }

// Ground returns the Y of the ground line.
func (h *Hero) Ground() float64 { return h.ground }

// animFrame maps elapsed time onto a looping frame index.
func animFrame(elapsed, duration float64, frames int) int {
	if frames <= 0 || duration <= 0 {
		return 0
	}
	f := int(math.Floor(elapsed/duration*float64(frames))) % frames
	if f < 0 {
		f += frames
	}
	return f
}
