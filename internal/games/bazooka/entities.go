package bazooka

import "github.com/vovakirdan/tiny-bazooka/internal/core"

// Enemy scrolls in from the right edge.
type Enemy struct {
	Pos   core.Vec2 // Sprite centre
	Speed float64   // Horizontal, negative = leftward
	Tier  int       // Spawn tier index
	Size  core.Vec2 // Footprint
}

// Advance moves the enemy horizontally by speed*dt.
func (e *Enemy) Advance(dt float64) {
	e.Pos = e.Pos.Add(core.Vec2{X: e.Speed * dt})
}

// Bounds returns the collision box.
func (e Enemy) Bounds() core.RectF {
	return core.RectAround(e.Pos, e.Size.X, e.Size.Y)
}

// Rocket is a projectile fired by the hero.
type Rocket struct {
	Pos   core.Vec2 // Sprite centre
	Speed float64   // Horizontal, positive = rightward
	Size  core.Vec2 // Footprint
}

// Advance moves the rocket horizontally by speed*dt.
func (r *Rocket) Advance(dt float64) {
	r.Pos = r.Pos.Add(core.Vec2{X: r.Speed * dt})
}

// Bounds returns the collision box.
func (r Rocket) Bounds() core.RectF {
	return core.RectAround(r.Pos, r.Size.X, r.Size.Y)
}
