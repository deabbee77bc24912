package bazooka

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tiny-bazooka/internal/config"
	"github.com/vovakirdan/tiny-bazooka/internal/core"
)

// ErrInvalidTier is returned when a spawn is requested for a tier that
// does not exist.
var ErrInvalidTier = errors.New("invalid spawn tier")

// Tier is a resolved (lane height, speed) preset in world units.
type Tier struct {
	Y     float64
	Speed float64
}

// Spawner decides when enemies appear and which tier they use.
type Spawner struct {
	interval  float64
	tiers     []Tier
	spawnX    float64
	enemySize core.Vec2
	rng       *rand.Rand

	elapsed   float64 // Playing time since the last reset
	lastSpawn float64 // Value of elapsed at the last spawn
}

// NewSpawner resolves tier ratios against the view and seeds the RNG.
func NewSpawner(cfg config.Config, seed int64) *Spawner {
	tiers := make([]Tier, len(cfg.Spawner.Tiers))
	for i, t := range cfg.Spawner.Tiers {
		tiers[i] = Tier{Y: cfg.View.Height * t.YRatio, Speed: t.Speed}
	}
	return &Spawner{
		interval:  cfg.Spawner.Interval,
		tiers:     tiers,
		spawnX:    cfg.View.Width,
		enemySize: core.Vec2{X: cfg.Enemy.Width, Y: cfg.Enemy.Height},
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Advance adds dt to the cadence timer and reports whether a spawn is due.
// The timer restarts from the current elapsed time, so at most one spawn
// happens per call however large dt is.
func (s *Spawner) Advance(dt float64) bool {
	s.elapsed += dt
	if s.elapsed >= s.lastSpawn+s.interval {
		s.lastSpawn = s.elapsed
		return true
	}
	return false
}

// Pick draws a tier index uniformly at random.
func (s *Spawner) Pick() int {
	return s.rng.Intn(len(s.tiers))
}

// Enemy builds an enemy for the given tier at the right edge of the view.
func (s *Spawner) Enemy(tier int) (Enemy, error) {
	if tier < 0 || tier >= len(s.tiers) {
		return Enemy{}, fmt.Errorf("%w: %d (have %d)", ErrInvalidTier, tier, len(s.tiers))
	}
	t := s.tiers[tier]
	return Enemy{
		Pos:   core.Vec2{X: s.spawnX, Y: t.Y},
		Speed: t.Speed,
		Tier:  tier,
		Size:  s.enemySize,
	}, nil
}

// Elapsed returns accumulated Playing time since the last reset.
func (s *Spawner) Elapsed() float64 {
	return s.elapsed
}

// Reset zeroes both cadence timers. The RNG keeps its sequence.
func (s *Spawner) Reset() {
	s.elapsed = 0
	s.lastSpawn = 0
}
