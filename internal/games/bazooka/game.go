// Package bazooka implements Tiny Bazooka: the hero jumps over the ground
// line and fires rockets at enemies that scroll in from the right. Enemies
// that reach the left edge end the session.
//
// The package holds pure simulation. Drawing and sound are delegated to a
// Sink; input arrives as core.Action values through an event queue.
package bazooka

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-bazooka/internal/config"
	"github.com/vovakirdan/tiny-bazooka/internal/core"
)

// Game is the simulation context. It owns the hero, both entity pools, the
// spawner and the session state. It is not safe for concurrent use.
type Game struct {
	cfg     config.Config
	hero    Hero
	enemies *Pool[Enemy]
	rockets *Pool[Rocket]
	spawner *Spawner
	queue   *core.EventQueue
	sink    Sink
	logger  *log.Logger

	state     State
	score     int
	scoreText string
	closed    bool

	accumulator float64 // Unconsumed time in fixed-step mode
	seed        int64
}

// Option configures a Game.
type Option func(*Game)

// WithSink sets the presentation sink. Defaults to NopSink.
func WithSink(s Sink) Option {
	return func(g *Game) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSeed seeds the tier RNG. 0 means seed from the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// New creates a game in the Idle state. cfg is expected to be validated.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		hero:      NewHero(cfg.Hero, cfg.View),
		enemies:   NewPool[Enemy](16),
		rockets:   NewPool[Rocket](16),
		queue:     core.NewEventQueue(),
		sink:      NopSink{},
		logger:    log.New(io.Discard),
		state:     StateIdle,
		scoreText: formatScore(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.spawner = NewSpawner(cfg, g.seed)
	return g
}

// Push queues an input action for the next frame. Input arriving after a
// Close is dropped.
func (g *Game) Push(a core.Action) {
	if g.queue.Closed() {
		g.logger.Debug("dropping input after close", "action", a)
		return
	}
	g.queue.Push(a)
}

// Frame runs one presentation frame: drain queued input, advance the
// simulation by dt seconds, and hand a snapshot to the sink.
// Returns false once a Close action has been handled.
func (g *Game) Frame(dt float64) bool {
	for _, a := range g.queue.Drain() {
		g.HandleAction(a)
	}
	if g.closed {
		return false
	}

	if dt < 0 {
		dt = 0
	}
	g.advance(dt)

	g.sink.Present(g.Snapshot())
	return true
}

// advance steps the simulation once with dt, or in fixed increments when
// timing.fixed_step is set.
func (g *Game) advance(dt float64) {
	step := g.cfg.Timing.FixedStep
	if step <= 0 {
		g.Step(dt)
		return
	}

	g.accumulator += dt
	steps := 0
	for g.accumulator >= step && steps < g.cfg.Timing.MaxSubsteps {
		g.Step(step)
		g.accumulator -= step
		steps++
	}
	if g.accumulator >= step {
		g.logger.Debug("dropping simulation time", "seconds", g.accumulator)
		g.accumulator = 0
	}
}

// HandleAction applies one input action to the state machine.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionJump:
		if g.state == StatePlaying {
			g.hero.Jump(g.cfg.Hero.JumpImpulse)
		}
	case core.ActionFire:
		if g.state == StatePlaying {
			g.fire()
		} else {
			g.Start()
		}
	case core.ActionClose:
		if !g.closed {
			g.logger.Info("closing", "score", g.score, "state", g.state)
		}
		g.closed = true
	}
}

// Start resets the session and enters Playing.
func (g *Game) Start() {
	prev := g.state
	g.Reset()
	g.state = StatePlaying
	g.logger.Info("session started", "from", prev)
}

// Reset clears both pools and zeroes score and cadence timers.
// The hero keeps its position.
func (g *Game) Reset() {
	g.enemies.Clear()
	g.rockets.Clear()
	g.spawner.Reset()
	g.score = 0
	g.scoreText = formatScore(0)
	g.accumulator = 0
}

// fire launches a rocket from the hero's current position. It returns 0
// and launches nothing unless the game is Playing.
func (g *Game) fire() EntityID {
	if g.state != StatePlaying {
		return 0
	}
	id := g.rockets.Add(Rocket{
		Pos:   g.hero.Position(),
		Speed: g.cfg.Rocket.Speed,
		Size:  core.Vec2{X: g.cfg.Rocket.Width, Y: g.cfg.Rocket.Height},
	})
	g.sink.Play(SoundFire)
	return id
}

// Step advances the simulation by dt seconds. It does nothing unless the
// game is Playing. A GameOver raised part way through still lets the rest
// of the step run.
func (g *Game) Step(dt float64) {
	if g.state != StatePlaying {
		return
	}
	if dt < 0 {
		dt = 0
	}

	g.hero.Integrate(dt)

	if g.spawner.Advance(dt) {
		//nolint:errcheck // Failure is logged; the next cadence tick retries
		g.spawnEnemy(g.spawner.Pick())
	}

	g.updateEnemies(dt)
	g.updateRockets(dt)
	g.resolveCollisions()
}

// spawnEnemy inserts an enemy for the given tier. An invalid tier aborts
// the spawn.
func (g *Game) spawnEnemy(tier int) error {
	enemy, err := g.spawner.Enemy(tier)
	if err != nil {
		g.logger.Warn("spawn aborted", "error", err)
		return err
	}
	id := g.enemies.Add(enemy)
	g.logger.Debug("enemy spawned", "id", id, "tier", tier, "y", enemy.Pos.Y, "speed", enemy.Speed)
	return nil
}

func (g *Game) updateEnemies(dt float64) {
	g.enemies.Update(func(id EntityID, e *Enemy) bool {
		e.Advance(dt)
		if e.Pos.X < 0 {
			g.logger.Debug("enemy escaped", "id", id)
			g.gameOver()
			return false
		}
		return true
	})
}

func (g *Game) updateRockets(dt float64) {
	viewW := g.cfg.View.Width
	g.rockets.Update(func(_ EntityID, r *Rocket) bool {
		r.Advance(dt)
		return r.Pos.X <= viewW
	})
}

func (g *Game) resolveCollisions() {
	for _, hit := range resolveHits(g.rockets, g.enemies) {
		g.score++
		g.scoreText = formatScore(g.score)
		g.sink.Play(SoundHit)
		g.logger.Debug("enemy destroyed", "rocket", hit.Rocket, "enemy", hit.Enemy, "score", g.score)
	}
}

func (g *Game) gameOver() {
	if g.state != StatePlaying {
		return
	}
	g.state = StateGameOver
	g.logger.Info("game over", "score", g.score, "elapsed", g.spawner.Elapsed())
}

// State returns the current session state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Closed reports whether a Close action has been handled.
func (g *Game) Closed() bool {
	return g.closed
}

// Seed returns the RNG seed in use.
func (g *Game) Seed() int64 {
	return g.seed
}
