package bazooka

import "github.com/vovakirdan/tiny-bazooka/internal/core"

// Autopilot produces input for headless runs. It starts the session, fires
// on a fixed interval and optionally jumps on another. When the game ends
// it starts a new session only if Restart is set.
type Autopilot struct {
	FireEvery float64 // Seconds between shots; 0 disables firing
	JumpEvery float64 // Seconds between jumps; 0 disables jumping
	Restart   bool

	sinceFire float64
	sinceJump float64
	started   bool
}

// Actions returns the actions to push before a frame of length dt.
func (a *Autopilot) Actions(state State, dt float64) []core.Action {
	if state != StatePlaying {
		if !a.started || a.Restart {
			a.started = true
			a.sinceFire, a.sinceJump = 0, 0
			return []core.Action{core.ActionFire}
		}
		return nil
	}

	var out []core.Action
	a.sinceFire += dt
	a.sinceJump += dt

	if a.JumpEvery > 0 && a.sinceJump >= a.JumpEvery {
		a.sinceJump = 0
		out = append(out, core.ActionJump)
	}
	if a.FireEvery > 0 && a.sinceFire >= a.FireEvery {
		a.sinceFire = 0
		out = append(out, core.ActionFire)
	}
	return out
}

// Simulate drives g for the given number of seconds with fixed frames of dt
// seconds, feeding it input from the autopilot. It stops early when the
// game is closed or, without Restart, when the session ends.
// Returns the number of frames run.
func Simulate(g *Game, pilot *Autopilot, seconds, dt float64) int {
	if dt <= 0 {
		return 0
	}
	frames := 0
	for t := 0.0; t < seconds; t += dt {
		for _, a := range pilot.Actions(g.State(), dt) {
			g.Push(a)
		}
		if !g.Frame(dt) {
			break
		}
		frames++
		if g.State() == StateGameOver && !pilot.Restart {
			break
		}
	}
	return frames
}
