package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/snake-cascade/internal/core"
)

// Runner drives an Engine with real time: a one-shot simulation timer
// re-armed after every tick with the engine's current period, and a fixed
// ticker for the animation clock. Everything runs on a single goroutine,
// so the two periodic callbacks interleave but never overlap, and external
// control calls are serialized through the same loop.
//
// Tests do not need the Runner: they single-step Tick and AdvanceCascade
// directly.
type Runner struct {
	eng    *Engine
	ctrl   chan func()
	policy func(*Engine)
}

// NewRunner wraps an engine for real-time driving.
func NewRunner(eng *Engine) *Runner {
	return &Runner{
		eng:  eng,
		ctrl: make(chan func(), 16),
	}
}

// SetPolicy installs a callback invoked on the loop goroutine just before
// every simulation tick. Headless drivers use it for scripted steering.
// Must be set before Run.
func (r *Runner) SetPolicy(fn func(*Engine)) {
	r.policy = fn
}

// Do schedules fn onto the runner's loop goroutine.
func (r *Runner) Do(fn func()) {
	r.ctrl <- fn
}

// RequestDirection forwards a direction change request to the engine on
// the loop goroutine.
func (r *Runner) RequestDirection(d core.Direction) {
	r.Do(func() { r.eng.RequestDirection(d) })
}

// TogglePause forwards a pause toggle. The loop suspends or restarts both
// clocks to match the resulting state.
func (r *Runner) TogglePause() {
	r.Do(func() { r.eng.TogglePause() })
}

// Run starts the engine and loops until the context is cancelled or the
// run ends. While paused, both timer channels are disabled so no tick is
// scheduled; resuming re-arms the simulation timer with the last-known
// period and restarts the animation ticker.
func (r *Runner) Run(ctx context.Context) error {
	r.eng.Start()

	sim := time.NewTimer(r.eng.TickPeriod())
	defer sim.Stop()
	anim := time.NewTicker(r.eng.CascadePeriod())
	defer anim.Stop()

	for {
		var simC, animC <-chan time.Time
		if r.eng.State() == StateRunning {
			simC = sim.C
			animC = anim.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case fn := <-r.ctrl:
			before := r.eng.State()
			fn()
			after := r.eng.State()
			if before == StateRunning && after != StateRunning {
				r.suspend(sim, anim)
			}
			if before != StateRunning && after == StateRunning {
				sim.Reset(r.eng.TickPeriod())
				anim.Reset(r.eng.CascadePeriod())
			}

		case <-simC:
			if r.policy != nil {
				r.policy(r.eng)
			}
			r.eng.Tick()
			if r.eng.State() == StateGameOver {
				return nil
			}
			// Re-arm with the current period so a Grew outcome takes
			// effect before the next tick is scheduled.
			sim.Reset(r.eng.TickPeriod())

		case <-animC:
			r.eng.AdvanceCascade()
		}
	}
}

// suspend stops both clocks and drains any fire already queued, so resume
// does not deliver a stale tick.
func (r *Runner) suspend(sim *time.Timer, anim *time.Ticker) {
	if !sim.Stop() {
		select {
		case <-sim.C:
		default:
		}
	}
	anim.Stop()
	select {
	case <-anim.C:
	default:
	}
}
