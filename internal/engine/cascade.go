package engine

import (
	"github.com/vovakirdan/snake-cascade/internal/core"
)

// Cascade is the color-wave animation state machine. It runs on its own
// animation clock, independent of the simulation clock, and owns only the
// Color/CascadeStart fields of the actor's segments.
//
// States: Idle (no color mutation) and Active (wave in flight). A wave is
// started by the engine on a Grew outcome; each segment begins advancing at
// counter + index, a staggered delay proportional to its distance from the
// head. Once a segment has walked the whole palette it returns to the base
// color and stays there. The machine returns to Idle only when every
// segment has been reached by the wave and is back to base.
type Cascade struct {
	tick        uint64 // Monotonic counter, advances only while Active
	active      bool
	paletteSize int
}

// NewCascade creates an idle cascade machine over a palette prefix of the
// given size.
func NewCascade(paletteSize int) *Cascade {
	paletteSize = core.Clamp(paletteSize, 1, core.MaxPaletteSize)
	return &Cascade{paletteSize: paletteSize}
}

// Tick returns the current animation counter.
func (c *Cascade) Tick() uint64 {
	return c.tick
}

// Active reports whether a wave is in flight.
func (c *Cascade) Active() bool {
	return c.active
}

// Start begins a new wave over the actor: segment i starts at counter + i,
// and the head shows phase zero immediately.
func (c *Cascade) Start(a *Actor) {
	for i := range a.segs {
		a.segs[i].CascadeStart = c.tick + uint64(i)
		a.segs[i].Color = core.BaseState()
	}
	a.segs[0].Color = core.PhaseState(0)
	c.active = true
}

// Advance runs one animation tick. Segment phases derive from how many
// ticks the wave has been over them: a segment at elapsed e shows palette
// entry e while e < paletteSize, and base color once the wave has passed.
// Segments the wave has not reached yet are left untouched and hold the
// machine Active.
func (c *Cascade) Advance(a *Actor) {
	if !c.active {
		return
	}
	c.tick++

	idle := true
	for i := range a.segs {
		seg := &a.segs[i]
		if seg.CascadeStart > c.tick {
			idle = false
			continue
		}
		elapsed := c.tick - seg.CascadeStart
		if elapsed < uint64(c.paletteSize) {
			seg.Color = core.PhaseState(int(elapsed))
			idle = false
		} else {
			seg.Color = core.BaseState()
		}
	}

	if idle {
		c.active = false
	}
}

// Reset returns the machine to Idle and rewinds the counter. Used only on
// a full engine reset, never mid-run.
func (c *Cascade) Reset() {
	c.tick = 0
	c.active = false
}
