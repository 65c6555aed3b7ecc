package engine

import "github.com/vovakirdan/snake-cascade/internal/core"

// Snapshot captures the observable engine state for determinism testing
// and run recording.
type Snapshot struct {
	Tick          uint64
	Score         int
	Length        int
	HeadX         int
	HeadY         int
	Dir           core.Direction
	TargetX       int
	TargetY       int
	PeriodMs      int64
	State         RunState
	CascadeTick   uint64
	CascadeActive bool
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	head := e.actor.Head()
	return Snapshot{
		Tick:          e.tick,
		Score:         e.score,
		Length:        e.actor.Len(),
		HeadX:         head.X,
		HeadY:         head.Y,
		Dir:           e.dir,
		TargetX:       e.target.X,
		TargetY:       e.target.Y,
		PeriodMs:      e.period.Milliseconds(),
		State:         e.state,
		CascadeTick:   e.cascade.Tick(),
		CascadeActive: e.cascade.Active(),
	}
}
