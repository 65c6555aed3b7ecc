package engine

import (
	"github.com/vovakirdan/snake-cascade/internal/core"
)

// Segment is a single occupied cell of the actor, together with its
// animation attributes. Geometry and length are mutated only by the Engine;
// Color and CascadeStart are mutated only by the Cascade machine. This
// field-level ownership split is what lets the simulation clock and the
// animation clock interleave without corrupting each other.
type Segment struct {
	Cell         core.Cell
	Color        core.ColorState
	CascadeStart uint64 // Animation tick at which this segment joins the wave
}

// Actor is the ordered sequence of segments forming the snake body.
// Head at index 0, tail at the last index. No two segments ever share a
// cell; the Engine enforces this by construction on every tick.
type Actor struct {
	segs []Segment
}

// NewActor creates a single-segment actor at the given cell.
func NewActor(start core.Cell) *Actor {
	return &Actor{
		segs: []Segment{{Cell: start}},
	}
}

// Head returns the cell occupied by the head segment.
func (a *Actor) Head() core.Cell {
	return a.segs[0].Cell
}

// Len returns the number of segments.
func (a *Actor) Len() int {
	return len(a.segs)
}

// Occupies reports whether any segment (tail included) sits on the cell.
// Linear scan; the grid is small by design.
func (a *Actor) Occupies(c core.Cell) bool {
	for _, seg := range a.segs {
		if seg.Cell == c {
			return true
		}
	}
	return false
}

// SegmentAt returns a pointer to the segment occupying the cell, if any.
func (a *Actor) SegmentAt(c core.Cell) (*Segment, bool) {
	for i := range a.segs {
		if a.segs[i].Cell == c {
			return &a.segs[i], true
		}
	}
	return nil, false
}

// Prepend adds a new head segment. The new head starts colorless; its
// CascadeStart is one past the current cascade counter so an active wave
// treats it as not yet reached and sweeps it from phase zero.
func (a *Actor) Prepend(head core.Cell, cascadeTick uint64) {
	seg := Segment{Cell: head, CascadeStart: cascadeTick + 1}
	a.segs = append([]Segment{seg}, a.segs...)
}

// TrimTail removes the tail segment. The actor never shrinks below one
// segment.
func (a *Actor) TrimTail() {
	if len(a.segs) > 1 {
		a.segs = a.segs[:len(a.segs)-1]
	}
}

// Segments returns a copy of the segment sequence, head first.
func (a *Actor) Segments() []Segment {
	out := make([]Segment, len(a.segs))
	copy(out, a.segs)
	return out
}
