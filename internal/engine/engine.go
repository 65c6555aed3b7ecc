// Package engine implements the tick-driven snake simulation: movement and
// collision rules, target placement, score-driven speed progression, and
// the color-cascade animation state machine. The package is pure logic with
// no timing or terminal dependencies; drivers (the TUI model, the headless
// Runner) invoke Tick and AdvanceCascade on their own clocks.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-cascade/internal/core"
)

// RunState is the lifecycle state of a run.
type RunState int

const (
	StateNotStarted RunState = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the run state.
func (s RunState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// OutcomeKind tags the result of a single simulation tick.
type OutcomeKind int

const (
	// OutcomeNone means the tick was a no-op (engine not running).
	OutcomeNone OutcomeKind = iota
	// OutcomeContinue means the actor advanced; length unchanged.
	OutcomeContinue
	// OutcomeGrew means the actor reached the target; length +1, new
	// target placed, speed recomputed, cascade wave started.
	OutcomeGrew
	// OutcomeCollided means the new head hit a wall or the actor itself;
	// the run is over.
	OutcomeCollided
	// OutcomeBoardFull means the actor filled the grid and no target
	// could be placed; the run is over.
	OutcomeBoardFull
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeContinue:
		return "continue"
	case OutcomeGrew:
		return "grew"
	case OutcomeCollided:
		return "collided"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// TickOutcome reports what a simulation tick did. Side effects of the tick
// are observable only through the outcome and the read-only accessors; the
// engine never renders or plays sounds itself.
type TickOutcome struct {
	Kind   OutcomeKind
	Head   core.Cell // Where the head moved (or tried to move)
	Target core.Cell // New target position, valid when Kind is OutcomeGrew
	Score  int       // Score after the tick
}

// Hooks are optional event callbacks for external collaborators (sound,
// score display, run recording). They are invoked synchronously at the end
// of the tick that produced the event, after all engine-owned mutations.
type Hooks struct {
	Grew      func(TickOutcome)
	Collided  func(TickOutcome)
	BoardFull func(TickOutcome)
}

// Params is the engine configuration, fixed at construction and re-applied
// on every reset.
type Params struct {
	GridSize        int
	BasePeriod      time.Duration // Simulation period at score zero
	PeriodDecrement time.Duration // Period reduction per point of score
	MinPeriod       time.Duration // Simulation period floor
	CascadePeriod   time.Duration // Fixed animation clock period
	PaletteSize     int           // Cascade palette prefix length (1..MaxPaletteSize)
	SpawnAttempts   int           // Random placement attempts before fallback
	Seed            int64         // RNG seed, 0 means derive from time
}

// Validate checks the parameters for values the engine cannot run with.
func (p Params) Validate() error {
	if p.GridSize < 2 {
		return fmt.Errorf("engine: grid size %d too small", p.GridSize)
	}
	if p.BasePeriod <= 0 || p.MinPeriod <= 0 {
		return fmt.Errorf("engine: tick periods must be positive")
	}
	if p.MinPeriod > p.BasePeriod {
		return fmt.Errorf("engine: min period %v exceeds base period %v", p.MinPeriod, p.BasePeriod)
	}
	if p.CascadePeriod <= 0 {
		return fmt.Errorf("engine: cascade period must be positive")
	}
	if p.PaletteSize < 1 || p.PaletteSize > core.MaxPaletteSize {
		return fmt.Errorf("engine: palette size %d out of range [1, %d]", p.PaletteSize, core.MaxPaletteSize)
	}
	return nil
}

// Engine owns the actor geometry, the target, the score, and the run
// state. It is the sole mutator of actor positions; the cascade machine it
// embeds is the sole mutator of per-segment color attributes.
type Engine struct {
	params Params
	rng    *rand.Rand
	grid   core.Grid

	actor   *Actor
	target  core.Cell
	dir     core.Direction
	pending core.Direction
	hasPend bool

	state  RunState
	score  int
	tick   uint64
	period time.Duration

	speed   SpeedCurve
	spawner *Spawner
	cascade *Cascade

	hooks Hooks
}

// New creates an engine and performs the initial reset.
func New(p Params) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		params: p,
		grid:   core.Grid{Size: p.GridSize},
		speed: SpeedCurve{
			Base:      p.BasePeriod,
			Decrement: p.PeriodDecrement,
			Min:       p.MinPeriod,
		},
	}
	e.Reset(p.Seed)
	return e, nil
}

// Reset discards and recreates the run: score zero, single-segment actor
// at the grid center, fresh random target, state NotStarted. A seed of
// zero picks one from the clock.
func (e *Engine) Reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.rng = rand.New(rand.NewSource(seed))
	e.params.Seed = seed

	e.spawner = NewSpawner(e.rng, e.grid, e.params.SpawnAttempts)
	if e.cascade == nil {
		e.cascade = NewCascade(e.params.PaletteSize)
	} else {
		e.cascade.Reset()
	}

	center := core.Cell{X: e.grid.Size / 2, Y: e.grid.Size / 2}
	e.actor = NewActor(center)
	e.dir = core.DirRight
	e.hasPend = false
	e.score = 0
	e.tick = 0
	e.period = e.speed.PeriodFor(0)
	e.state = StateNotStarted

	// A 2x2 grid or larger always has a free cell for the initial target.
	e.target, _ = e.spawner.Place(e.actor)
}

// SetHooks installs event callbacks. Pass the zero value to clear.
func (e *Engine) SetHooks(h Hooks) {
	e.hooks = h
}

// Start moves a fresh run into the Running state. Ignored otherwise.
func (e *Engine) Start() {
	if e.state == StateNotStarted {
		e.state = StateRunning
	}
}

// RequestDirection buffers a direction change to be applied at the start
// of the next tick. Requests during game over are silently ignored; the
// reverse-direction rule is enforced at the point of application so that a
// request queued behind a pending turn is validated against the direction
// actually in effect for that tick.
func (e *Engine) RequestDirection(d core.Direction) {
	if e.state == StateGameOver {
		return
	}
	e.pending = d
	e.hasPend = true
}

// TogglePause flips between Running and Paused. Drivers must gate both
// clocks on the resulting state; the engine itself freezes by refusing
// Tick and AdvanceCascade while paused.
func (e *Engine) TogglePause() {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
	case StatePaused:
		e.state = StateRunning
	}
}

// Tick advances the simulation by one step: apply the buffered direction,
// move the head, detect collisions, handle growth. No-op unless Running.
func (e *Engine) Tick() TickOutcome {
	if e.state != StateRunning {
		return TickOutcome{Kind: OutcomeNone, Score: e.score}
	}
	e.tick++

	// Apply the buffered direction, rejecting instant reversal.
	if e.hasPend {
		if e.pending != e.dir.Opposite() {
			e.dir = e.pending
		}
		e.hasPend = false
	}

	dx, dy := e.dir.Delta()
	newHead := e.actor.Head().Offset(dx, dy)

	// Collision check scans every segment including the tail: the tail
	// has not been removed yet at this point in the tick.
	if !e.grid.InBounds(newHead) || e.actor.Occupies(newHead) {
		e.state = StateGameOver
		out := TickOutcome{Kind: OutcomeCollided, Head: newHead, Score: e.score}
		if e.hooks.Collided != nil {
			e.hooks.Collided(out)
		}
		return out
	}

	e.actor.Prepend(newHead, e.cascade.Tick())

	if newHead == e.target {
		// Growth: keep the tail, bump the score, re-derive the period,
		// place a new target, and launch a cascade wave.
		e.score++
		e.period = e.speed.PeriodFor(e.score)

		next, err := e.spawner.Place(e.actor)
		if err != nil {
			e.state = StateGameOver
			out := TickOutcome{Kind: OutcomeBoardFull, Head: newHead, Score: e.score}
			if e.hooks.BoardFull != nil {
				e.hooks.BoardFull(out)
			}
			return out
		}
		e.target = next
		e.cascade.Start(e.actor)

		out := TickOutcome{Kind: OutcomeGrew, Head: newHead, Target: next, Score: e.score}
		if e.hooks.Grew != nil {
			e.hooks.Grew(out)
		}
		return out
	}

	e.actor.TrimTail()
	return TickOutcome{Kind: OutcomeContinue, Head: newHead, Score: e.score}
}

// AdvanceCascade runs one animation-clock tick of the cascade machine.
// No-op unless Running, so pausing freezes phases and the counter in
// place.
func (e *Engine) AdvanceCascade() {
	if e.state != StateRunning {
		return
	}
	e.cascade.Advance(e.actor)
}

// State returns the current run state.
func (e *Engine) State() RunState {
	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// TickPeriod returns the current speed-controlled simulation period.
// Drivers must pick this up immediately after a Grew outcome.
func (e *Engine) TickPeriod() time.Duration {
	return e.period
}

// CascadePeriod returns the fixed animation clock period.
func (e *Engine) CascadePeriod() time.Duration {
	return e.params.CascadePeriod
}

// GridSize returns the grid edge length.
func (e *Engine) GridSize() int {
	return e.grid.Size
}

// Seed returns the RNG seed of the current run.
func (e *Engine) Seed() int64 {
	return e.params.Seed
}

// Length returns the actor's segment count.
func (e *Engine) Length() int {
	return e.actor.Len()
}

// Target returns the current target cell.
func (e *Engine) Target() core.Cell {
	return e.target
}

// Head returns the cell under the actor's head.
func (e *Engine) Head() core.Cell {
	return e.actor.Head()
}

// Occupied reports whether a cell holds a body segment. Steering policies
// use this together with Head and Target to plan a move.
func (e *Engine) Occupied(c core.Cell) bool {
	return e.actor.Occupies(c)
}

// InBounds reports whether a cell lies on the grid.
func (e *Engine) InBounds(c core.Cell) bool {
	return e.grid.InBounds(c)
}

// CellColor resolves the display color for a grid cell. Priority order:
// actor body (cascade palette entry, or the base snake color), then
// target, then background.
func (e *Engine) CellColor(x, y int) core.Color {
	c := core.Cell{X: x, Y: y}
	if seg, ok := e.actor.SegmentAt(c); ok {
		if phase, waving := seg.Color.Phase(); waving {
			return core.CascadePalette[phase]
		}
		return core.ColorGreen
	}
	if c == e.target {
		return core.ColorYellow
	}
	return core.ColorDefault
}

// Render draws the HUD, the grid border, the target, and the actor into
// the screen buffer. Drivers call this between ticks only; within a tick
// all engine-owned mutations complete before any render read.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Score: %d  Length: %d  Speed: %dms", e.score, e.actor.Len(), e.period.Milliseconds())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	// Center the board below the HUD.
	boardX := core.Max((dst.Width()-(e.grid.Size+2))/2, 0)
	boardY := 2
	dst.DrawBox(core.NewRect(boardX, boardY, e.grid.Size+2, e.grid.Size+2))

	offX, offY := boardX+1, boardY+1
	dst.SetCell(offX+e.target.X, offY+e.target.Y, '*', core.ColorYellow)

	for i, seg := range e.actor.Segments() {
		glyph := 'o'
		if i == 0 {
			glyph = 'O'
		}
		dst.SetCell(offX+seg.Cell.X, offY+seg.Cell.Y, glyph, e.CellColor(seg.Cell.X, seg.Cell.Y))
	}

	overlay := func(text string, c core.Color) {
		x := core.Max((dst.Width()-len(text))/2, 0)
		dst.DrawTextColored(x, dst.Height()/2, text, c)
	}
	switch e.state {
	case StatePaused:
		overlay("Paused - press P to continue", core.ColorGray)
	case StateGameOver:
		overlay(fmt.Sprintf("Game Over - score %d, press R to restart", e.score), core.ColorBrightRed)
	case StateNotStarted:
		overlay("Press any arrow key to start", core.ColorGray)
	}
}
