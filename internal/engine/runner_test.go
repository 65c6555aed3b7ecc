package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/snake-cascade/internal/core"
)

func runnerParams(gridSize int, base time.Duration) Params {
	return Params{
		GridSize:      gridSize,
		BasePeriod:    base,
		MinPeriod:     base,
		CascadePeriod: base / 2,
		PaletteSize:   7,
		SpawnAttempts: 64,
		Seed:          1,
	}
}

func runnerSnapshot(t *testing.T, r *Runner) Snapshot {
	t.Helper()
	ch := make(chan Snapshot, 1)
	r.Do(func() { ch <- r.eng.Snapshot() })
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("Runner loop did not serve the snapshot request")
		return Snapshot{}
	}
}

func TestRunnerRunsToGameOver(t *testing.T) {
	// The default direction is right; from the center of a small grid the
	// actor reaches the wall within a handful of ticks.
	e, err := New(runnerParams(8, 2*time.Millisecond))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	r := NewRunner(e)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run() = %v, expected clean game-over return", err)
	}
	if e.State() != StateGameOver {
		t.Errorf("State = %s after Run, expected game_over", e.State())
	}
	if e.Snapshot().Tick == 0 {
		t.Error("Runner never ticked the simulation")
	}
}

func TestRunnerContextCancel(t *testing.T) {
	e, err := New(runnerParams(40, 500*time.Millisecond))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	r := NewRunner(e)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, expected context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}

func TestRunnerPauseStopsClocks(t *testing.T) {
	// A large grid and a slow period keep the actor far from the wall for
	// the duration of the test.
	e, err := New(runnerParams(40, 50*time.Millisecond))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	r := NewRunner(e)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(120 * time.Millisecond)
	r.TogglePause()
	before := runnerSnapshot(t, r)
	if before.State != StatePaused {
		t.Fatalf("State = %s after pause, expected paused", before.State)
	}

	time.Sleep(200 * time.Millisecond)
	after := runnerSnapshot(t, r)
	if after != before {
		t.Errorf("Paused runner advanced the engine:\n%+v\nvs\n%+v", after, before)
	}

	// Resume and confirm the simulation clock is live again.
	r.TogglePause()
	time.Sleep(150 * time.Millisecond)
	resumed := runnerSnapshot(t, r)
	if resumed.Tick <= after.Tick {
		t.Error("Runner did not resume ticking after unpause")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}

func TestRunnerDirectionForwarding(t *testing.T) {
	e, err := New(runnerParams(40, 20*time.Millisecond))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	r := NewRunner(e)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	startY := runnerSnapshot(t, r).HeadY
	r.RequestDirection(core.DirDown)
	time.Sleep(100 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}

	if e.Snapshot().HeadY == startY {
		t.Error("Direction request never reached the engine")
	}
}
