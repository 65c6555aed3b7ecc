package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-cascade/internal/core"
)

func TestSpawnerAvoidsActor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	grid := core.Grid{Size: 4}
	s := NewSpawner(rng, grid, 64)
	a := makeActor(
		core.Cell{X: 0, Y: 0},
		core.Cell{X: 1, Y: 0},
		core.Cell{X: 2, Y: 0},
		core.Cell{X: 2, Y: 1},
	)

	for i := 0; i < 200; i++ {
		c, err := s.Place(a)
		if err != nil {
			t.Fatalf("Place() failed: %v", err)
		}
		if a.Occupies(c) {
			t.Fatalf("Placed target %v on the actor", c)
		}
		if !grid.InBounds(c) {
			t.Fatalf("Placed target %v out of bounds", c)
		}
	}
}

func TestSpawnerSingleFreeCell(t *testing.T) {
	// Three of four cells occupied: the fallback enumeration must find the
	// last one every time.
	rng := rand.New(rand.NewSource(2))
	s := NewSpawner(rng, core.Grid{Size: 2}, 8)
	a := makeActor(
		core.Cell{X: 0, Y: 0},
		core.Cell{X: 0, Y: 1},
		core.Cell{X: 1, Y: 1},
	)

	for i := 0; i < 50; i++ {
		c, err := s.Place(a)
		if err != nil {
			t.Fatalf("Place() failed: %v", err)
		}
		if c != (core.Cell{X: 1, Y: 0}) {
			t.Fatalf("Place() = %v, expected the only free cell (1,0)", c)
		}
	}
}

func TestSpawnerBoardFull(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := NewSpawner(rng, core.Grid{Size: 2}, 8)
	a := makeActor(
		core.Cell{X: 0, Y: 0},
		core.Cell{X: 1, Y: 0},
		core.Cell{X: 0, Y: 1},
		core.Cell{X: 1, Y: 1},
	)

	_, err := s.Place(a)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("Place() error = %v, expected ErrBoardFull", err)
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a := makeActor(core.Cell{X: 5, Y: 5})
	s1 := NewSpawner(rand.New(rand.NewSource(42)), core.Grid{Size: 10}, 64)
	s2 := NewSpawner(rand.New(rand.NewSource(42)), core.Grid{Size: 10}, 64)

	for i := 0; i < 20; i++ {
		c1, err1 := s1.Place(a)
		c2, err2 := s2.Place(a)
		if err1 != nil || err2 != nil {
			t.Fatalf("Place() failed: %v / %v", err1, err2)
		}
		if c1 != c2 {
			t.Fatalf("Placement %d diverged: %v vs %v", i, c1, c2)
		}
	}
}
