package engine

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/snake-cascade/internal/core"
)

// ErrBoardFull is returned when the actor occupies every grid cell and no
// target can be placed. The caller must treat this as terminal for the run.
var ErrBoardFull = errors.New("engine: no free cell for target")

// Spawner places the target at a uniformly random unoccupied cell.
type Spawner struct {
	rng         *rand.Rand
	grid        core.Grid
	maxAttempts int
}

// NewSpawner creates a spawner over the given grid.
func NewSpawner(rng *rand.Rand, grid core.Grid, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = 64
	}
	return &Spawner{rng: rng, grid: grid, maxAttempts: maxAttempts}
}

// Place samples random cells until one misses the actor, up to the attempt
// cap, then falls back to picking uniformly among the remaining free cells.
// The fallback keeps placement uniform and makes exhaustion an explicit
// ErrBoardFull instead of an unbounded loop.
func (s *Spawner) Place(a *Actor) (core.Cell, error) {
	for i := 0; i < s.maxAttempts; i++ {
		c := core.Cell{X: s.rng.Intn(s.grid.Size), Y: s.rng.Intn(s.grid.Size)}
		if !a.Occupies(c) {
			return c, nil
		}
	}

	// Attempt cap hit: the board is crowded, enumerate what's left.
	free := make([]core.Cell, 0, s.grid.Cells()-a.Len())
	for y := 0; y < s.grid.Size; y++ {
		for x := 0; x < s.grid.Size; x++ {
			c := core.Cell{X: x, Y: y}
			if !a.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Cell{}, ErrBoardFull
	}
	return free[s.rng.Intn(len(free))], nil
}
