package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-cascade/internal/core"
	"github.com/vovakirdan/snake-cascade/internal/engine"
	"github.com/vovakirdan/snake-cascade/internal/storage"
)

var (
	flagSimTicks      int
	flagSimRecord     bool
	flagSimRealtime   bool
	flagSimDifficulty string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI, steered by a greedy
policy that chases the target while dodging walls and the body. Prints the
final state when the run ends or the tick budget is spent.

By default the clocks are fast-forwarded, so a long run finishes
instantly and the same seed always produces the same result. With
--realtime the run is paced by real timers instead.

Examples:
  snake-cascade sim --ticks 500 --seed 42
  snake-cascade sim --record
  snake-cascade sim --realtime --ticks 100`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Tick budget (0 = run until game over)")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the run to the database")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace the run with real timers")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-sim",
	})

	cfg, err := loadConfig(flagSimDifficulty)
	if err != nil {
		logger.Fatal("config error", "error", err)
	}

	eng, err := engine.New(cfg.EngineParams(flagSeed))
	if err != nil {
		logger.Fatal("cannot create engine", "error", err)
	}

	var events []storage.RunEvent
	collect := func(out engine.TickOutcome) {
		events = append(events, storage.RunEvent{
			Tick:  eng.Snapshot().Tick,
			Kind:  out.Kind.String(),
			X:     out.Head.X,
			Y:     out.Head.Y,
			Score: out.Score,
		})
	}
	eng.SetHooks(engine.Hooks{
		Grew: func(out engine.TickOutcome) {
			collect(out)
			logger.Info("grew", "tick", eng.Snapshot().Tick, "score", out.Score, "period", eng.TickPeriod())
		},
		Collided: func(out engine.TickOutcome) {
			collect(out)
			logger.Info("collided", "tick", eng.Snapshot().Tick, "cell", fmt.Sprintf("(%d,%d)", out.Head.X, out.Head.Y))
		},
		BoardFull: func(out engine.TickOutcome) {
			collect(out)
			logger.Info("board full", "tick", eng.Snapshot().Tick, "score", out.Score)
		},
	})

	logger.Info("starting run",
		"seed", eng.Seed(),
		"grid", eng.GridSize(),
		"ticks", flagSimTicks,
		"realtime", flagSimRealtime,
	)

	if flagSimRealtime {
		runRealtime(logger, eng)
	} else {
		runFastForward(eng)
	}

	snap := eng.Snapshot()
	outcome := "budget spent"
	if snap.State == engine.StateGameOver {
		if len(events) > 0 {
			outcome = events[len(events)-1].Kind
		} else {
			outcome = "game over"
		}
	}
	logger.Info("run finished",
		"outcome", outcome,
		"score", snap.Score,
		"length", snap.Length,
		"ticks", snap.Tick,
		"period", eng.TickPeriod(),
	)

	if flagSimRecord {
		recordSim(logger, eng, events, snap)
	}
}

// runFastForward single-steps both clocks without waiting. Cascade ticks
// are interleaved at the configured period ratio, so the wave progresses
// the same way it would in real time.
func runFastForward(eng *engine.Engine) {
	eng.Start()

	simPeriod := eng.TickPeriod()
	cascadePeriod := eng.CascadePeriod()
	var animDebt int64

	for i := 0; flagSimTicks == 0 || i < flagSimTicks; i++ {
		eng.RequestDirection(steer(eng))
		eng.Tick()
		if eng.State() != engine.StateRunning {
			return
		}

		// Each sim tick covers period/cascadePeriod animation ticks.
		simPeriod = eng.TickPeriod()
		animDebt += int64(simPeriod)
		for animDebt >= int64(cascadePeriod) {
			eng.AdvanceCascade()
			animDebt -= int64(cascadePeriod)
		}
	}
}

// runRealtime paces the run with the Runner's timers.
func runRealtime(logger *log.Logger, eng *engine.Engine) {
	r := engine.NewRunner(eng)
	r.SetPolicy(func(e *engine.Engine) {
		e.RequestDirection(steer(e))
	})

	ctx := context.Background()
	if flagSimTicks > 0 {
		// A generous wall-clock cap derived from the slowest possible pace.
		budget := eng.TickPeriod() * time.Duration(flagSimTicks+1)
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	if err := r.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("runner stopped", "error", err)
	}
}

// steer picks the direction that closes the distance to the target,
// falling back to any safe move. Greedy and shortsighted on purpose; it
// traps itself eventually, which is exactly what a run log needs.
func steer(e *engine.Engine) core.Direction {
	head := e.Head()
	target := e.Target()

	candidates := make([]core.Direction, 0, 4)
	if target.X > head.X {
		candidates = append(candidates, core.DirRight)
	}
	if target.X < head.X {
		candidates = append(candidates, core.DirLeft)
	}
	if target.Y > head.Y {
		candidates = append(candidates, core.DirDown)
	}
	if target.Y < head.Y {
		candidates = append(candidates, core.DirUp)
	}
	candidates = append(candidates, core.DirRight, core.DirDown, core.DirLeft, core.DirUp)

	for _, d := range candidates {
		dx, dy := d.Delta()
		next := head.Offset(dx, dy)
		if e.InBounds(next) && !e.Occupied(next) {
			return d
		}
	}
	// Boxed in; any direction loses.
	return core.DirRight
}

// recordSim persists the finished run and its event trail.
func recordSim(logger *log.Logger, eng *engine.Engine, events []storage.RunEvent, snap engine.Snapshot) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open run database", "error", err)
		return
	}
	defer store.Close()

	outcome := "collided"
	if len(events) > 0 && snap.State == engine.StateGameOver {
		outcome = events[len(events)-1].Kind
	}

	runID, err := store.SaveRun(storage.RunRecord{
		Seed:          eng.Seed(),
		GridSize:      eng.GridSize(),
		Score:         snap.Score,
		Length:        snap.Length,
		DurationTicks: snap.Tick,
		Outcome:       outcome,
	})
	if err != nil {
		logger.Error("cannot save run", "error", err)
		return
	}
	if err := store.SaveEvents(runID, events); err != nil {
		logger.Error("cannot save events", "error", err)
		return
	}
	logger.Info("run recorded", "id", runID, "events", len(events))
}
