package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-cascade/internal/core"
	"github.com/vovakirdan/snake-cascade/internal/engine"
	"github.com/vovakirdan/snake-cascade/internal/storage"
)

// Model is the Bubble Tea model driving a single run. It owns the two tick
// streams: simulation ticks rescheduled at the engine's current period, and
// animation ticks at the fixed cascade period. While the engine is not
// Running neither stream is rescheduled, so pausing genuinely stops both
// clocks instead of spinning no-op ticks.
type Model struct {
	eng       *engine.Engine
	screen    *core.Screen
	store     *storage.Store
	keyMapper *KeyMapper

	events   []storage.RunEvent
	recorded bool

	// In-flight markers prevent duplicate streams when a resume happens
	// before the last pre-pause message has been delivered.
	simLive  bool
	animLive bool

	quitting bool
}

// NewModel creates a model for the given engine. The store may be nil, in
// which case finished runs are not recorded.
func NewModel(eng *engine.Engine, store *storage.Store, width, height int) Model {
	return Model{
		eng:       eng,
		screen:    core.NewScreen(width, height),
		store:     store,
		keyMapper: NewKeyMapper(),
	}
}

// Init waits for input: the clocks start on the first steering key.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case SimTickMsg:
		return m.handleSimTick()

	case CascadeTickMsg:
		return m.handleCascadeTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, dir := m.keyMapper.MapKey(msg)

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionSteer:
		starting := m.eng.State() == engine.StateNotStarted
		m.eng.RequestDirection(dir)
		if starting {
			m.eng.Start()
		}
		return m.withClocks()

	case ActionPause:
		m.eng.TogglePause()
		if m.eng.State() == engine.StateRunning {
			return m.withClocks()
		}
		return m, nil

	case ActionRestart:
		if m.eng.State() == engine.StateGameOver {
			m.eng.Reset(0)
			m.events = nil
			m.recorded = false
		}
		return m, nil
	}

	return m, nil
}

// withClocks starts any tick stream that is not already in flight.
// No-op for streams with a pending message, so a quick pause/resume never
// doubles the cadence.
func (m Model) withClocks() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if !m.simLive {
		m.simLive = true
		cmds = append(cmds, simTickCmd(m.eng.TickPeriod()))
	}
	if !m.animLive {
		m.animLive = true
		cmds = append(cmds, cascadeTickCmd(m.eng.CascadePeriod()))
	}
	return m, tea.Batch(cmds...)
}

// handleSimTick advances the simulation and reschedules at the current
// period, so a growth speedup takes effect on the very next tick.
func (m Model) handleSimTick() (tea.Model, tea.Cmd) {
	m.simLive = false
	if m.eng.State() != engine.StateRunning {
		return m, nil
	}

	out := m.eng.Tick()
	switch out.Kind {
	case engine.OutcomeGrew, engine.OutcomeCollided, engine.OutcomeBoardFull:
		m.events = append(m.events, storage.RunEvent{
			Tick:  m.eng.Snapshot().Tick,
			Kind:  out.Kind.String(),
			X:     out.Head.X,
			Y:     out.Head.Y,
			Score: out.Score,
		})
	}

	if m.eng.State() == engine.StateGameOver {
		m.recordRun(out)
		return m, nil
	}

	m.simLive = true
	return m, simTickCmd(m.eng.TickPeriod())
}

// handleCascadeTick advances the color wave on the fixed animation clock.
func (m Model) handleCascadeTick() (tea.Model, tea.Cmd) {
	m.animLive = false
	if m.eng.State() != engine.StateRunning {
		return m, nil
	}

	m.eng.AdvanceCascade()
	m.animLive = true
	return m, cascadeTickCmd(m.eng.CascadePeriod())
}

// recordRun persists the finished run and its event trail (once).
func (m *Model) recordRun(out engine.TickOutcome) {
	if m.recorded || m.store == nil {
		return
	}
	m.recorded = true

	snap := m.eng.Snapshot()
	//nolint:errcheck // Best-effort save, the session continues regardless
	runID, err := m.store.SaveRun(storage.RunRecord{
		Seed:          m.eng.Seed(),
		GridSize:      m.eng.GridSize(),
		Score:         snap.Score,
		Length:        snap.Length,
		DurationTicks: snap.Tick,
		Outcome:       out.Kind.String(),
	})
	if err == nil {
		//nolint:errcheck // Same best-effort contract
		m.store.SaveEvents(runID, m.events)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.eng.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(eng *engine.Engine, store *storage.Store, width, height int) error {
	model := NewModel(eng, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
