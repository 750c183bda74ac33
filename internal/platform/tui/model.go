package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kanadn/dino-run-game/internal/config"
	"github.com/kanadn/dino-run-game/internal/core"
	"github.com/kanadn/dino-run-game/internal/game"
)

// Model is the Bubble Tea model for the runner. It owns the session, arms
// the three timers (simulation tick, jump tick, spawn delay) with the current
// session generation, and renders snapshots. Every state mutation happens on
// the single Bubble Tea goroutine, so callbacks run to completion without
// explicit locking.
type Model struct {
	sess     *game.Session
	cfg      config.Config
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	termW    int
	termH    int
	quitting bool
}

// NewModel creates a model for one play session. An empty planet name keeps
// the default planet.
func NewModel(cfg config.Config, seed int64, planet string) Model {
	sess := game.NewSession(cfg, seed)
	if planet != "" {
		sess.ChangePlanet(planet)
	}

	return Model{
		sess:   sess,
		cfg:    cfg,
		screen: core.NewScreen(cfg.Field.Width, cfg.Field.Height),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		termW:  cfg.Field.Width,
		termH:  cfg.Field.Height + 1,
	}
}

// Init starts with no timers armed; the session sits in Ready until the
// action key fires.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SimTickMsg:
		if m.sess.AdvanceSim(msg.Gen) {
			return m, simTickCmd(m.sess.TickPeriod(), msg.Gen)
		}
		return m, nil

	case JumpTickMsg:
		if m.sess.AdvanceJump(msg.Gen, msg.At) {
			return m, jumpTickCmd(m.sess.TickPeriod(), msg.Gen)
		}
		return m, nil

	case SpawnMsg:
		if next, rearm := m.sess.SpawnTimerFired(msg.Gen); rearm {
			return m, spawnCmd(next, msg.Gen)
		}
		return m, nil
	}

	return m, nil
}

// handleKey maps key presses onto session operations.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.PrevPlanet):
		// Changing physics mid-flight is disallowed; selection only works
		// from the Ready screen.
		if m.sess.Status() == game.StatusReady {
			m.sess.CyclePlanet(-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPlanet):
		if m.sess.Status() == game.StatusReady {
			m.sess.CyclePlanet(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Action):
		return m.handleAction()
	}

	return m, nil
}

// handleAction fires the unified trigger and arms whatever timers the
// resulting transition needs.
func (m Model) handleAction() (tea.Model, tea.Cmd) {
	if m.sess.Status() == game.StatusGameOver {
		// Fresh obstacle pattern for the next run
		m.sess.Reseed(time.Now().UnixNano())
	}

	switch m.sess.HandleAction(time.Now()) {
	case game.ActionStarted:
		gen := m.sess.Generation()
		return m, tea.Batch(
			simTickCmd(m.sess.TickPeriod(), gen),
			spawnCmd(m.sess.SpawnDelay(), gen),
		)
	case game.ActionJumped:
		return m, jumpTickCmd(m.sess.TickPeriod(), m.sess.Generation())
	default:
		// ActionReset lands in Ready with no timers; ActionIgnored is a
		// mid-air trigger.
		return m, nil
	}
}

// View renders the field centered in the terminal with a help line below.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.sess.Snapshot(), m.cfg, m.sess.Profile())

	content := RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
	if m.termW > m.cfg.Field.Width || m.termH > m.cfg.Field.Height+1 {
		return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.Config, seed int64, planet string) error {
	p := tea.NewProgram(
		NewModel(cfg, seed, planet),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
