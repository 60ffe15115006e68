package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galaxy-runner/internal/core"
	"github.com/vovakirdan/galaxy-runner/internal/scene"
)

// Model is the Bubble Tea model driving the scene machine. It owns the
// fixed-step tick loop; each tick advances the active scene by exactly one
// frame and the view is re-rendered from the screen buffer.
type Model struct {
	director *scene.Director
	screen   *core.Screen
	cfg      core.RuntimeConfig
	quitting bool
}

// NewModel creates a model positioned at the start menu. A zero seed is
// replaced with a time-based one so each run differs.
func NewModel(deps scene.Deps) Model {
	if deps.Runtime.Seed == 0 {
		deps.Runtime.Seed = time.Now().UnixNano()
	}
	return Model{
		director: scene.NewDirector(deps),
		screen:   core.NewScreen(deps.Runtime.ScreenW, deps.Runtime.ScreenH),
		cfg:      deps.Runtime,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		for _, ev := range TranslateKey(msg) {
			if m.director.HandleEvent(ev) {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.MouseMsg:
		if ev, ok := TranslateMouse(msg); ok {
			if m.director.HandleEvent(ev) {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.director.Update(1.0 / float64(m.cfg.TickRate)) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.cfg.TickRate)
	}

	return m, nil
}

// View renders the active scene into the screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.director.Render(m.screen)
	return m.screen.String()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(deps scene.Deps) error {
	p := tea.NewProgram(
		NewModel(deps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
