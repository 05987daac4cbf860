// Package viz renders a live terminal view of an integration run.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/numlab/numlab/internal/models"
	"github.com/numlab/numlab/internal/ode"
)

const historyCapacity = 600

type TickMsg time.Time

// Model steps one ODE system with RK4 on every frame and keeps a
// rolling history of the first state component for plotting.
type Model struct {
	model         models.Model
	state         ode.State
	initialState  ode.State
	t, dt         float64
	fps           int
	stepsPerFrame int
	running       bool
	history       []float64
	energyHistory []float64
}

func NewModel(m models.Model, initState ode.State, dt float64, fps int) Model {
	steps := int(1.0 / (float64(fps) * dt))
	if steps < 1 {
		steps = 1
	}
	return Model{
		model:         m,
		state:         initState.Clone(),
		initialState:  initState.Clone(),
		dt:            dt,
		fps:           fps,
		stepsPerFrame: steps,
		running:       true,
		history:       make([]float64, 0, historyCapacity),
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the integration.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the integration by one frame of wall time.
func (m *Model) step() {
	for i := 0; i < m.stepsPerFrame; i++ {
		m.state = ode.RK4(m.state, m.model.Deriv, m.t, m.dt)
		m.t += m.dt
	}

	m.history = append(m.history, m.state[0])
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}

	if m.model.Energy != nil {
		m.energyHistory = append(m.energyHistory, m.model.Energy(m.state))
		if len(m.energyHistory) > historyCapacity {
			m.energyHistory = m.energyHistory[1:]
		}
	}
}

func (m *Model) reset() {
	m.t = 0
	m.state = m.initialState.Clone()
	m.history = m.history[:0]
	m.energyHistory = m.energyHistory[:0]
}

// View renders the TUI interface.
func (m Model) View() string {
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var graph string
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("%s vs time", m.model.Labels[0])),
		)
		graph = graphStyle.Render(chart)
	} else {
		graph = graphStyle.Render("collecting samples...")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.model.Name)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Dt") + valueStyle.Render(fmt.Sprintf("%.4fs", m.dt)) + "\n")
	for i, label := range m.model.Labels {
		if i >= len(m.state) {
			break
		}
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%.4f", m.state[i])) + "\n")
	}
	if len(m.energyHistory) > 0 {
		energy := m.energyHistory[len(m.energyHistory)-1]
		s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", energy)) + "\n")
	}
	s.WriteString(helpStyle.Render("\nSP:Pause  R:Reset  Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, graph, statsStyle.Render(s.String()))
}

// RunLive starts the live view and blocks until the user quits.
func RunLive(m models.Model, initState ode.State, dt float64, fps int) error {
	p := tea.NewProgram(NewModel(m, initState, dt, fps))
	_, err := p.Run()
	return err
}
