package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/qwave/internal/experiment"
	"github.com/san-kum/qwave/internal/observe"
	"github.com/san-kum/qwave/internal/propagate"
	"github.com/san-kum/qwave/internal/quantum"
)

const stepsPerFrame = 4

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// LiveModel animates a wavepacket under the experiment's Hamiltonian.
type LiveModel struct {
	exp     *experiment.Experiment
	stepper *propagate.Stepper
	initial *quantum.WaveFunction
	cur     *quantum.WaveFunction
	norm0   float64
	running bool
}

func NewLiveModel(exp *experiment.Experiment) (*LiveModel, error) {
	psi0, err := exp.Packet()
	if err != nil {
		return nil, err
	}
	scheme, err := propagate.ParseScheme(exp.Cfg.Scheme)
	if err != nil {
		return nil, err
	}
	st, err := propagate.NewStepper(exp.H, exp.Cfg.Dt, propagate.Options{Scheme: scheme, AbsorbWidth: exp.Cfg.Absorb})
	if err != nil {
		return nil, err
	}
	return &LiveModel{
		exp:     exp,
		stepper: st,
		initial: psi0,
		cur:     psi0.Clone(),
		norm0:   psi0.Norm(exp.Grid),
		running: true,
	}, nil
}

func (m *LiveModel) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.cur = m.initial.Clone()
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerFrame; i++ {
				m.cur = m.stepper.Step(m.cur)
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *LiveModel) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.exp.Cfg.Potential)) + "\n")

	s.WriteString(graphStyle.Render(PlotDensity(m.cur, "|psi|^2")) + "\n")

	norm := m.cur.Norm(m.exp.Grid)
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3f", m.cur.Time)) + "\n")
	s.WriteString(labelStyle.Render("Norm") + valueStyle.Render(fmt.Sprintf("%.6f", norm)) + "\n")
	s.WriteString(labelStyle.Render("Drift") + valueStyle.Render(fmt.Sprintf("%.2e", norm-m.norm0)) + "\n")
	s.WriteString(labelStyle.Render("<x>") + valueStyle.Render(fmt.Sprintf("%.4f", observe.MeanPosition(m.exp.Grid, m.cur))) + "\n")
	s.WriteString(labelStyle.Render("<E>") + valueStyle.Render(fmt.Sprintf("%.4f", observe.Energy(m.exp.H, m.cur))) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(helpStyle.Render(fmt.Sprintf("%s  ·  SP:Pause R:Reset Q:Quit", status)))
	return s.String()
}
