package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/srcsim/internal/engine"
	"github.com/san-kum/srcsim/internal/plot"
	"github.com/san-kum/srcsim/internal/source"
	"github.com/san-kum/srcsim/internal/stats"
)

const (
	graphWidth  = 72
	graphHeight = 16
	chunkSize   = 500
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type attribute int

const (
	attrEnergy attribute = iota
	attrPositionXY
	attrPositionRZ
	attrDirection
	numAttrs
)

func (a attribute) String() string {
	switch a {
	case attrEnergy:
		return "energy"
	case attrPositionXY:
		return "position x-y"
	case attrPositionRZ:
		return "position r-z"
	default:
		return "direction"
	}
}

type TickMsg time.Time

// Model accumulates particle batches from one source configuration and
// live-renders the selected attribute.
type Model struct {
	name    string
	sources []*source.Source
	seed    int64

	batch   *engine.Batch
	rounds  int
	attr    attribute
	running bool
	err     error
}

func NewModel(name string, sources []*source.Source, seed int64) Model {
	return Model{
		name:    name,
		sources: sources,
		seed:    seed,
		batch:   &engine.Batch{},
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "a", "tab":
			m.attr = (m.attr + 1) % numAttrs
		case "r":
			m.batch = &engine.Batch{}
			m.rounds = 0
		}
	case TickMsg:
		if m.running {
			eng := engine.New(m.seed + int64(m.rounds))
			chunk, err := eng.Run(context.Background(), m.sources, chunkSize)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.batch = m.batch.Merge(chunk)
			m.rounds++
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("srcsim live: %s (%s)", m.name, m.attr)))
	b.WriteString("\n")

	if len(m.batch.Particles) == 0 {
		b.WriteString(graphStyle.Render("sampling..."))
		return b.String()
	}

	fig := m.figure()
	if fig != nil {
		b.WriteString(graphStyle.Render(fig.Render(graphWidth, graphHeight)))
	}
	b.WriteString("\n")

	s := stats.Summarize(m.batch.Energies())
	rows := []struct{ label, value string }{
		{"particles", fmt.Sprintf("%d", len(m.batch.Particles))},
		{"sources", fmt.Sprintf("%d", len(m.sources))},
		{"mean energy", fmt.Sprintf("%.4g eV", s.Mean)},
		{"std dev", fmt.Sprintf("%.4g eV", s.StdDev)},
		{"range", fmt.Sprintf("[%.4g, %.4g] eV", s.Min, s.Max)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	state := "running"
	if !m.running {
		state = "paused"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space pause  a attribute  r reset  q quit", state)))
	return b.String()
}

func (m Model) figure() *plot.Figure {
	var fig *plot.Figure
	switch m.attr {
	case attrEnergy:
		fig, _ = plot.Energy(nil, m.name, m.batch.Energies())
	case attrPositionXY:
		fig, _ = plot.Position(nil, m.name, m.batch.Particles, plot.XY)
	case attrPositionRZ:
		fig, _ = plot.Position(nil, m.name, m.batch.Particles, plot.RZ)
	case attrDirection:
		fig, _ = plot.Direction(nil, m.name, m.batch.Particles)
	}
	return fig
}

// Err reports a sampling failure that terminated the program.
func (m Model) Err() error { return m.err }
