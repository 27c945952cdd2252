package ui

import (
	"fmt"
	"strings"

	"lanternfish/internal/lanternfish"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	jumpTicks = 10
	barWidth  = 40
)

type stepperKeys struct {
	Step  key.Binding
	Jump  key.Binding
	End   key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultStepperKeys() stepperKeys {
	return stepperKeys{
		Step: key.NewBinding(
			key.WithKeys(" ", "right", "l"),
			key.WithHelp("space/→", "tick"),
		),
		Jump: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", fmt.Sprintf("+%d ticks", jumpTicks)),
		),
		End: key.NewBinding(
			key.WithKeys("e", "end"),
			key.WithHelp("e", "run to end"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k stepperKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Jump, k.Reset, k.Quit}
}

func (k stepperKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Jump, k.End},
		{k.Reset, k.Help, k.Quit},
	}
}

// StepperModel steps a school one tick at a time in the terminal.
type StepperModel struct {
	initial lanternfish.Histogram
	current lanternfish.Histogram
	tick    int
	ticks   int
	err     error

	keys     stepperKeys
	help     help.Model
	progress progress.Model
	styles   Styles
}

// NewStepperModel creates a stepper that stops after ticks ticks.
func NewStepperModel(h lanternfish.Histogram, ticks int, styles Styles) StepperModel {
	p := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	p.Width = barWidth
	return StepperModel{
		initial:  h,
		current:  h,
		ticks:    ticks,
		keys:     defaultStepperKeys(),
		help:     help.New(),
		progress: p,
		styles:   styles,
	}
}

// Tick returns the number of ticks simulated so far.
func (m StepperModel) Tick() int { return m.tick }

// Histogram returns the current state of the school.
func (m StepperModel) Histogram() lanternfish.Histogram { return m.current }

// Err returns the error that stopped the run, if any.
func (m StepperModel) Err() error { return m.err }

// Init initializes the model.
func (m StepperModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes.
func (m StepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.progress.Width = min(barWidth, max(msg.Width-4, 10))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Step):
			m.advance(1)
		case key.Matches(msg, m.keys.Jump):
			m.advance(jumpTicks)
		case key.Matches(msg, m.keys.End):
			m.advance(m.ticks - m.tick)
		case key.Matches(msg, m.keys.Reset):
			m.current = m.initial
			m.tick = 0
			m.err = nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *StepperModel) advance(n int) {
	for i := 0; i < n && m.tick < m.ticks && m.err == nil; i++ {
		if err := m.current.Tick(); err != nil {
			m.err = err
			return
		}
		m.tick++
	}
}

// View renders the histogram as horizontal bars.
func (m StepperModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" lanternfish ") + "\n\n")

	var peak uint64
	for _, n := range m.current {
		peak = max(peak, n)
	}
	for phase, n := range m.current {
		label := fmt.Sprintf("%d", phase)
		switch phase {
		case lanternfish.SpawnPhase:
			label = m.styles.Spawn.Render(label)
		case lanternfish.NewbornPhase:
			label = m.styles.Newborn.Render(label)
		default:
			label = m.styles.Muted.Render(label)
		}
		width := 0
		if peak > 0 {
			width = int(float64(n) / float64(peak) * barWidth)
		}
		bar := m.styles.Body.Render(strings.Repeat("█", width))
		sb.WriteString(fmt.Sprintf("%s %s %d\n", label, bar, n))
	}
	sb.WriteString("\n")

	total, err := m.current.Total()
	totalText := fmt.Sprintf("%d", total)
	if err != nil {
		totalText = "overflow"
	}
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Bold.Render(fmt.Sprintf("tick %d/%d", m.tick, m.ticks)),
		"  ",
		m.styles.Total.Render("population "+totalText),
	)
	sb.WriteString(status + "\n")

	var done float64 = 1
	if m.ticks > 0 {
		done = float64(m.tick) / float64(m.ticks)
	}
	sb.WriteString(m.progress.ViewAs(done) + "\n")

	if m.err != nil {
		sb.WriteString(m.styles.Error.Render("stopped: "+m.err.Error()) + "\n")
	}

	sb.WriteString("\n" + m.help.View(m.keys))
	return m.styles.Panel.Render(sb.String())
}
