package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mGW/internal/expr"
	"github.com/msto63/mGW/internal/logging"
	"github.com/msto63/mGW/internal/plot"
	"github.com/msto63/mGW/internal/session"
	"github.com/msto63/mGW/internal/store"
)

// View represents the two modes of the TUI
type View int

const (
	ViewInput View = iota // equation entry
	ViewPlot              // rendered plot
)

// Model is the main TUI model
type Model struct {
	// State
	view      View
	width     int
	height    int
	rendering bool
	err       error

	// Plot state
	equation string
	settings plot.Settings
	frame    string

	// Components
	input   textinput.Model
	spinner spinner.Model

	// Collaborators
	history store.HistoryStore
	logger  *logging.Logger
}

// NewModel creates a new TUI model. history may be nil when the plot
// history is disabled.
func NewModel(defaultZoom float64, history store.HistoryStore, logger *logging.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Gleichung mit 'x' und 'y' eingeben, z.B. y=sin(x)"
	ti.Focus()
	ti.CharLimit = expr.MaxEquationLength
	ti.Width = plot.GridWidth

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	settings := plot.DefaultSettings()
	if defaultZoom > 0 {
		settings.Zoom = defaultZoom
	}

	if logger == nil {
		logger = logging.GetDefault()
	}

	return Model{
		view:     ViewInput,
		input:    ti,
		spinner:  sp,
		settings: settings,
		history:  history,
		logger:   logger.WithName("tui"),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.view {
		case ViewInput:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				if m.frame != "" {
					// Back to the existing plot
					m.view = ViewPlot
					return m, nil
				}
				return m, tea.Quit
			case "enter":
				eq := strings.TrimSpace(m.input.Value())
				if eq != "" && !m.rendering {
					m.equation = eq
					m.settings = plot.DefaultSettings()
					m.view = ViewPlot
					cmd = m.startRender()
					return m, cmd
				}
			}

		case ViewPlot:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "n":
				m.view = ViewInput
				m.input.Reset()
				m.input.Focus()
				return m, textinput.Blink
			case "+", "=":
				return m.applyCommand(session.ZoomIn)
			case "-":
				return m.applyCommand(session.ZoomOut)
			case "left":
				return m.applyCommand(session.MoveLeft)
			case "right":
				return m.applyCommand(session.MoveRight)
			case "up":
				return m.applyCommand(session.MoveUp)
			case "down":
				return m.applyCommand(session.MoveDown)
			case "0":
				return m.applyCommand(session.Reset)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case renderedMsg:
		m.rendering = false
		m.frame = msg.frame

	case spinner.TickMsg:
		if m.rendering {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.view == ViewInput {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// applyCommand updates the view settings and triggers a re-render
func (m Model) applyCommand(cmd session.Command) (tea.Model, tea.Cmd) {
	if m.rendering {
		return m, nil
	}

	updated, err := session.Apply(m.settings, cmd)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.settings = updated
	render := m.startRender()
	return m, render
}

// startRender kicks off an asynchronous render of the current equation
func (m *Model) startRender() tea.Cmd {
	m.rendering = true
	m.err = nil

	equation := m.equation
	settings := m.settings
	history := m.history
	logger := m.logger

	render := func() tea.Msg {
		g := plot.Render(equation, settings)

		if history != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := history.Record(ctx, &store.Entry{
				Equation: equation,
				Zoom:     settings.Zoom,
				XOffset:  settings.XOffset,
				YOffset:  settings.YOffset,
			})
			if err != nil {
				// History is best-effort, never fatal
				logger.ErrorWithErr("Verlauf konnte nicht gespeichert werden", err)
			}
		}

		return renderedMsg{frame: g.String()}
	}

	return tea.Batch(render, m.spinner.Tick)
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("meinGRAPHWERK"))
	s.WriteString("\n")

	switch m.view {
	case ViewInput:
		s.WriteString(m.renderInputView())
	case ViewPlot:
		s.WriteString(m.renderPlotView())
	}

	return s.String()
}

func (m Model) renderInputView() string {
	var s strings.Builder

	s.WriteString(SubtitleStyle.Render("Neue Gleichung"))
	s.WriteString("\n\n")
	s.WriteString("Unterstützt: +, -, *, /, ^, sin, cos, tan, log, ln, exp\n")
	s.WriteString("Nicht unterstützt: asin, acos, atan, abs, floor\n")
	s.WriteString("Undefinierte Operationen wie Division durch Null vermeiden.\n\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("Enter: Zeichnen • Esc: Zurück • Ctrl+C: Beenden"))

	return s.String()
}

func (m Model) renderPlotView() string {
	var s strings.Builder

	s.WriteString(EquationStyle.Render(m.equation))
	s.WriteString("\n\n")

	if m.rendering {
		s.WriteString(m.spinner.View())
		s.WriteString(" Berechne Kurve...\n")
	} else if m.frame != "" {
		s.WriteString(PlotStyle.Render(m.frame))
	}

	if m.err != nil {
		s.WriteString(ErrorMessageStyle.Render("Fehler: " + m.err.Error()))
		s.WriteString("\n")
	}

	status := fmt.Sprintf("Zoom: %.2f  Offset: %.2f, %.2f",
		m.settings.Zoom, m.settings.XOffset, m.settings.YOffset)
	s.WriteString(StatusBarStyle.Render(status))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(
		"+/-: Zoom • Pfeiltasten: Verschieben • 0: Zurücksetzen • n: Neue Gleichung • q: Beenden"))

	return s.String()
}

// renderedMsg carries a completed plot frame
type renderedMsg struct {
	frame string
}
