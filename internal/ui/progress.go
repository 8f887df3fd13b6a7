// Package ui renders live progress of batch evaluation in the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"decint/internal/calc"
)

// maxFailures is how many of the most recent failures stay on screen.
const maxFailures = 5

type progressModel struct {
	title    string
	total    int
	events   <-chan calc.Result
	spinner  spinner.Model
	prog     progress.Model
	done     int
	failed   int
	failures []failure
	width    int
	finished bool
}

type failure struct {
	line int
	msg  string
}

type resultMsg calc.Result
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that follows a batch of total
// expressions through the results received on events. The model quits
// once events is closed.
func NewProgressModel(title string, total int, events <-chan calc.Result) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	return &progressModel{
		title:   title,
		total:   total,
		events:  events,
		spinner: sp,
		prog:    prog,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForResult())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		cmd := m.applyResult(calc.Result(msg))
		return m, tea.Batch(cmd, m.listenForResult())
	case doneMsg:
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		model, cmd := m.prog.Update(msg)
		m.prog = model.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d/%d", m.title, m.done, m.total)
	if m.failed > 0 {
		header += fmt.Sprintf(", %d failed", m.failed)
	}
	header += ")"
	if m.finished {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	msgWidth := max(m.width-14, 20)
	for _, f := range m.failures {
		label := errStyle.Render(fmt.Sprintf("%8s", fmt.Sprintf("line %d", f.line)))
		fmt.Fprintf(&b, "  %s  %s\n", label, truncate(f.msg, msgWidth))
	}
	if len(m.failures) > 0 {
		b.WriteString("\n")
	}

	if m.finished {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForResult() tea.Cmd {
	return func() tea.Msg {
		r, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return resultMsg(r)
	}
}

func (m *progressModel) applyResult(r calc.Result) tea.Cmd {
	m.done++
	if r.Err != nil {
		m.failed++
		m.failures = append(m.failures, failure{line: r.Line.No, msg: r.Err.Error()})
		if len(m.failures) > maxFailures {
			m.failures = m.failures[len(m.failures)-maxFailures:]
		}
	}
	if m.total <= 0 {
		return nil
	}
	return m.prog.SetPercent(float64(m.done) / float64(m.total))
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	// the tail counts toward width
	return runewidth.Truncate(value, width, "...")
}
