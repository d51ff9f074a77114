// Package ui renders the interactive calculator session.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// EvalFunc evaluates one expression line and returns its rendering.
type EvalFunc func(string) (string, error)

type entry struct {
	input  string
	output string
	failed bool
}

// ReplModel is a Bubble Tea model for the read-eval-print loop.
type ReplModel struct {
	input    textinput.Model
	eval     EvalFunc
	history  []entry
	prompt   string
	width    int
	quitting bool
}

// NewReplModel returns a model that evaluates submitted lines with eval and
// prefixes input lines with prompt.
func NewReplModel(prompt string, eval EvalFunc) *ReplModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "expression, or exit"
	ti.Focus()
	return &ReplModel{
		input:  ti,
		eval:   eval,
		prompt: prompt,
		width:  80,
	}
}

func (m *ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == "quit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.history = append(m.history, m.evalLine(line))
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ReplModel) evalLine(line string) entry {
	out, err := m.eval(line)
	if err != nil {
		return entry{input: line, output: err.Error(), failed: true}
	}
	return entry{input: line, output: out}
}

func (m *ReplModel) View() string {
	var b strings.Builder
	b.WriteString(faintStyle.Render("bigint calculator, exit or ctrl+d to leave"))
	b.WriteString("\n")
	promptWidth := runewidth.StringWidth(m.prompt)
	for _, e := range m.history {
		b.WriteString(promptStyle.Render(m.prompt))
		b.WriteString(m.fit(e.input, m.width-promptWidth))
		b.WriteString("\n")
		if e.failed {
			b.WriteString(errorStyle.Render(m.fit("error: "+e.output, m.width)))
		} else {
			b.WriteString(resultStyle.Render(m.fit(e.output, m.width)))
		}
		b.WriteString("\n")
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// fit truncates plain text to width before any styling is applied, so
// escape sequences never count toward the width or get cut mid-sequence.
func (m *ReplModel) fit(line string, width int) string {
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, "…")
}
