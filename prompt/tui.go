package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kxue43/librarian/inquire"
)

type (
	// TUI runs a single-input bubbletea program per question.
	TUI struct {
		in  io.Reader
		out io.Writer
	}

	questionModel struct {
		help    help.Model
		prompt  inquire.Prompt
		ti      textinput.Model
		done    bool
		aborted bool
	}

	questionKeyMap struct{}
)

var (
	keys = struct {
		submit key.Binding
		quit   key.Binding
	}{
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("184"))
)

func (questionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.submit, keys.quit}
}

func (questionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{keys.submit, keys.quit}}
}

func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

func (t *TUI) Ask(ctx context.Context, p inquire.Prompt) (string, error) {
	program := tea.NewProgram(
		newQuestionModel(p),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("failed to ask %q: %w", p.Text, err)
	}

	m, ok := final.(questionModel)
	if !ok {
		return "", fmt.Errorf("unexpected model %T after asking %q", final, p.Text)
	}

	if m.aborted {
		return "", ErrAborted
	}

	return m.Value(), nil
}

func newQuestionModel(p inquire.Prompt) questionModel {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = " "

	if p.HasDefault && p.Recall {
		ti.SetValue(p.Default)
	} else if p.HasDefault {
		ti.Placeholder = p.Default
	}

	ti.Focus()

	return questionModel{
		help:   help.New(),
		prompt: p,
		ti:     ti,
	}
}

func (m questionModel) Value() string {
	return strings.TrimSpace(m.ti.Value())
}

func (m questionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m questionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.aborted = true

			return m, tea.Quit
		case key.Matches(msg, keys.submit):
			m.done = true

			return m, tea.Quit
		default:
		}
	}

	m.ti, cmd = m.ti.Update(msg)

	return m, cmd
}

func (m questionModel) View() string {
	var b strings.Builder

	b.WriteString(questionStyle.Render(m.prompt.Text))

	if m.done {
		b.WriteString(" ")
		b.WriteString(answerStyle.Render(m.Value()))
		b.WriteRune('\n')

		return b.String()
	}

	b.WriteString(m.ti.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(questionKeyMap{}))
	b.WriteRune('\n')

	return b.String()
}
