package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/resistor-calculator/internal/ports"
)

const promptCharLimit = 256

// promptModel is a single-line input dialog. Enter submits; Esc or Ctrl+C
// cancels.
type promptModel struct {
	prompt    ports.Prompt
	input     textinput.Model
	styles    styles
	submitted bool
	cancelled bool
}

func newPromptModel(p ports.Prompt, st styles) *promptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = p.Placeholder
	ti.CharLimit = promptCharLimit
	ti.Width = 40
	ti.Focus()
	return &promptModel{
		prompt: p,
		input:  ti,
		styles: st,
	}
}

func (m *promptModel) Value() string {
	return m.input.Value()
}

func (m *promptModel) Cancelled() bool {
	return m.cancelled
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptModel) View() string {
	// Clear the dialog once answered so the next one starts on a clean line.
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	if m.prompt.Title != "" {
		b.WriteString(m.styles.title.Render(m.prompt.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.body.Render(m.prompt.Text))
	b.WriteString("\n\n")
	b.WriteString(m.styles.input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("Enter confirm | Esc cancel"))
	return m.styles.frame.Render(b.String()) + "\n"
}
