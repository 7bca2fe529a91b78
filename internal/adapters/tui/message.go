package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/resistor-calculator/internal/ports"
)

// messageModel shows a message until the user dismisses it with Enter, Esc,
// Ctrl+C or q. The box stays on screen after dismissal.
type messageModel struct {
	msg       ports.Message
	styles    styles
	dismissed bool
}

func newMessageModel(msg ports.Message, st styles) *messageModel {
	return &messageModel{
		msg:    msg,
		styles: st.forSeverity(msg.Severity),
	}
}

func (m *messageModel) Dismissed() bool {
	return m.dismissed
}

func (m *messageModel) Init() tea.Cmd {
	return nil
}

func (m *messageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeyCtrlC:
		m.dismissed = true
		return m, tea.Quit
	case tea.KeyRunes:
		if len(key.Runes) == 1 && key.Runes[0] == 'q' {
			m.dismissed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *messageModel) View() string {
	var b strings.Builder
	if m.msg.Title != "" {
		b.WriteString(m.styles.title.Render(m.msg.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.body.Render(m.msg.Text))
	if !m.dismissed {
		b.WriteString("\n\n")
		b.WriteString(m.styles.help.Render("Enter or q to close"))
	}
	return m.styles.frame.Render(b.String()) + "\n"
}
