package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/resistor-calculator/internal/ports"
)

func testPrompt() ports.Prompt {
	return ports.Prompt{
		Title:       "Resistor Calculator",
		Text:        "Enter a resistor.",
		Placeholder: "RED-BLUE-BROWN",
	}
}

func typeKeys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewPromptModel(t *testing.T) {
	t.Parallel()

	m := newPromptModel(testPrompt(), newStyles())
	if m.input.Placeholder != "RED-BLUE-BROWN" {
		t.Errorf("Placeholder = %q, want %q", m.input.Placeholder, "RED-BLUE-BROWN")
	}
	if !m.input.Focused() {
		t.Error("input not focused, want focused")
	}
	if m.input.CharLimit != promptCharLimit {
		t.Errorf("CharLimit = %d, want %d", m.input.CharLimit, promptCharLimit)
	}
	if m.Init() == nil {
		t.Error("Init() = nil, want blink command")
	}
}

func TestPromptModel_TypingUpdatesValue(t *testing.T) {
	t.Parallel()

	m := newPromptModel(testPrompt(), newStyles())
	m.Update(typeKeys("red-blue-brown"))

	if got := m.Value(); got != "red-blue-brown" {
		t.Errorf("Value() = %q, want %q", got, "red-blue-brown")
	}
	if m.submitted || m.Cancelled() {
		t.Error("typing should neither submit nor cancel")
	}
}

func TestPromptModel_EnterSubmits(t *testing.T) {
	t.Parallel()

	m := newPromptModel(testPrompt(), newStyles())
	m.Update(typeKeys("RED"))
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if model != m {
		t.Fatal("Update returned a different model")
	}
	if !isQuit(t, cmd) {
		t.Fatal("Enter did not quit the program")
	}
	if !m.submitted || m.Cancelled() {
		t.Errorf("submitted = %v, cancelled = %v; want true, false", m.submitted, m.Cancelled())
	}
	if m.Value() != "RED" {
		t.Errorf("Value() = %q, want %q", m.Value(), "RED")
	}
}

func TestPromptModel_CancelKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		t.Run(key.String(), func(t *testing.T) {
			t.Parallel()

			m := newPromptModel(testPrompt(), newStyles())
			_, cmd := m.Update(tea.KeyMsg{Type: key})

			if !isQuit(t, cmd) {
				t.Fatalf("%s did not quit the program", key)
			}
			if !m.Cancelled() {
				t.Errorf("%s did not cancel the prompt", key)
			}
		})
	}
}

func TestPromptModel_View(t *testing.T) {
	t.Parallel()

	m := newPromptModel(testPrompt(), newStyles())
	view := m.View()

	for _, want := range []string{"Resistor Calculator", "Enter a resistor.", "Esc cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.View(); got != "" {
		t.Errorf("View() after submit = %q, want empty", got)
	}
}
