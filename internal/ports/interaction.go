package ports

import "context"

// Severity classifies a message shown to the user.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// IsValid returns true if the severity is one of the defined constants.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityError:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	return string(s)
}

// Prompt describes a request for a single line of text.
type Prompt struct {
	Title       string
	Text        string
	Placeholder string
}

// Message is text shown to the user with a severity.
type Message struct {
	Title    string
	Text     string
	Severity Severity
}

// UserInteraction is the dialog surface the application talks to.
// Implemented by the tui and console adapters; called by the application layer.
// The application never builds UI elements itself, so tests substitute fixed
// inputs and capture outputs through this port.
type UserInteraction interface {
	// PromptText asks the user for one line of text and returns it as typed.
	// Returns an error wrapping domain.ErrNoInput if the user cancels or
	// dismisses the prompt.
	PromptText(ctx context.Context, prompt Prompt) (string, error)

	// Notify shows a message and blocks until the surface has displayed it.
	// Callers treat it as fire-and-forget: errors are logged, not retried.
	Notify(ctx context.Context, msg Message) error
}
