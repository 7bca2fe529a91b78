// Package console implements the dialog surface as plain lines on a reader
// and writer pair. Used when stdin or stdout is not a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsamuelsen11/resistor-calculator/internal/domain"
	"github.com/jsamuelsen11/resistor-calculator/internal/platform/logging"
	"github.com/jsamuelsen11/resistor-calculator/internal/ports"
)

// Compile-time interface check.
var _ ports.UserInteraction = (*Interaction)(nil)

// Interaction implements [ports.UserInteraction] over line-oriented I/O.
type Interaction struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// New creates an Interaction that reads answers from in and writes prompts
// and messages to out.
func New(in io.Reader, out io.Writer) *Interaction {
	return &Interaction{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// PromptText prints the prompt and reads one line. End of input before any
// text returns domain.ErrNoInput; a final line without a newline is accepted.
func (c *Interaction) PromptText(ctx context.Context, prompt ports.Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrNoInput, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	if prompt.Title != "" {
		b.WriteString(prompt.Title + "\n")
	}
	b.WriteString(prompt.Text + "\n> ")
	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		logging.FromContext(ctx).DebugContext(ctx, "input closed before an answer",
			slog.String("operation", "PromptText"),
		)
		return "", domain.ErrNoInput
	}

	answer := strings.TrimRight(line, "\r\n")
	logging.FromContext(ctx).DebugContext(ctx, "answer read",
		slog.String("operation", "PromptText"),
		slog.Int("length", len(answer)),
	)
	return answer, nil
}

// Notify writes msg as a single "[severity] title: text" line.
func (c *Interaction) Notify(ctx context.Context, msg ports.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	line := "[" + msg.Severity.String() + "] "
	if msg.Title != "" {
		line += msg.Title + ": "
	}
	line += msg.Text + "\n"

	if _, err := io.WriteString(c.out, line); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	return nil
}
