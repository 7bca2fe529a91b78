// Package tui implements the dialog surface as bubbletea programs: a framed
// text prompt and a dismissable message box, rendered inline in the terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/resistor-calculator/internal/domain"
	"github.com/jsamuelsen11/resistor-calculator/internal/platform/logging"
	"github.com/jsamuelsen11/resistor-calculator/internal/ports"
)

// Compile-time interface check.
var _ ports.UserInteraction = (*Interaction)(nil)

// runFunc runs a model to completion and returns its final state.
type runFunc func(ctx context.Context, model tea.Model) (tea.Model, error)

// Interaction implements [ports.UserInteraction] on a terminal.
type Interaction struct {
	in     *os.File
	out    *os.File
	styles styles
	run    runFunc
}

// New creates an Interaction reading keys from in and rendering to out.
// Nil files default to os.Stdin and os.Stdout.
func New(in, out *os.File) *Interaction {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	i := &Interaction{
		in:     in,
		out:    out,
		styles: newStyles(),
	}
	i.run = i.runProgram
	return i
}

// PromptText shows a text prompt and returns the submitted value. Esc,
// Ctrl+C or cancellation of ctx return domain.ErrNoInput.
func (i *Interaction) PromptText(ctx context.Context, prompt ports.Prompt) (string, error) {
	final, err := i.run(ctx, newPromptModel(prompt, i.styles))
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrNoInput, ctx.Err())
		}
		return "", fmt.Errorf("running prompt: %w", err)
	}

	m, ok := final.(*promptModel)
	if !ok {
		return "", fmt.Errorf("running prompt: unexpected model %T", final)
	}
	if m.Cancelled() {
		logging.FromContext(ctx).DebugContext(ctx, "prompt cancelled",
			slog.String("operation", "PromptText"),
		)
		return "", domain.ErrNoInput
	}
	return m.Value(), nil
}

// Notify shows msg and blocks until the user dismisses it.
func (i *Interaction) Notify(ctx context.Context, msg ports.Message) error {
	if _, err := i.run(ctx, newMessageModel(msg, i.styles)); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logging.FromContext(ctx).DebugContext(ctx, "message interrupted",
				slog.String("operation", "Notify"),
				slog.String("severity", msg.Severity.String()),
			)
			return ctx.Err()
		}
		return fmt.Errorf("running message: %w", err)
	}
	return nil
}

func (i *Interaction) runProgram(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(i.in),
		tea.WithOutput(i.out),
	).Run()
}
