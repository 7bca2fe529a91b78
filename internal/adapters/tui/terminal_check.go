package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jsamuelsen11/resistor-calculator/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*TerminalCheck)(nil)

// TerminalCheck reports whether both ends of the dialog are terminals.
// bubbletea needs raw key input and cursor control; pipes get neither.
type TerminalCheck struct {
	in, out *os.File
	isTTY   func(fd uintptr) bool
}

// NewTerminalCheck creates a checker for the given input and output files.
func NewTerminalCheck(in, out *os.File) *TerminalCheck {
	return &TerminalCheck{in: in, out: out, isTTY: isTerminal}
}

// Name implements [ports.HealthChecker].
func (c *TerminalCheck) Name() string {
	return "terminal"
}

// HealthCheck implements [ports.HealthChecker].
func (c *TerminalCheck) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error
	if c.in == nil || !c.isTTY(c.in.Fd()) {
		errs = append(errs, fmt.Errorf("input %s is not a terminal", fileName(c.in)))
	}
	if c.out == nil || !c.isTTY(c.out.Fd()) {
		errs = append(errs, fmt.Errorf("output %s is not a terminal", fileName(c.out)))
	}
	return errors.Join(errs...)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func fileName(f *os.File) string {
	if f == nil {
		return "<nil>"
	}
	return f.Name()
}
