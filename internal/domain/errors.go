package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrUnsupportedFormat = errors.New("unsupported resistor format")
	ErrUnknownColor      = errors.New("unknown color")
	ErrNoInput           = errors.New("no input")
)

// UnknownColorError reports a band token that does not name a known color.
// Use errors.Is(err, ErrUnknownColor) for simple checks, or errors.As(err, &cerr)
// to access the offending token and its band position.
type UnknownColorError struct {
	Token    string
	Position int
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("%s: %q at band %d", ErrUnknownColor.Error(), e.Token, e.Position)
}

func (e *UnknownColorError) Unwrap() error {
	return ErrUnknownColor
}
