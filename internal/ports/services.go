package ports

import (
	"context"

	"github.com/jsamuelsen11/resistor-calculator/internal/domain/resistor"
)

// DecoderService defines the service port for decoding resistor color codes.
// Implemented by the application layer; called by the command entry point.
type DecoderService interface {
	// Decode parses a hyphen-delimited color code and computes its resistance.
	// Returns domain.ErrUnsupportedFormat unless there are exactly three
	// bands (empty input included), and an error wrapping
	// domain.ErrUnknownColor for an unrecognized color name.
	Decode(ctx context.Context, raw string) (*Result, error)

	// Run performs one interactive round trip: prompt, decode, show the result
	// or the failure. Decode failures and cancellation end the run normally;
	// only a broken interaction surface is returned as an error.
	Run(ctx context.Context) error
}

// Result is a successfully decoded resistor code.
type Result struct {
	// Input is the text exactly as the user entered it.
	Input string
	Code  resistor.Code
	Ohms  int64
}
