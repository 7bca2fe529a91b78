package resistor

import (
	"strings"

	"github.com/jsamuelsen11/resistor-calculator/internal/domain"
)

const (
	// Separator delimits bands in the textual form, e.g. "RED-BLUE-BROWN".
	Separator = "-"

	bandCount = 3
	radix     = 10
)

// Code is a three-band resistor code: two significant digits and a
// power-of-ten multiplier.
type Code struct {
	First      ColorBand
	Second     ColorBand
	Multiplier ColorBand
}

// Parse reads a hyphen-delimited color code. Matching is case-insensitive.
//
// Errors:
//   - domain.ErrUnsupportedFormat unless there are exactly three bands, so an
//     empty string is rejected as a single band
//   - *domain.UnknownColorError (wrapping domain.ErrUnknownColor) for the first
//     token that is not a color name
func Parse(raw string) (Code, error) {
	tokens := strings.Split(raw, Separator)
	if len(tokens) != bandCount {
		return Code{}, domain.ErrUnsupportedFormat
	}

	var parsed [bandCount]ColorBand
	for i, tok := range tokens {
		b, ok := ParseBand(tok)
		if !ok {
			return Code{}, &domain.UnknownColorError{Token: tok, Position: i + 1}
		}
		parsed[i] = b
	}

	return Code{First: parsed[0], Second: parsed[1], Multiplier: parsed[2]}, nil
}

// Calculate returns (first*10 + second) * 10^multiplier in ohms. Total over
// valid bands; the largest result is 99 * 10^9.
func Calculate(first, second, multiplier ColorBand) int64 {
	ohms := int64(first.Digit()*radix + second.Digit())
	for range multiplier.Digit() {
		ohms *= radix
	}
	return ohms
}

// Ohms returns the resistance the code encodes.
func (c Code) Ohms() int64 {
	return Calculate(c.First, c.Second, c.Multiplier)
}

// String renders the code in its canonical upper-case form.
func (c Code) String() string {
	return c.First.String() + Separator + c.Second.String() + Separator + c.Multiplier.String()
}
