// Package resistor models the three-band resistor color code: the ten color
// bands, the code they form, and the resistance it encodes.
package resistor

import "strings"

// ColorBand is a color painted on a resistor. Its value is the digit it encodes.
type ColorBand int

const (
	Black ColorBand = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White
)

// bands lists every color in digit order.
var bands = []ColorBand{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}

// bandsByName is a precomputed lookup from upper-case color name to band.
var bandsByName = func() map[string]ColorBand {
	m := make(map[string]ColorBand, len(bands))
	for _, b := range bands {
		m[b.String()] = b
	}
	return m
}()

// Bands returns all color bands in order of their digit.
func Bands() []ColorBand {
	out := make([]ColorBand, len(bands))
	copy(out, bands)
	return out
}

// ParseBand matches a color name case-insensitively. Anything else, including
// surrounding whitespace, must match exactly.
func ParseBand(name string) (ColorBand, bool) {
	b, ok := bandsByName[strings.ToUpper(name)]
	return b, ok
}

// Digit returns the 0-9 value the band encodes.
func (b ColorBand) Digit() int {
	return int(b)
}

// IsValid returns true if the band is one of the defined constants.
func (b ColorBand) IsValid() bool {
	return b >= Black && b <= White
}

// String implements fmt.Stringer.
func (b ColorBand) String() string {
	switch b {
	case Black:
		return "BLACK"
	case Brown:
		return "BROWN"
	case Red:
		return "RED"
	case Orange:
		return "ORANGE"
	case Yellow:
		return "YELLOW"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case Violet:
		return "VIOLET"
	case Grey:
		return "GREY"
	case White:
		return "WHITE"
	default:
		return "UNKNOWN"
	}
}
