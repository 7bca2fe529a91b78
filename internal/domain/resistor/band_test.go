package resistor

import "testing"

func TestColorBand_Digit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		band ColorBand
		want int
	}{
		{Black, 0},
		{Brown, 1},
		{Red, 2},
		{Orange, 3},
		{Yellow, 4},
		{Green, 5},
		{Blue, 6},
		{Violet, 7},
		{Grey, 8},
		{White, 9},
	}

	for _, tt := range tests {
		t.Run(tt.band.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.band.Digit(); got != tt.want {
				t.Errorf("%s.Digit() = %d, want %d", tt.band, got, tt.want)
			}
		})
	}
}

func TestColorBand_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		band ColorBand
		want bool
	}{
		{name: "black is valid", band: Black, want: true},
		{name: "white is valid", band: White, want: true},
		{name: "negative is invalid", band: ColorBand(-1), want: false},
		{name: "ten is invalid", band: ColorBand(10), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.band.IsValid(); got != tt.want {
				t.Errorf("ColorBand(%d).IsValid() = %v, want %v", int(tt.band), got, tt.want)
			}
		})
	}
}

func TestColorBand_StringUnknown(t *testing.T) {
	t.Parallel()

	if got := ColorBand(42).String(); got != "UNKNOWN" {
		t.Errorf("ColorBand(42).String() = %q, want %q", got, "UNKNOWN")
	}
}

func TestParseBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   ColorBand
		wantOK bool
	}{
		{name: "upper case", input: "RED", want: Red, wantOK: true},
		{name: "lower case", input: "violet", want: Violet, wantOK: true},
		{name: "mixed case", input: "GrEy", want: Grey, wantOK: true},
		{name: "surrounding spaces rejected", input: " blue ", wantOK: false},
		{name: "trailing tab rejected", input: "RED\t", wantOK: false},
		{name: "american spelling rejected", input: "gray", wantOK: false},
		{name: "purple rejected", input: "PURPLE", wantOK: false},
		{name: "prefix rejected", input: "BLU", wantOK: false},
		{name: "empty rejected", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseBand(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseBand(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseBand(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestBands(t *testing.T) {
	t.Parallel()

	got := Bands()
	if len(got) != 10 {
		t.Fatalf("len(Bands()) = %d, want 10", len(got))
	}
	for i, b := range got {
		if b.Digit() != i {
			t.Errorf("Bands()[%d] = %s with digit %d, want digit %d", i, b, b.Digit(), i)
		}
	}

	// Mutating the returned slice must not affect later calls.
	got[0] = White
	if Bands()[0] != Black {
		t.Error("Bands() returned shared backing array")
	}
}

func TestParseBand_RoundTripsString(t *testing.T) {
	t.Parallel()

	for _, b := range Bands() {
		got, ok := ParseBand(b.String())
		if !ok || got != b {
			t.Errorf("ParseBand(%q) = %s, %v; want %s, true", b.String(), got, ok, b)
		}
	}
}
