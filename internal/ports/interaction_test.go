package ports

import "testing"

func TestSeverity_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		severity Severity
		want     bool
	}{
		{name: "info is valid", severity: SeverityInfo, want: true},
		{name: "error is valid", severity: SeverityError, want: true},
		{name: "empty string is invalid", severity: "", want: false},
		{name: "warning is invalid", severity: "warning", want: false},
		{name: "case sensitive", severity: "INFO", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.severity.IsValid(); got != tt.want {
				t.Errorf("Severity(%q).IsValid() = %v, want %v", tt.severity, got, tt.want)
			}
		})
	}
}
