// Package config provides configuration loading and validation for the
// calculator. Configuration is layered: built-in defaults -> base.yaml ->
// {profile}.yaml -> environment variables.
package config

// Dialog surface modes.
const (
	UIModeAuto    = "auto"
	UIModeTUI     = "tui"
	UIModeConsole = "console"
)

// Config holds all configuration for the calculator.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	UI        UIConfig        `koanf:"ui"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// UIConfig selects and labels the dialog surface. Mode "auto" uses the
// terminal UI when stdin and stdout are terminals and the console otherwise.
type UIConfig struct {
	Mode  string `koanf:"mode"`
	Title string `koanf:"title"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
