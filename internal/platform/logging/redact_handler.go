package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields is the set of attribute names (lowercase) whose values are
// always redacted. Telemetry endpoints and config dumps may carry credentials.
var SensitiveFields = map[string]bool{
	"authorization": true,
	"password":      true,
	"secret":        true,
	"token":         true,
}

// apiKeyInlinePattern matches inline "api_key=<value>" or "apikey:<value>"
// patterns that may appear in arbitrary string fields, such as an OTLP
// endpoint URL with credentials in its query string.
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

// userinfoPattern matches "user:pass@" credentials embedded in URLs.
var userinfoPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://[^/\s:@]+:[^/\s@]+@`)

// fixedRedactOptions is the number of masq options beyond the dynamic
// SensitiveFields set (2 prefixes + 2 regexes).
const fixedRedactOptions = 4

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveFields))

	for name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		// Prefix-based redaction for variations like "secret_key", "api_key_v2".
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),

		masq.WithRegex(apiKeyInlinePattern),
		masq.WithRegex(userinfoPattern),
	)

	return masq.New(opts...)
}
