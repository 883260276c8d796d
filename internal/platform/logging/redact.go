package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) that carry
// credentials. The HTTP middleware redacts the same set when it logs headers.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// PersonalFields are attribute keys that hold a petitioner's personal data.
// Services may log identifiers freely but never these values.
var PersonalFields = []string{
	"email",
	"postcode",
	"ip_address",
	"remote_ip",
	"name",
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// emailPattern catches addresses that reach a log line under an
// unexpected key, such as inside an error message.
var emailPattern = regexp.MustCompile(`[^@\s"]+@[^@\s"]+\.[a-zA-Z]{2,}`)

// tokenPathPattern matches sponsor URLs, which embed the sponsor's token.
var tokenPathPattern = regexp.MustCompile(`/sponsors/[0-9a-fA-F\-]{16,}`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts known sensitive keys by name and falls
// back to value patterns for anything that escapes call-site care.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(PersonalFields)+6)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range PersonalFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),

		masq.WithFieldName("sponsor_token"),
		masq.WithFieldName("signature_token"),
		masq.WithFieldPrefix("sponsor_email"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(emailPattern),
		masq.WithRegex(tokenPathPattern),
	)

	return masq.New(opts...)
}
