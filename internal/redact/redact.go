// Package redact provides utilities for scrubbing sensitive information
// from strings before they are logged or returned in error responses. It
// targets the secrets this service actually handles: database connection
// strings, device JWTs, and configured secrets.
package redact

import "regexp"

// RedactionPlaceholder marks removed sensitive content.
const RedactionPlaceholder = "[REDACTED]"

// Precompiled regex patterns
var (
	// Database connection strings with embedded credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|redis|mysql)://[^@\s]+@`)

	// Signed JWTs (three base64url segments)
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Key/secret assignments in error text
	secretRegex = regexp.MustCompile(`(?i)(secret|token|password|api[_-]?key)(['"\s:=]+)[^'"&\s]{8,}`)

	patterns = []*regexp.Regexp{dbConnRegex, jwtTokenRegex, secretRegex}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		result = pattern.ReplaceAllString(result, RedactionPlaceholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
