package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// graphNameRegex matches names that are safe to use as store keys and
// file basenames.
var graphNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateGraphName validates a stored-graph name for safety and
// correctness. Names become file basenames in the file store and lookup
// keys everywhere else, so the rules are intentionally conservative:
//
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Must start with a letter or digit; then letters, digits, ., _, -
//   - Maximum length of 128 characters
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "graph name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "graph name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "graph name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidName, "graph name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "graph name cannot contain path traversal sequences (..)")
	}

	if !graphNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid graph name: %q", name)
	}

	return nil
}

// ValidateBaseURL validates a server base URL.
// It ensures the URL has a safe scheme (http or https).
func ValidateBaseURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "server URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "server URL must use http or https scheme")
	}

	return nil
}
