package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a workflow node identifier.
// It rejects ids that could corrupt serialized graphs or cache keys.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNodeID, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNodeID, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNodeID, "node id contains invalid control characters")
		}
	}

	return nil
}

// ValidateSpacing validates a spacing or padding value.
// Negative values are rejected; zero is allowed (nodes may touch).
func ValidateSpacing(name string, value float64) error {
	if value < 0 {
		return New(ErrCodeInvalidSpacing, "%s cannot be negative: %g", name, value)
	}
	return nil
}

// ValidateOutputPath validates a file path used for CLI output.
// It ensures the path is non-empty and free of null bytes.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains invalid characters")
	}
	return nil
}
