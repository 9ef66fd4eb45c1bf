package errors

import (
	"math"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// MaxNameLength bounds vertex names accepted from user input.
const MaxNameLength = 256

// ValidateName validates a vertex name for storage in a line-oriented file.
//
// Validation rules:
//   - Maximum length of 256 characters
//   - No control characters (these would break the row structure)
//
// Empty names are allowed.
func ValidateName(name string) error {
	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidInput, "vertex name too long (max %d characters)", MaxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "vertex name contains invalid control characters")
		}
	}
	return nil
}

// ValidateCount rejects negative counts. what names the parameter in the
// error message.
func ValidateCount(what string, n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative, got %d", what, n)
	}
	return nil
}

// ValidateProbability requires p to lie in [0, 1].
func ValidateProbability(what string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return New(ErrCodeInvalidInput, "%s must be in [0, 1], got %g", what, p)
	}
	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}

	return nil
}

// ValidateExtension checks that path ends in one of the allowed extensions
// (compared case-insensitively, with the leading dot).
func ValidateExtension(path string, allowed ...string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(allowed, ext) {
		return New(ErrCodeInvalidFormat, "unsupported file extension %q (want one of %s)",
			ext, strings.Join(allowed, ", "))
	}
	return nil
}
