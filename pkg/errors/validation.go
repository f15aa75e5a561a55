package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates an export file path for safety.
// It prevents control characters, null bytes, and unreasonable lengths;
// directory layout is left to the caller.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateDimension validates that a named dimension is strictly positive.
// All bridge dimensions are lengths in millimeters; zero or negative values
// would produce degenerate solids deep inside the kernel, so they are
// rejected up front.
func ValidateDimension(name string, value float64) error {
	if value <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %g", name, value)
	}
	return nil
}

// ValidateFormatName validates an export format name against a set of
// supported formats. Format names are case-sensitive and lowercase.
func ValidateFormatName(format string, supported []string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of %s)", format, strings.Join(supported, ", "))
}
