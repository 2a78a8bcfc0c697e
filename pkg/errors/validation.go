package errors

import (
	"strings"
	"unicode"
)

// maxBranchName bounds label width so names stay inside the left margin.
const maxBranchName = 64

// ValidateBranchName checks that a branch label is printable and non-empty.
func ValidateBranchName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidConfig, "branch name cannot be empty")
	}

	if len(name) > maxBranchName {
		return New(ErrCodeInvalidConfig, "branch name %q too long (max %d characters)", name, maxBranchName)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "branch name %q contains control characters", name)
		}
	}

	return nil
}

// ValidateOutputPath validates a file path the renderer is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator)
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

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
