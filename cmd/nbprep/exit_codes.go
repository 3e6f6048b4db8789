package main

import (
	"errors"
	"os"
)

// Exit codes for the nbprep CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful processing
	ExitGeneral = 1 // General/unexpected error (parse, validation, render)
	ExitUsage   = 2 // Invalid flags, arguments, or config
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrConfigParse) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Document errors (parse, validation, render) and everything else (exit 1)
	return ExitGeneral
}
