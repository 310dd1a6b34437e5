package main

import (
	"errors"
	"os"

	mdsite "github.com/mdsite/mdsite"
)

// Exit codes for mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Site generated (per-item failures included)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid arguments
	ExitIO      = 3 // Source missing, output root cannot be reset
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Structural I/O errors (exit 3)
	if errors.Is(err, mdsite.ErrSourceNotFound) ||
		errors.Is(err, mdsite.ErrOutputReset) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrParseFlags) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, mdsite.ErrInvalidWorkers) {
		return ExitUsage
	}

	return ExitGeneral
}
