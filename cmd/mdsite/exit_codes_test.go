package main

// Notes:
// - exitCodeFor: we test all sentinel errors plus wrapped variants to
//   verify the errors.Is() chain works correctly.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	mdsite "github.com/mdsite/mdsite"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"source not found", mdsite.ErrSourceNotFound, ExitIO},
		{"output reset", mdsite.ErrOutputReset, ExitIO},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"wrapped source not found", fmt.Errorf("building: %w", mdsite.ErrSourceNotFound), ExitIO},

		// Usage errors (exit 2)
		{"parse flags", ErrParseFlags, ExitUsage},
		{"too many arguments", ErrTooManyArgs, ExitUsage},
		{"invalid workers", mdsite.ErrInvalidWorkers, ExitUsage},
		{"wrapped too many arguments", fmt.Errorf("cli: %w", ErrTooManyArgs), ExitUsage},

		// General errors (exit 1)
		{"template parse", mdsite.ErrTemplateParse, ExitGeneral},
		{"converter probe", mdsite.ErrConverterProbe, ExitGeneral},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodes - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodes(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	for name, code := range map[string]int{
		"ExitGeneral": ExitGeneral,
		"ExitUsage":   ExitUsage,
		"ExitIO":      ExitIO,
	} {
		if code < 1 || code > 125 {
			t.Errorf("%s = %d, want within [1, 125]", name, code)
		}
	}
}
