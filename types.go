package mdsite

import (
	"fmt"
	"time"
)

// Default locations mirroring the CLI defaults.
const (
	DefaultSourceDir = "."
	DefaultOutputDir = "docs"
)

// nojekyllName is the marker file telling static hosts to skip their own
// preprocessing of the generated tree.
const nojekyllName = ".nojekyll"

// indexName is the listing page written into every mirrored directory.
const indexName = "index.html"

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Options configures a site build.
type Options struct {
	SourceDir string // root of the documentation tree (default ".")
	OutputDir string // destination root, purged each run (default "docs")

	// FormatMarkdown gates the markdown pre-formatting pass. The pass is
	// currently a passthrough; the flag is accepted for interface
	// compatibility and has no effect on output.
	FormatMarkdown bool

	Workers int // parallel file conversions per directory (0 = auto)
}

// DefaultOptions returns options matching the CLI defaults.
func DefaultOptions() Options {
	return Options{
		SourceDir:      DefaultSourceDir,
		OutputDir:      DefaultOutputDir,
		FormatMarkdown: true,
	}
}

// Validate checks that options are usable. Empty directories fall back to
// defaults in NewBuilder, so only the worker count is range-checked here.
func (o Options) Validate() error {
	if o.Workers < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkers, o.Workers)
	}
	if o.Workers > MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkers, o.Workers, MaxPoolSize)
	}
	return nil
}

// ItemKind identifies what a build item produced.
type ItemKind int

const (
	// KindPage is a content page generated from an eligible source file.
	KindPage ItemKind = iota
	// KindIndex is a directory listing page.
	KindIndex
)

// ItemResult holds the outcome of one page generation.
type ItemResult struct {
	Path     string // source path relative to the source root
	Output   string // output path relative to the output root
	Kind     ItemKind
	Err      error
	Duration time.Duration
}

// Report aggregates the per-item outcomes of one full-site build.
type Report struct {
	Items    []ItemResult
	Output   string // absolute output root
	Duration time.Duration
}

// Summary tallies succeeded and failed items.
func (r *Report) Summary() (succeeded, failed int) {
	for _, item := range r.Items {
		if item.Err != nil {
			failed++
		} else {
			succeeded++
		}
	}
	return succeeded, failed
}

// BuilderOption configures a Builder beyond Options.
type BuilderOption func(*Builder)

// WithClock overrides the time source used for page timestamps.
// Panics if now is nil (programmer error, similar to time.NewTicker).
func WithClock(now func() time.Time) BuilderOption {
	if now == nil {
		panic("mdsite: WithClock requires a non-nil time source")
	}
	return func(b *Builder) {
		b.now = now
	}
}
