package mdsite

import "errors"

// Sentinel errors for build operations.
var (
	ErrSourceNotFound  = errors.New("source directory not found")
	ErrOutputReset     = errors.New("failed to reset output directory")
	ErrTemplateParse   = errors.New("page template parsing failed")
	ErrConverterProbe  = errors.New("markdown converter unavailable")
	ErrInvalidWorkers  = errors.New("invalid worker count")
	ErrReadDocument    = errors.New("failed to read document")
	ErrWritePage       = errors.New("failed to write page")
	ErrListDirectory   = errors.New("failed to list directory")
	ErrMirrorDirectory = errors.New("failed to create mirrored directory")
)
