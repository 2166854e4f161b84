package main

import (
	"errors"
	"os"

	abnt "github.com/beatrizcardc/ABNT-formatter"
	"github.com/beatrizcardc/ABNT-formatter/internal/config"
)

// Exit codes for the abntfmt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful run
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitDocument = 4 // Malformed or unreadable .docx content
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Document errors (exit 4)
	if errors.Is(err, abnt.ErrOpenDocument) ||
		errors.Is(err, abnt.ErrSaveDocument) {
		return ExitDocument
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadDocument) ||
		errors.Is(err, ErrWriteDocument) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, abnt.ErrEmptyDocument) ||
		errors.Is(err, abnt.ErrInvalidFooterPosition) ||
		errors.Is(err, abnt.ErrInvalidIndent) ||
		errors.Is(err, abnt.ErrEmptyMarker) {
		return ExitUsage
	}

	return ExitGeneral
}
