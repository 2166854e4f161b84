package docx

import "errors"

// Sentinel errors for package operations.
var (
	ErrNotDocx       = errors.New("not a valid DOCX package")
	ErrPartMissing   = errors.New("package part missing")
	ErrNoNormalStyle = errors.New("default paragraph style not found")
	ErrRowNotModeled = errors.New("table row wrapped in unsupported content")
	ErrNoAnchor      = errors.New("anchor element not found in body")
)
