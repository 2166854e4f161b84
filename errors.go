package abnt

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument = errors.New("document content cannot be empty")
	ErrOpenDocument  = errors.New("failed to open document")
	ErrSaveDocument  = errors.New("failed to serialize document")

	// Option validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")
	ErrInvalidIndent         = errors.New("invalid first line indent")
	ErrEmptyMarker           = errors.New("marker token cannot be empty")
)
