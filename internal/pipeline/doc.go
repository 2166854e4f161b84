// Package pipeline implements the document formatting passes.
//
// Each pass takes an opened document and rewrites one layout concern:
//   - Page margins and the default paragraph style
//   - Body paragraph alignment, indentation, and spacing
//   - Heading alignment and capitalization
//   - Marker-delimited regions (long quotes, reference lists)
//   - Image centering, captions, and table hardening
//   - Footer page numbering
//   - Blank paragraph cleanup
//
// Passes mutate the document in place and return how much they touched, so
// the caller can report statistics. Ordering matters: region passes run
// after the body paragraph pass and overwrite its formatting for the
// paragraphs they claim. The root package drives the fixed pass order.
package pipeline
