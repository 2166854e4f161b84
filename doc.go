// Package abnt formats .docx documents to Brazilian academic layout
// standards (ABNT).
//
// # Quick Start
//
// Create a formatter and run it on document bytes:
//
//	f := abnt.New()
//	result, err := f.Format(ctx, abnt.Input{
//	    Document: data,
//	    Name:     "tese.docx",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Name, result.Document, 0644)
//
// The result carries the formatted document, a suggested output name
// (tese_ABNT.docx), per-pass statistics, and the table rows the formatter
// had to leave untouched.
//
// # Formatting Pipeline
//
// The pipeline runs a fixed sequence of passes:
//
//  1. Page margins (3cm top/left, 2cm bottom/right) and the default
//     style (Times New Roman 12pt, 1.5 line spacing, first line indent)
//  2. Body paragraph normalization and heading capitalization
//  3. Image centering, figure/table captions, table hardening
//  4. Marker regions: long quotations and reference lists
//  5. Footer page numbers and blank paragraph cleanup
//
// # Markers
//
// Two marker pairs reclassify paragraph regions from inside the text:
//
//	[[CITACAO_LONGA]] ... [[/CITACAO_LONGA]]   4cm indent, 10pt, single spacing
//	[[REFERENCIAS]] ... [[/REFERENCIAS]]       hanging indent reference list
//
// Boundary paragraphs belong to the region and the tokens never reach the
// output. An unclosed region runs to the end of the document.
//
// # Configuration
//
// Passes are selected per run via Input.Options; nil means every pass with
// standard measurements. Marker tokens are per-formatter:
//
//	f := abnt.New(
//	    abnt.WithQuoteMarkers("<<QUOTE>>", "<</QUOTE>>"),
//	)
//
// Everything the formatter does not model (revision marks, embedded
// objects, drawings, unknown parts) is preserved byte for byte.
package abnt
