package pipeline

import "github.com/beatrizcardc/ABNT-formatter/internal/docx"

// Layout constants from NBR 14724 (page and typography) and NBR 10520
// (quotations). All paragraph measurements are twips.
const (
	FontName = "Times New Roman"

	BodyFontHalfPoints  = 24 // 12pt
	SmallFontHalfPoints = 20 // 10pt, quotes, captions, page numbers

	MarginTopCm    = 3.0
	MarginLeftCm   = 3.0
	MarginRightCm  = 2.0
	MarginBottomCm = 2.0

	QuoteIndentTwips   = 2268 // 4cm
	HangingIndentTwips = 709  // 1.25cm
	RefSpaceAfterTwips = 120  // 6pt between entries
)

// DefaultFirstLineIndentCm is the paragraph first line indent applied when
// the caller does not override it.
const DefaultFirstLineIndentCm = 1.25

// FirstLineIndentTwips converts the configured indent to twips.
func FirstLineIndentTwips(cm float64) int {
	return docx.CmToTwips(cm)
}
