package pipeline

import "github.com/beatrizcardc/ABNT-formatter/internal/docx"

// ApplyPageMargins sets the 3cm top/left and 2cm bottom/right page margins
// on every section. Returns the number of sections touched.
func ApplyPageMargins(doc *docx.Document) int {
	sections := doc.Sections()
	for _, sect := range sections {
		sect.Margins().SetCm(MarginTopCm, MarginLeftCm, MarginRightCm, MarginBottomCm)
	}
	return len(sections)
}
