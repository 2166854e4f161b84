package pipeline

import "github.com/beatrizcardc/ABNT-formatter/internal/docx"

// CollapseBlankParagraphs removes runs of consecutive empty body
// paragraphs, keeping the first of each run. Paragraphs that carry a
// section break survive even when empty, since removing one would merge
// sections. Returns the number of paragraphs removed.
func CollapseBlankParagraphs(doc *docx.Document) int {
	body := doc.Body()
	snapshot := append([]docx.BodyElement(nil), body.Elements...)
	removed := 0
	prevBlank := false
	for _, el := range snapshot {
		p, ok := el.(*docx.Paragraph)
		if !ok {
			prevBlank = false
			continue
		}
		if p.Properties != nil && p.Properties.SectPr != nil {
			prevBlank = false
			continue
		}
		if !p.IsEmpty() {
			prevBlank = false
			continue
		}
		if prevBlank {
			if body.Remove(p) {
				removed++
			}
			continue
		}
		prevBlank = true
	}
	return removed
}
