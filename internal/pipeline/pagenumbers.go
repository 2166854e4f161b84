package pipeline

import (
	"bytes"

	"github.com/beatrizcardc/ABNT-formatter/internal/docx"
)

var footerAlignments = map[string]string{
	"left":   docx.AlignLeft,
	"center": docx.AlignCenter,
	"right":  docx.AlignRight,
}

// AddFooterPageNumbers puts an automatic page number in the default footer
// of every section. Footers that already carry a PAGE field are left alone,
// so running the pass twice adds nothing. Unknown positions fall back to
// right. Returns the number of footers changed.
func AddFooterPageNumbers(doc *docx.Document, position string) (int, error) {
	align, ok := footerAlignments[position]
	if !ok {
		align = docx.AlignRight
	}
	added := 0
	for _, sect := range doc.Sections() {
		footer, err := doc.EnsureFooter(sect)
		if err != nil {
			return added, err
		}
		if hasPageField(footer) {
			continue
		}
		p := &docx.Paragraph{}
		for _, r := range docx.PageFieldRuns() {
			p.Content = append(p.Content, r)
		}
		p.SetAlignment(align)
		p.SetLineSpacing(docx.LineSingle, docx.LineRuleAuto)
		p.SetFontSize(SmallFontHalfPoints)
		footer.Add(p)
		added++
	}
	return added, nil
}

var pageInstr = []byte("PAGE")

func hasPageField(f *docx.Footer) bool {
	for _, p := range f.Paragraphs() {
		for _, r := range p.Runs() {
			for _, raw := range r.Raw {
				if raw.Name.Local == "instrText" && bytes.Contains(raw.Content, pageInstr) {
					return true
				}
			}
		}
	}
	return false
}
