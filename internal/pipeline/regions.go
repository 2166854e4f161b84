package pipeline

import "github.com/beatrizcardc/ABNT-formatter/internal/docx"

// RegionStyler applies a formatting profile to one paragraph of a marker
// region.
type RegionStyler func(p *docx.Paragraph)

// ApplyRegion scans body paragraphs for open and close marker tokens and
// applies style to every paragraph of each region, boundary paragraphs
// included. Tokens are stripped from the text; run formatting around them
// survives. An unclosed region extends to the end of the document. A close
// token with no open region still styles its own paragraph, since close
// detection does not depend on the region state. Returns the number of
// paragraphs styled.
func ApplyRegion(doc *docx.Document, openToken, closeToken string, style RegionStyler) int {
	count := 0
	inRegion := false
	for _, p := range doc.Paragraphs() {
		opened := stripAll(p, openToken)
		closed := stripAll(p, closeToken)
		switch {
		case inRegion:
			style(p)
			count++
			if closed {
				inRegion = false
			}
		case opened:
			style(p)
			count++
			inRegion = !closed
		case closed:
			style(p)
			count++
		}
	}
	return count
}

func stripAll(p *docx.Paragraph, token string) bool {
	found := false
	for p.StripToken(token) {
		found = true
	}
	return found
}

// LongQuoteStyle formats a paragraph as a long quotation: 4cm left indent,
// no first line indent, 10pt text, single spacing, justified.
func LongQuoteStyle(p *docx.Paragraph) {
	p.SetFirstLineIndent(0)
	p.SetLeftIndent(QuoteIndentTwips)
	p.SetRightIndent(0)
	p.SetLineSpacing(docx.LineSingle, docx.LineRuleAuto)
	p.SetFontSize(SmallFontHalfPoints)
	p.SetAlignment(docx.AlignJustify)
}

// ReferenceStyle formats a reference entry: hanging indent of 1.25cm,
// single spacing, 6pt after each entry, justified. The hanging indent keeps
// the first line of each entry at the margin and indents continuation
// lines.
func ReferenceStyle(p *docx.Paragraph) {
	p.SetHangingIndent(HangingIndentTwips)
	p.SetLineSpacing(docx.LineSingle, docx.LineRuleAuto)
	p.SetSpaceAfter(RefSpaceAfterTwips)
	p.SetAlignment(docx.AlignJustify)
}
