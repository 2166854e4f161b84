package pipeline

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/beatrizcardc/ABNT-formatter/internal/docx"
)

// CapsOptions selects which heading levels are forced to uppercase.
type CapsOptions struct {
	H1 bool
	H2 bool
	H3 bool
}

func (c CapsOptions) enabled(level int) bool {
	switch level {
	case 1:
		return c.H1
	case 2:
		return c.H2
	case 3:
		return c.H3
	}
	return false
}

var upperPT = cases.Upper(language.BrazilianPortuguese)

// CapitalizeHeadings uppercases the run text of headings at the enabled
// levels, keeping each run's formatting. Touched headings are also aligned
// left with no first line indent. Returns the number of headings changed.
func CapitalizeHeadings(doc *docx.Document, opts CapsOptions) int {
	count := 0
	for _, p := range doc.Paragraphs() {
		level, ok := HeadingLevel(doc, p)
		if !ok || !opts.enabled(level) {
			continue
		}
		for _, r := range p.Runs() {
			if r.Text != nil {
				r.Text.Value = upperPT.String(r.Text.Value)
			}
		}
		p.SetAlignment(docx.AlignLeft)
		p.SetFirstLineIndent(0)
		count++
	}
	return count
}
