package pipeline

import (
	"strconv"
	"strings"

	"github.com/beatrizcardc/ABNT-formatter/internal/docx"
)

// HeadingLevel reports the outline level of a paragraph based on its style.
// Built-in heading styles are matched by ID ("Heading1".."Heading9"); other
// styles are matched by display name ("heading 1"), which also covers
// localized documents where the ID differs but the name is standard.
func HeadingLevel(doc *docx.Document, p *docx.Paragraph) (int, bool) {
	id := p.StyleID()
	if id == "" {
		return 0, false
	}
	if lvl, ok := levelSuffix(id, "Heading"); ok {
		return lvl, true
	}
	name := strings.ToLower(doc.StyleName(id))
	if lvl, ok := levelSuffix(name, "heading "); ok {
		return lvl, true
	}
	return 0, false
}

func levelSuffix(s, prefix string) (int, bool) {
	rest, found := strings.CutPrefix(s, prefix)
	if !found {
		return 0, false
	}
	lvl, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || lvl < 1 || lvl > 9 {
		return 0, false
	}
	return lvl, true
}

// BodyOptions controls the body paragraph pass.
type BodyOptions struct {
	Justify           bool
	FirstLineIndentCm float64
}

// FormatBodyParagraphs normalizes every body-level paragraph. Headings are
// aligned left with no indent; other paragraphs get the first line indent
// and, when enabled, justified alignment. Both lose their extra vertical
// spacing. Returns the number of paragraphs touched.
func FormatBodyParagraphs(doc *docx.Document, opts BodyOptions) int {
	indent := FirstLineIndentTwips(opts.FirstLineIndentCm)
	count := 0
	for _, p := range doc.Paragraphs() {
		if _, isHeading := HeadingLevel(doc, p); isHeading {
			p.SetAlignment(docx.AlignLeft)
			p.SetFirstLineIndent(0)
		} else {
			if opts.Justify {
				p.SetAlignment(docx.AlignJustify)
			}
			p.SetFirstLineIndent(indent)
		}
		p.SetSpaceBefore(0)
		p.SetSpaceAfter(0)
		count++
	}
	return count
}
