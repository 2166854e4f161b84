package docx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// ParagraphContent is anything that can appear inside a paragraph:
// *Run, *Hyperlink, or a preserved *RawContent element.
type ParagraphContent interface {
	isParagraphContent()
}

// RawContent is unmodeled paragraph content (bookmarks, field simples,
// structured document tags) carried through verbatim.
type RawContent struct {
	RawElement
}

func (c *RawContent) isParagraphContent() {}

// Paragraph is a block of text in the document body, a table cell, or a
// header/footer part.
type Paragraph struct {
	Attrs      []xml.Attr
	Properties *ParagraphProperties
	Content    []ParagraphContent
}

func (p *Paragraph) isBodyElement() {}

// NewParagraph returns a paragraph holding a single run with the given text.
func NewParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.Content = append(p.Content, NewRun(text))
	}
	return p
}

// Runs returns the paragraph's runs in order, including runs nested in
// hyperlinks.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, c := range p.Content {
		switch el := c.(type) {
		case *Run:
			runs = append(runs, el)
		case *Hyperlink:
			runs = append(runs, el.Runs...)
		}
	}
	return runs
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.GetText())
	}
	return sb.String()
}

// IsEmpty reports whether the paragraph has no visible content: no text
// besides whitespace and no embedded graphic.
func (p *Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text()) == "" && !p.HasDrawing()
}

// HasDrawing reports whether any run carries an embedded graphic.
func (p *Paragraph) HasDrawing() bool {
	for _, r := range p.Runs() {
		if r.HasDrawing() {
			return true
		}
	}
	return false
}

// StyleID returns the referenced paragraph style ID, or "".
func (p *Paragraph) StyleID() string {
	if p.Properties == nil || p.Properties.Style == nil {
		return ""
	}
	return p.Properties.Style.Val
}

// StripToken removes the first occurrence of token from the paragraph text.
// The token may span several runs; each affected run loses only the bytes
// that belong to the token, so surrounding text and run formatting survive.
// Returns false when the token does not occur.
func (p *Paragraph) StripToken(token string) bool {
	if token == "" {
		return false
	}
	full := p.Text()
	start := strings.Index(full, token)
	if start < 0 {
		return false
	}
	end := start + len(token)

	pos := 0
	for _, r := range p.Runs() {
		if r.Text == nil {
			continue
		}
		t := r.Text.Value
		next := pos + len(t)
		if next > start && pos < end {
			from := start - pos
			if from < 0 {
				from = 0
			}
			to := end - pos
			if to > len(t) {
				to = len(t)
			}
			r.Text.Value = t[:from] + t[to:]
		}
		pos = next
		if pos >= end {
			break
		}
	}
	return true
}

// Props returns the paragraph properties, allocating them if needed.
func (p *Paragraph) Props() *ParagraphProperties {
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	return p.Properties
}

// SetAlignment sets w:jc.
func (p *Paragraph) SetAlignment(val string) {
	p.Props().Alignment = &Alignment{Val: val}
}

// SetFirstLineIndent sets the first-line indent in twips and clears any
// hanging indent, which occupies the same slot in w:ind.
func (p *Paragraph) SetFirstLineIndent(twips int) {
	ind := p.Props().indent()
	ind.FirstLine = strconv.Itoa(twips)
	ind.Hanging = ""
}

// SetHangingIndent sets a true hanging indent: wrapped lines sit at left
// twips while the first line hangs back by the same amount.
func (p *Paragraph) SetHangingIndent(twips int) {
	ind := p.Props().indent()
	ind.Left = strconv.Itoa(twips)
	ind.Hanging = strconv.Itoa(twips)
	ind.FirstLine = ""
}

// SetLeftIndent sets the left indent in twips.
func (p *Paragraph) SetLeftIndent(twips int) {
	p.Props().indent().Left = strconv.Itoa(twips)
}

// SetRightIndent sets the right indent in twips.
func (p *Paragraph) SetRightIndent(twips int) {
	p.Props().indent().Right = strconv.Itoa(twips)
}

// SetLineSpacing sets w:spacing line and lineRule.
func (p *Paragraph) SetLineSpacing(line int, rule string) {
	sp := p.Props().spacing()
	sp.Line = strconv.Itoa(line)
	sp.LineRule = rule
}

// SetSpaceBefore sets space before the paragraph in twips.
func (p *Paragraph) SetSpaceBefore(twips int) {
	p.Props().spacing().Before = strconv.Itoa(twips)
}

// SetSpaceAfter sets space after the paragraph in twips.
func (p *Paragraph) SetSpaceAfter(twips int) {
	p.Props().spacing().After = strconv.Itoa(twips)
}

// SetFontSize sets the font size on every run, in half-points.
func (p *Paragraph) SetFontSize(halfPoints int) {
	for _, r := range p.Runs() {
		r.SetFontSize(halfPoints)
	}
}

// ParagraphProperties models w:pPr. Known children are structured; the rest
// is preserved raw.
type ParagraphProperties struct {
	Style       *StyleRef
	Alignment   *Alignment
	Indentation *Indentation
	Spacing     *Spacing
	RunProps    *RunProperties
	SectPr      *SectionProperties
	Raw         []*RawElement
}

func (pp *ParagraphProperties) indent() *Indentation {
	if pp.Indentation == nil {
		pp.Indentation = &Indentation{}
	}
	return pp.Indentation
}

func (pp *ParagraphProperties) spacing() *Spacing {
	if pp.Spacing == nil {
		pp.Spacing = &Spacing{}
	}
	return pp.Spacing
}

// StyleRef is a w:pStyle reference.
type StyleRef struct {
	Val string
}

// Alignment is w:jc.
type Alignment struct {
	Val string
}

// Indentation is w:ind. Values are twip strings; "" means the attribute is
// absent, which Word treats differently from "0".
type Indentation struct {
	Left      string
	Right     string
	FirstLine string
	Hanging   string
}

// Spacing is w:spacing on a paragraph.
type Spacing struct {
	Before   string
	After    string
	Line     string
	LineRule string
}

// Hyperlink wraps runs behind a relationship reference.
type Hyperlink struct {
	Attrs []xml.Attr
	Runs  []*Run
}

func (h *Hyperlink) isParagraphContent() {}

func parseParagraph(d *xml.Decoder, start xml.StartElement) (*Paragraph, error) {
	para := &Paragraph{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return para, nil
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				props, err := parseParagraphProperties(d, t)
				if err != nil {
					return nil, err
				}
				para.Properties = props
			case "r":
				run, err := parseRun(d, t)
				if err != nil {
					return nil, err
				}
				para.Content = append(para.Content, run)
			case "hyperlink":
				link, err := parseHyperlink(d, t)
				if err != nil {
					return nil, err
				}
				para.Content = append(para.Content, link)
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				para.Content = append(para.Content, &RawContent{RawElement: *raw})
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return para, nil
			}
		}
	}
}

func parseHyperlink(d *xml.Decoder, start xml.StartElement) (*Hyperlink, error) {
	link := &Hyperlink{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "r" {
				run, err := parseRun(d, t)
				if err != nil {
					return nil, err
				}
				link.Runs = append(link.Runs, run)
				continue
			}
			if err := skipElement(d); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if t.Name.Local == "hyperlink" {
				return link, nil
			}
		}
	}
}

func parseParagraphProperties(d *xml.Decoder, start xml.StartElement) (*ParagraphProperties, error) {
	props := &ParagraphProperties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pStyle":
				props.Style = &StyleRef{Val: attrValue(t.Attr, "val")}
				if err := skipElement(d); err != nil {
					return nil, err
				}
			case "jc":
				props.Alignment = &Alignment{Val: attrValue(t.Attr, "val")}
				if err := skipElement(d); err != nil {
					return nil, err
				}
			case "ind":
				props.Indentation = &Indentation{
					Left:      attrValue(t.Attr, "left"),
					Right:     attrValue(t.Attr, "right"),
					FirstLine: attrValue(t.Attr, "firstLine"),
					Hanging:   attrValue(t.Attr, "hanging"),
				}
				if err := skipElement(d); err != nil {
					return nil, err
				}
			case "spacing":
				props.Spacing = &Spacing{
					Before:   attrValue(t.Attr, "before"),
					After:    attrValue(t.Attr, "after"),
					Line:     attrValue(t.Attr, "line"),
					LineRule: attrValue(t.Attr, "lineRule"),
				}
				if err := skipElement(d); err != nil {
					return nil, err
				}
			case "rPr":
				runProps, err := parseRunProperties(d, t)
				if err != nil {
					return nil, err
				}
				props.RunProps = runProps
			case "sectPr":
				sect, err := parseSectionProperties(d, t)
				if err != nil {
					return nil, err
				}
				props.SectPr = sect
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				props.Raw = append(props.Raw, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "pPr" {
				return props, nil
			}
		}
	}
}

func (p *Paragraph) writeXML(b *bytes.Buffer) {
	openTag(b, "w:p", p.Attrs)
	if p.Properties != nil {
		p.Properties.writeXML(b)
	}
	for _, c := range p.Content {
		switch el := c.(type) {
		case *Run:
			el.writeXML(b)
		case *Hyperlink:
			el.writeXML(b)
		case *RawContent:
			b.Write(el.Content)
		}
	}
	b.WriteString("</w:p>")
}

func (pp *ParagraphProperties) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:pPr>")
	if pp.Style != nil {
		b.WriteString("<w:pStyle")
		wAttr(b, "val", pp.Style.Val)
		b.WriteString("/>")
	}
	for _, raw := range pp.Raw {
		raw.writeXML(b)
	}
	if pp.Spacing != nil {
		pp.Spacing.writeXML(b)
	}
	if pp.Indentation != nil {
		pp.Indentation.writeXML(b)
	}
	if pp.Alignment != nil {
		b.WriteString("<w:jc")
		wAttr(b, "val", pp.Alignment.Val)
		b.WriteString("/>")
	}
	if pp.RunProps != nil {
		pp.RunProps.writeXML(b)
	}
	if pp.SectPr != nil {
		pp.SectPr.writeXML(b)
	}
	b.WriteString("</w:pPr>")
}

func (s *Spacing) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:spacing")
	if s.Before != "" {
		wAttr(b, "before", s.Before)
	}
	if s.After != "" {
		wAttr(b, "after", s.After)
	}
	if s.Line != "" {
		wAttr(b, "line", s.Line)
	}
	if s.LineRule != "" {
		wAttr(b, "lineRule", s.LineRule)
	}
	b.WriteString("/>")
}

func (i *Indentation) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:ind")
	if i.Left != "" {
		wAttr(b, "left", i.Left)
	}
	if i.Right != "" {
		wAttr(b, "right", i.Right)
	}
	if i.FirstLine != "" {
		wAttr(b, "firstLine", i.FirstLine)
	}
	if i.Hanging != "" {
		wAttr(b, "hanging", i.Hanging)
	}
	b.WriteString("/>")
}

func (h *Hyperlink) writeXML(b *bytes.Buffer) {
	openTag(b, "w:hyperlink", h.Attrs)
	for _, r := range h.Runs {
		r.writeXML(b)
	}
	closeTag(b, "w:hyperlink")
}
