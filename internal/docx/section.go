package docx

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

// sectChild is a child of w:sectPr: parsed page margins, a footer
// reference, or a preserved raw element. Order is kept as read.
type sectChild interface {
	isSectChild()
}

// SectionProperties is w:sectPr, at the end of the body or inside a
// paragraph that closes a section.
type SectionProperties struct {
	Attrs    []xml.Attr
	children []sectChild
}

// PageMargins is w:pgMar. Values are twip strings.
type PageMargins struct {
	Top    string
	Right  string
	Bottom string
	Left   string
	Header string
	Footer string
	Gutter string
}

func (m *PageMargins) isSectChild() {}

// SetCm assigns all four page margins from centimeter values.
func (m *PageMargins) SetCm(top, left, right, bottom float64) {
	m.Top = strconv.Itoa(CmToTwips(top))
	m.Left = strconv.Itoa(CmToTwips(left))
	m.Right = strconv.Itoa(CmToTwips(right))
	m.Bottom = strconv.Itoa(CmToTwips(bottom))
}

// FooterReference is w:footerReference.
type FooterReference struct {
	Type string // "default", "even", "first"
	ID   string // relationship ID
}

func (f *FooterReference) isSectChild() {}

// Margins returns the section's page margins, inserting a w:pgMar with
// Word's defaults for the header/footer distances if the section has none.
func (s *SectionProperties) Margins() *PageMargins {
	for _, c := range s.children {
		if m, ok := c.(*PageMargins); ok {
			return m
		}
	}
	m := &PageMargins{Header: "709", Footer: "709", Gutter: "0"}
	s.children = append(s.children, m)
	return m
}

// FooterRef returns the footer reference of the given type, or nil.
func (s *SectionProperties) FooterRef(refType string) *FooterReference {
	for _, c := range s.children {
		if f, ok := c.(*FooterReference); ok && f.Type == refType {
			return f
		}
	}
	return nil
}

// AddFooterReference prepends a default footer reference pointing at the
// given relationship ID. Header and footer references lead the sectPr
// child sequence.
func (s *SectionProperties) AddFooterReference(relID string) {
	ref := &FooterReference{Type: "default", ID: relID}
	s.children = append([]sectChild{ref}, s.children...)
}

func parseSectionProperties(d *xml.Decoder, start xml.StartElement) (*SectionProperties, error) {
	sect := &SectionProperties{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pgMar":
				sect.children = append(sect.children, &PageMargins{
					Top:    attrValue(t.Attr, "top"),
					Right:  attrValue(t.Attr, "right"),
					Bottom: attrValue(t.Attr, "bottom"),
					Left:   attrValue(t.Attr, "left"),
					Header: attrValue(t.Attr, "header"),
					Footer: attrValue(t.Attr, "footer"),
					Gutter: attrValue(t.Attr, "gutter"),
				})
				if err := skipElement(d); err != nil {
					return nil, err
				}
			case "footerReference":
				sect.children = append(sect.children, &FooterReference{
					Type: attrValue(t.Attr, "type"),
					ID:   attrValue(t.Attr, "id"),
				})
				if err := skipElement(d); err != nil {
					return nil, err
				}
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				sect.children = append(sect.children, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "sectPr" {
				return sect, nil
			}
		}
	}
}

func (s *SectionProperties) writeXML(b *bytes.Buffer) {
	openTag(b, "w:sectPr", s.Attrs)
	for _, c := range s.children {
		switch el := c.(type) {
		case *PageMargins:
			el.writeXML(b)
		case *FooterReference:
			el.writeXML(b)
		case *RawElement:
			el.writeXML(b)
		}
	}
	closeTag(b, "w:sectPr")
}

func (m *PageMargins) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:pgMar")
	if m.Top != "" {
		wAttr(b, "top", m.Top)
	}
	if m.Right != "" {
		wAttr(b, "right", m.Right)
	}
	if m.Bottom != "" {
		wAttr(b, "bottom", m.Bottom)
	}
	if m.Left != "" {
		wAttr(b, "left", m.Left)
	}
	if m.Header != "" {
		wAttr(b, "header", m.Header)
	}
	if m.Footer != "" {
		wAttr(b, "footer", m.Footer)
	}
	if m.Gutter != "" {
		wAttr(b, "gutter", m.Gutter)
	}
	b.WriteString("/>")
}

func (f *FooterReference) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:footerReference")
	wAttr(b, "type", f.Type)
	writeAttr(b, "r:id", f.ID)
	b.WriteString("/>")
}
