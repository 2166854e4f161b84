package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// BodyElement is a block-level element of the document body, in physical
// document order: *Paragraph, *Table, or a preserved *RawBlock.
type BodyElement interface {
	isBodyElement()
}

// RawBlock is an unmodeled body-level element (sdt, bookmarkStart, ...).
type RawBlock struct {
	RawElement
}

func (b *RawBlock) isBodyElement() {}

// Body is the w:body element: an ordered sequence of block elements plus
// the trailing section properties.
type Body struct {
	Elements []BodyElement
	SectPr   *SectionProperties
}

// Paragraphs returns the body-level paragraphs in document order.
// Paragraphs nested in table cells are not included, matching how the
// formatting passes treat tables as opaque blocks.
func (b *Body) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, el := range b.Elements {
		if p, ok := el.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the body-level tables in document order.
func (b *Body) Tables() []*Table {
	var out []*Table
	for _, el := range b.Elements {
		if t, ok := el.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

func (b *Body) indexOf(el BodyElement) int {
	for i, e := range b.Elements {
		if e == el {
			return i
		}
	}
	return -1
}

// InsertBefore places p immediately before the anchor element.
func (b *Body) InsertBefore(anchor BodyElement, p *Paragraph) error {
	i := b.indexOf(anchor)
	if i < 0 {
		return ErrNoAnchor
	}
	b.Elements = append(b.Elements, nil)
	copy(b.Elements[i+1:], b.Elements[i:])
	b.Elements[i] = p
	return nil
}

// InsertAfter places p immediately after the anchor element.
func (b *Body) InsertAfter(anchor BodyElement, p *Paragraph) error {
	i := b.indexOf(anchor)
	if i < 0 {
		return ErrNoAnchor
	}
	b.Elements = append(b.Elements, nil)
	copy(b.Elements[i+2:], b.Elements[i+1:])
	b.Elements[i+1] = p
	return nil
}

// Remove deletes the element from the body. Returns false if absent.
func (b *Body) Remove(el BodyElement) bool {
	i := b.indexOf(el)
	if i < 0 {
		return false
	}
	b.Elements = append(b.Elements[:i], b.Elements[i+1:]...)
	return true
}

// parseMainDocument reads word/document.xml, returning the root element
// attributes (namespace declarations) and the parsed body.
func parseMainDocument(data []byte) ([]xml.Attr, *Body, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	var rootAttrs []xml.Attr
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return nil, nil, fmt.Errorf("%w: no body in document part", ErrNotDocx)
			}
			return nil, nil, fmt.Errorf("parsing document part: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "document":
			rootAttrs = start.Attr
		case "body":
			body, err := parseBody(d, start)
			if err != nil {
				return nil, nil, fmt.Errorf("parsing document body: %w", err)
			}
			return rootAttrs, body, nil
		default:
			if err := d.Skip(); err != nil {
				return nil, nil, err
			}
		}
	}
}

func parseBody(d *xml.Decoder, start xml.StartElement) (*Body, error) {
	body := &Body{}
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return body, nil
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				para, err := parseParagraph(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, para)
			case "tbl":
				table, err := parseTable(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, table)
			case "sectPr":
				sect, err := parseSectionProperties(d, t)
				if err != nil {
					return nil, err
				}
				body.SectPr = sect
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, &RawBlock{RawElement: *raw})
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return body, nil
			}
		}
	}
}

// marshalMainDocument renders word/document.xml from the parsed tree.
func marshalMainDocument(rootAttrs []xml.Attr, body *Body) []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	openTag(&b, "w:document", rootAttrs)
	b.WriteString("<w:body>")
	for _, el := range body.Elements {
		switch e := el.(type) {
		case *Paragraph:
			e.writeXML(&b)
		case *Table:
			e.writeXML(&b)
		case *RawBlock:
			b.Write(e.Content)
		}
	}
	if body.SectPr != nil {
		body.SectPr.writeXML(&b)
	}
	b.WriteString("</w:body>")
	closeTag(&b, "w:document")
	return b.Bytes()
}
