package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Footer is a parsed footer part (word/footerN.xml).
type Footer struct {
	Attrs    []xml.Attr
	Elements []BodyElement
}

// Paragraphs returns the footer's paragraphs in order.
func (f *Footer) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, el := range f.Elements {
		if p, ok := el.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Add appends a paragraph to the footer.
func (f *Footer) Add(p *Paragraph) {
	f.Elements = append(f.Elements, p)
}

func parseFooterPart(data []byte) (*Footer, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	footer := &Footer{}
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return footer, nil
			}
			return nil, fmt.Errorf("parsing footer part: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "ftr":
			footer.Attrs = start.Attr
		case "p":
			para, err := parseParagraph(d, start)
			if err != nil {
				return nil, err
			}
			footer.Elements = append(footer.Elements, para)
		case "tbl":
			table, err := parseTable(d, start)
			if err != nil {
				return nil, err
			}
			footer.Elements = append(footer.Elements, table)
		default:
			raw, err := captureElement(d, start)
			if err != nil {
				return nil, err
			}
			footer.Elements = append(footer.Elements, &RawBlock{RawElement: *raw})
		}
	}
}

func (f *Footer) marshal() []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	openTag(&b, "w:ftr", f.Attrs)
	for _, el := range f.Elements {
		switch e := el.(type) {
		case *Paragraph:
			e.writeXML(&b)
		case *Table:
			e.writeXML(&b)
		case *RawBlock:
			b.Write(e.Content)
		}
	}
	closeTag(&b, "w:ftr")
	return b.Bytes()
}

// PageFieldRuns returns the run sequence of an auto-updating PAGE field:
// field begin, the PAGE instruction, separator, and field end. The page
// viewer recalculates the value, so no cached result run is needed.
func PageFieldRuns() []*Run {
	fldChar := func(charType string) *Run {
		return &Run{Raw: []*RawElement{{
			Name:    xml.Name{Local: "fldChar"},
			Content: []byte(`<w:fldChar w:fldCharType="` + charType + `"/>`),
		}}}
	}
	instr := &Run{Raw: []*RawElement{{
		Name:    xml.Name{Local: "instrText"},
		Content: []byte(`<w:instrText xml:space="preserve"> PAGE </w:instrText>`),
	}}}
	return []*Run{fldChar("begin"), instr, fldChar("separate"), fldChar("end")}
}
