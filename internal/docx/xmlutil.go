package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// prefixByURI maps OOXML namespace URIs back to their conventional prefixes.
// encoding/xml resolves prefixes to URIs while decoding, so raw elements must
// be re-emitted with the prefix Word expects.
var prefixByURI = map[string]string{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main":           "w",
	"http://schemas.openxmlformats.org/officeDocument/2006/relationships":    "r",
	"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
	"http://www.w3.org/XML/1998/namespace":                                   "xml",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
	"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
	"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":      "wps",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":      "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas":     "wpc",
	"urn:schemas-microsoft-com:vml":                                          "v",
	"urn:schemas-microsoft-com:office:office":                                "o",
	"urn:schemas-microsoft-com:office:word":                                  "w10",
}

// prefixed returns the conventional "prefix:local" form of an XML name.
func prefixed(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	if name.Space == "xmlns" {
		return "xmlns:" + name.Local
	}
	if p, ok := prefixByURI[name.Space]; ok {
		return p + ":" + name.Local
	}
	// Unknown namespace: emit the local name and hope the declaration
	// survives on the root element.
	return name.Local
}

// RawElement holds the verbatim outer XML of an element the formatter does
// not model. Content is written back byte for byte.
type RawElement struct {
	Name    xml.Name
	Content []byte
}

func (e *RawElement) writeXML(b *bytes.Buffer) {
	b.Write(e.Content)
}

func (e *RawElement) isSectChild() {}

// captureElement consumes the element opened by start, including all nested
// content, and returns it as a RawElement with prefixes restored.
func captureElement(d *xml.Decoder, start xml.StartElement) (*RawElement, error) {
	var buf bytes.Buffer
	writeStartTag(&buf, start)

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("unexpected end of input inside <%s>", start.Name.Local)
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			writeStartTag(&buf, t)
		case xml.EndElement:
			depth--
			buf.WriteString("</")
			buf.WriteString(prefixed(t.Name))
			buf.WriteString(">")
		case xml.CharData:
			_ = xml.EscapeText(&buf, t)
		}
	}

	return &RawElement{Name: start.Name, Content: buf.Bytes()}, nil
}

func writeStartTag(b *bytes.Buffer, t xml.StartElement) {
	b.WriteString("<")
	b.WriteString(prefixed(t.Name))
	for _, a := range t.Attr {
		writeAttr(b, prefixed(a.Name), a.Value)
	}
	b.WriteString(">")
}

// writeAttr emits an attribute with an already-prefixed name.
func writeAttr(b *bytes.Buffer, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	_ = xml.EscapeText(b, []byte(value))
	b.WriteString(`"`)
}

// wAttr emits a w-namespace attribute.
func wAttr(b *bytes.Buffer, local, value string) {
	writeAttr(b, "w:"+local, value)
}

// openTag writes <name attrs...> using pre-parsed attributes.
func openTag(b *bytes.Buffer, name string, attrs []xml.Attr) {
	b.WriteString("<")
	b.WriteString(name)
	for _, a := range attrs {
		writeAttr(b, prefixed(a.Name), a.Value)
	}
	b.WriteString(">")
}

func closeTag(b *bytes.Buffer, name string) {
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

// attrValue returns the value of the attribute with the given local name,
// regardless of namespace.
func attrValue(attrs []xml.Attr, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// skipElement discards the element opened by start.
func skipElement(d *xml.Decoder) error {
	return d.Skip()
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
