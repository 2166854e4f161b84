package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Stylesheet is the parsed word/styles.xml part. Style definitions are
// structured far enough to rewrite the default paragraph style and map
// style IDs to names; everything else rides along raw.
type Stylesheet struct {
	Attrs    []xml.Attr
	children []stylesChild
}

type stylesChild interface {
	isStylesChild()
}

func (e *RawElement) isStylesChild() {}

// StyleDef is one w:style definition.
type StyleDef struct {
	Attrs     []xml.Attr // includes w:type, w:styleId, w:default
	Type      string
	ID        string
	Default   bool
	Name      string // w:name val, the UI name Word shows
	ParaProps *ParagraphProperties
	RunProps  *RunProperties
	Raw       []*RawElement
}

func (s *StyleDef) isStylesChild() {}

// Styles returns all style definitions in order.
func (s *Stylesheet) Styles() []*StyleDef {
	var out []*StyleDef
	for _, c := range s.children {
		if def, ok := c.(*StyleDef); ok {
			out = append(out, def)
		}
	}
	return out
}

// ByID returns the style with the given ID, or nil.
func (s *Stylesheet) ByID(id string) *StyleDef {
	for _, def := range s.Styles() {
		if def.ID == id {
			return def
		}
	}
	return nil
}

// NameOf maps a style ID to its display name, or "" if unknown.
func (s *Stylesheet) NameOf(id string) string {
	if def := s.ByID(id); def != nil {
		return def.Name
	}
	return ""
}

// DefaultParagraphStyle returns the document's default paragraph style
// (usually "Normal"). Falls back to a name lookup when no style carries the
// default flag.
func (s *Stylesheet) DefaultParagraphStyle() (*StyleDef, error) {
	for _, def := range s.Styles() {
		if def.Type == "paragraph" && def.Default {
			return def, nil
		}
	}
	for _, def := range s.Styles() {
		if def.Type == "paragraph" && strings.EqualFold(def.Name, "Normal") {
			return def, nil
		}
	}
	return nil, ErrNoNormalStyle
}

// EnsureRunProps returns the style's run properties, allocating if needed.
func (d *StyleDef) EnsureRunProps() *RunProperties {
	if d.RunProps == nil {
		d.RunProps = &RunProperties{}
	}
	return d.RunProps
}

// EnsureParaProps returns the style's paragraph properties, allocating if
// needed.
func (d *StyleDef) EnsureParaProps() *ParagraphProperties {
	if d.ParaProps == nil {
		d.ParaProps = &ParagraphProperties{}
	}
	return d.ParaProps
}

func parseStylesheet(data []byte) (*Stylesheet, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	sheet := &Stylesheet{}
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return sheet, nil
			}
			return nil, fmt.Errorf("parsing styles part: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "styles":
			sheet.Attrs = start.Attr
		case "style":
			def, err := parseStyleDef(d, start)
			if err != nil {
				return nil, err
			}
			sheet.children = append(sheet.children, def)
		default:
			raw, err := captureElement(d, start)
			if err != nil {
				return nil, err
			}
			sheet.children = append(sheet.children, raw)
		}
	}
}

func parseStyleDef(d *xml.Decoder, start xml.StartElement) (*StyleDef, error) {
	def := &StyleDef{
		Attrs: start.Attr,
		Type:  attrValue(start.Attr, "type"),
		ID:    attrValue(start.Attr, "styleId"),
	}
	switch attrValue(start.Attr, "default") {
	case "1", "true", "on":
		def.Default = true
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				def.Name = attrValue(t.Attr, "val")
				if err := skipElement(d); err != nil {
					return nil, err
				}
			case "pPr":
				props, err := parseParagraphProperties(d, t)
				if err != nil {
					return nil, err
				}
				def.ParaProps = props
			case "rPr":
				props, err := parseRunProperties(d, t)
				if err != nil {
					return nil, err
				}
				def.RunProps = props
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				def.Raw = append(def.Raw, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "style" {
				return def, nil
			}
		}
	}
}

func (s *Stylesheet) marshal() []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	openTag(&b, "w:styles", s.Attrs)
	for _, c := range s.children {
		switch el := c.(type) {
		case *StyleDef:
			el.writeXML(&b)
		case *RawElement:
			el.writeXML(&b)
		}
	}
	closeTag(&b, "w:styles")
	return b.Bytes()
}

func (d *StyleDef) writeXML(b *bytes.Buffer) {
	openTag(b, "w:style", d.Attrs)
	if d.Name != "" {
		b.WriteString("<w:name")
		wAttr(b, "val", d.Name)
		b.WriteString("/>")
	}
	for _, raw := range d.Raw {
		raw.writeXML(b)
	}
	if d.ParaProps != nil {
		d.ParaProps.writeXML(b)
	}
	if d.RunProps != nil {
		d.RunProps.writeXML(b)
	}
	closeTag(b, "w:style")
}
