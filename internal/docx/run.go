package docx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Run is a span of text sharing one set of character properties. Content the
// formatter does not model (drawings, fields, breaks, tabs) is preserved raw.
type Run struct {
	Attrs      []xml.Attr
	Properties *RunProperties
	Text       *Text
	Raw        []*RawElement
}

func (r *Run) isParagraphContent() {}

// Text is the literal text of a run.
type Text struct {
	Value string
	// preserveSpace is set when the source carried xml:space="preserve".
	preserveSpace bool
}

// NewRun returns a run holding the given text.
func NewRun(text string) *Run {
	return &Run{Text: &Text{Value: text}}
}

// GetText returns the run text, or "" for text-less runs.
func (r *Run) GetText() string {
	if r.Text == nil {
		return ""
	}
	return r.Text.Value
}

// HasDrawing reports whether the run carries an embedded graphic. Inline and
// anchored images use w:drawing; legacy documents use w:pict or w:object,
// and images behind mc:AlternateContent only show up in the raw bytes.
func (r *Run) HasDrawing() bool {
	for _, raw := range r.Raw {
		switch raw.Name.Local {
		case "drawing", "pict", "object":
			return true
		}
		if bytes.Contains(raw.Content, []byte("<w:drawing")) || bytes.Contains(raw.Content, []byte("<w:pict")) {
			return true
		}
	}
	return false
}

func (r *Run) props() *RunProperties {
	if r.Properties == nil {
		r.Properties = &RunProperties{}
	}
	return r.Properties
}

// SetFontSize sets the run font size in half-points (w:sz and w:szCs).
func (r *Run) SetFontSize(halfPoints int) {
	p := r.props()
	p.Size = strconv.Itoa(halfPoints)
	p.SizeCS = strconv.Itoa(halfPoints)
}

func parseRun(d *xml.Decoder, start xml.StartElement) (*Run, error) {
	run := &Run{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return run, nil
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				props, err := parseRunProperties(d, t)
				if err != nil {
					return nil, err
				}
				run.Properties = props
			case "t":
				text, err := parseText(d, t)
				if err != nil {
					return nil, err
				}
				run.Text = text
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				run.Raw = append(run.Raw, raw)
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return run, nil
			}
		}
	}
}

func parseText(d *xml.Decoder, start xml.StartElement) (*Text, error) {
	text := &Text{preserveSpace: attrValue(start.Attr, "space") == "preserve"}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Value += string(t)
		case xml.EndElement:
			if t.Name.Local == "t" {
				return text, nil
			}
		}
	}
}

func (r *Run) writeXML(b *bytes.Buffer) {
	openTag(b, "w:r", r.Attrs)
	if r.Properties != nil {
		r.Properties.writeXML(b)
	}
	if r.Text != nil {
		r.Text.writeXML(b)
	}
	for _, raw := range r.Raw {
		raw.writeXML(b)
	}
	b.WriteString("</w:r>")
}

func (t *Text) writeXML(b *bytes.Buffer) {
	if t.preserveSpace || strings.TrimSpace(t.Value) != t.Value {
		b.WriteString(`<w:t xml:space="preserve">`)
	} else {
		b.WriteString("<w:t>")
	}
	_ = xml.EscapeText(b, []byte(t.Value))
	b.WriteString("</w:t>")
}

// RunProperties models the character properties the formatter mutates;
// everything else survives in Raw.
type RunProperties struct {
	Fonts  *Fonts
	Size   string // w:sz val, half-points
	SizeCS string // w:szCs val
	Raw    []*RawElement
}

// Fonts is the w:rFonts element.
type Fonts struct {
	ASCII    string
	HAnsi    string
	EastAsia string
	CS       string
}

// SetAll points every script slot at the same font family.
func (f *Fonts) SetAll(name string) {
	f.ASCII = name
	f.HAnsi = name
	f.EastAsia = name
	f.CS = name
}

func parseRunProperties(d *xml.Decoder, start xml.StartElement) (*RunProperties, error) {
	props := &RunProperties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rFonts":
				props.Fonts = &Fonts{
					ASCII:    attrValue(t.Attr, "ascii"),
					HAnsi:    attrValue(t.Attr, "hAnsi"),
					EastAsia: attrValue(t.Attr, "eastAsia"),
					CS:       attrValue(t.Attr, "cs"),
				}
				if err := skipElement(d); err != nil {
					return nil, err
				}
			case "sz":
				props.Size = attrValue(t.Attr, "val")
				if err := skipElement(d); err != nil {
					return nil, err
				}
			case "szCs":
				props.SizeCS = attrValue(t.Attr, "val")
				if err := skipElement(d); err != nil {
					return nil, err
				}
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				props.Raw = append(props.Raw, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "rPr" {
				return props, nil
			}
		}
	}
}

func (p *RunProperties) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:rPr>")
	if p.Fonts != nil {
		b.WriteString("<w:rFonts")
		if p.Fonts.ASCII != "" {
			wAttr(b, "ascii", p.Fonts.ASCII)
		}
		if p.Fonts.HAnsi != "" {
			wAttr(b, "hAnsi", p.Fonts.HAnsi)
		}
		if p.Fonts.EastAsia != "" {
			wAttr(b, "eastAsia", p.Fonts.EastAsia)
		}
		if p.Fonts.CS != "" {
			wAttr(b, "cs", p.Fonts.CS)
		}
		b.WriteString("/>")
	}
	for _, raw := range p.Raw {
		raw.writeXML(b)
	}
	if p.Size != "" {
		b.WriteString("<w:sz")
		wAttr(b, "val", p.Size)
		b.WriteString("/>")
	}
	if p.SizeCS != "" {
		b.WriteString("<w:szCs")
		wAttr(b, "val", p.SizeCS)
		b.WriteString("/>")
	}
	b.WriteString("</w:rPr>")
}
