package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Table is a w:tbl body element. Cell content is preserved raw; the
// formatter only touches table-level layout and row-level properties.
type Table struct {
	Attrs      []xml.Attr
	Properties *TableProperties
	Rows       []*TableRow
	// Other holds tblGrid, bookmarks and any unmodeled children in order.
	// Entries containing row markup (rows wrapped in w:sdt) cannot be
	// hardened and are reported as such by Harden.
	Other []*RawElement
}

func (t *Table) isBodyElement() {}

// TableProperties is w:tblPr.
type TableProperties struct {
	Layout string // w:tblLayout type: "", "fixed" or "autofit"
	Raw    []*RawElement
}

// TableRow is w:tr.
type TableRow struct {
	Attrs      []xml.Attr
	Properties *RowProperties
	// Content holds the cells (w:tc) and any other children, raw and in order.
	Content []*RawElement
}

// RowProperties is w:trPr.
type RowProperties struct {
	CantSplit bool // w:cantSplit: the row may not break across pages
	Header    bool // w:tblHeader: repeat as header row on every page
	Raw       []*RawElement
}

// RowOutcome reports the per-row result of Harden. Err is non-nil for row
// content the formatter could not reach; such failures are cosmetic and
// callers are expected to continue.
type RowOutcome struct {
	Index int
	Err   error
}

// SetLayoutFixed switches the table to fixed column layout.
func (t *Table) SetLayoutFixed() {
	if t.Properties == nil {
		t.Properties = &TableProperties{}
	}
	t.Properties.Layout = "fixed"
}

// Harden prevents every row from splitting across pages and marks row 0 as
// a repeated header row. Rows hidden inside unmodeled wrappers are skipped
// and reported with ErrRowNotModeled.
func (t *Table) Harden() []RowOutcome {
	outcomes := make([]RowOutcome, 0, len(t.Rows))
	for i, row := range t.Rows {
		if row.Properties == nil {
			row.Properties = &RowProperties{}
		}
		row.Properties.CantSplit = true
		row.Properties.Header = i == 0
		outcomes = append(outcomes, RowOutcome{Index: i})
	}
	for _, raw := range t.Other {
		if bytes.Contains(raw.Content, []byte("<w:tr")) {
			outcomes = append(outcomes, RowOutcome{
				Index: len(outcomes),
				Err:   fmt.Errorf("%w: <%s>", ErrRowNotModeled, raw.Name.Local),
			})
		}
	}
	return outcomes
}

func parseTable(d *xml.Decoder, start xml.StartElement) (*Table, error) {
	table := &Table{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return table, nil
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tblPr":
				props, err := parseTableProperties(d, t)
				if err != nil {
					return nil, err
				}
				table.Properties = props
			case "tr":
				row, err := parseTableRow(d, t)
				if err != nil {
					return nil, err
				}
				table.Rows = append(table.Rows, row)
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				table.Other = append(table.Other, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "tbl" {
				return table, nil
			}
		}
	}
}

func parseTableProperties(d *xml.Decoder, start xml.StartElement) (*TableProperties, error) {
	props := &TableProperties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tblLayout" {
				props.Layout = attrValue(t.Attr, "type")
				if err := skipElement(d); err != nil {
					return nil, err
				}
				continue
			}
			raw, err := captureElement(d, t)
			if err != nil {
				return nil, err
			}
			props.Raw = append(props.Raw, raw)
		case xml.EndElement:
			if t.Name.Local == "tblPr" {
				return props, nil
			}
		}
	}
}

func parseTableRow(d *xml.Decoder, start xml.StartElement) (*TableRow, error) {
	row := &TableRow{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "trPr" {
				props, err := parseRowProperties(d, t)
				if err != nil {
					return nil, err
				}
				row.Properties = props
				continue
			}
			raw, err := captureElement(d, t)
			if err != nil {
				return nil, err
			}
			row.Content = append(row.Content, raw)
		case xml.EndElement:
			if t.Name.Local == "tr" {
				return row, nil
			}
		}
	}
}

func parseRowProperties(d *xml.Decoder, start xml.StartElement) (*RowProperties, error) {
	props := &RowProperties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cantSplit":
				props.CantSplit = true
				if err := skipElement(d); err != nil {
					return nil, err
				}
			case "tblHeader":
				props.Header = true
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
			if t.Name.Local == "trPr" {
				return props, nil
			}
		}
	}
}

func (t *Table) writeXML(b *bytes.Buffer) {
	openTag(b, "w:tbl", t.Attrs)
	if t.Properties != nil {
		t.Properties.writeXML(b)
	}
	for _, raw := range t.Other {
		raw.writeXML(b)
	}
	for _, row := range t.Rows {
		row.writeXML(b)
	}
	b.WriteString("</w:tbl>")
}

func (p *TableProperties) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:tblPr>")
	for _, raw := range p.Raw {
		raw.writeXML(b)
	}
	if p.Layout != "" {
		b.WriteString("<w:tblLayout")
		wAttr(b, "type", p.Layout)
		b.WriteString("/>")
	}
	b.WriteString("</w:tblPr>")
}

func (r *TableRow) writeXML(b *bytes.Buffer) {
	openTag(b, "w:tr", r.Attrs)
	if r.Properties != nil {
		r.Properties.writeXML(b)
	}
	for _, raw := range r.Content {
		raw.writeXML(b)
	}
	b.WriteString("</w:tr>")
}

func (p *RowProperties) writeXML(b *bytes.Buffer) {
	if !p.CantSplit && !p.Header && len(p.Raw) == 0 {
		return
	}
	b.WriteString("<w:trPr>")
	for _, raw := range p.Raw {
		raw.writeXML(b)
	}
	if p.CantSplit {
		b.WriteString("<w:cantSplit/>")
	}
	if p.Header {
		b.WriteString("<w:tblHeader/>")
	}
	b.WriteString("</w:trPr>")
}
