// Package docx reads and writes the WordprocessingML parts of a .docx
// package. Only the elements the formatting passes need are modeled as
// structs; everything else is captured raw and written back verbatim, so
// content the model does not understand survives a round trip.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	mainDocumentPart = "word/document.xml"
	stylesPart       = "word/styles.xml"
	documentRelsPart = "word/_rels/document.xml.rels"
	contentTypesPart = "[Content_Types].xml"
)

// Document is an opened .docx package. Parts that were parsed are
// re-serialized on save; all other parts are copied through byte for byte,
// in their original archive order.
type Document struct {
	parts map[string][]byte
	order []string

	rootAttrs []xml.Attr
	body      *Body

	styles    *Stylesheet
	rels      *Relationships
	types     *ContentTypes
	relsDirty bool

	footers map[string]*Footer // part name -> parsed or created footer
}

// Open parses a .docx package from memory.
func Open(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}
	doc := &Document{
		parts:   make(map[string][]byte, len(zr.File)),
		footers: make(map[string]*Footer),
	}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", f.Name, err)
		}
		doc.parts[f.Name] = content
		doc.order = append(doc.order, f.Name)
	}

	main, ok := doc.parts[mainDocumentPart]
	if !ok {
		return nil, fmt.Errorf("%w: %s not found", ErrNotDocx, mainDocumentPart)
	}
	rootAttrs, body, err := parseMainDocument(main)
	if err != nil {
		return nil, err
	}
	doc.rootAttrs = rootAttrs
	doc.body = body
	return doc, nil
}

// Body exposes the main document body.
func (d *Document) Body() *Body {
	return d.body
}

// Paragraphs returns the body-level paragraphs of the main document.
func (d *Document) Paragraphs() []*Paragraph {
	return d.body.Paragraphs()
}

// Tables returns the body-level tables of the main document.
func (d *Document) Tables() []*Table {
	return d.body.Tables()
}

// Sections returns every section of the document: mid-document sections
// carried on paragraph properties, then the final body-level section.
func (d *Document) Sections() []*SectionProperties {
	var out []*SectionProperties
	for _, p := range d.body.Paragraphs() {
		if p.Properties != nil && p.Properties.SectPr != nil {
			out = append(out, p.Properties.SectPr)
		}
	}
	if d.body.SectPr != nil {
		out = append(out, d.body.SectPr)
	}
	return out
}

// Styles parses word/styles.xml on first use and caches the result.
func (d *Document) Styles() (*Stylesheet, error) {
	if d.styles != nil {
		return d.styles, nil
	}
	data, ok := d.parts[stylesPart]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartMissing, stylesPart)
	}
	sheet, err := parseStylesheet(data)
	if err != nil {
		return nil, err
	}
	d.styles = sheet
	return sheet, nil
}

// StyleName maps a style ID to the name Word displays for it. Returns the
// ID itself when the stylesheet is absent or does not define the style, so
// style matching can still work on documents with minimal parts.
func (d *Document) StyleName(id string) string {
	sheet, err := d.Styles()
	if err != nil {
		return id
	}
	if name := sheet.NameOf(id); name != "" {
		return name
	}
	return id
}

func (d *Document) relationships() (*Relationships, error) {
	if d.rels != nil {
		return d.rels, nil
	}
	data, ok := d.parts[documentRelsPart]
	if !ok {
		d.rels = &Relationships{}
		d.relsDirty = true
		return d.rels, nil
	}
	rels, err := parseRelationships(data)
	if err != nil {
		return nil, err
	}
	d.rels = rels
	return rels, nil
}

func (d *Document) contentTypes() (*ContentTypes, error) {
	if d.types != nil {
		return d.types, nil
	}
	data, ok := d.parts[contentTypesPart]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartMissing, contentTypesPart)
	}
	types, err := parseContentTypes(data)
	if err != nil {
		return nil, err
	}
	d.types = types
	return types, nil
}

// EnsureFooter returns the default footer of the given section, creating
// the footer part, its relationship, and its content-type registration
// when the section has none.
func (d *Document) EnsureFooter(sect *SectionProperties) (*Footer, error) {
	rels, err := d.relationships()
	if err != nil {
		return nil, err
	}
	if ref := sect.FooterRef("default"); ref != nil {
		target := rels.TargetOf(ref.ID)
		if target == "" {
			return nil, fmt.Errorf("%w: footer relationship %s", ErrPartMissing, ref.ID)
		}
		partName := "word/" + strings.TrimPrefix(target, "/word/")
		if f, ok := d.footers[partName]; ok {
			return f, nil
		}
		data, ok := d.parts[partName]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPartMissing, partName)
		}
		footer, err := parseFooterPart(data)
		if err != nil {
			return nil, err
		}
		d.footers[partName] = footer
		return footer, nil
	}

	types, err := d.contentTypes()
	if err != nil {
		return nil, err
	}
	partName, target := d.freeFooterName()
	footer := &Footer{Attrs: d.rootAttrs}
	d.footers[partName] = footer
	rid := rels.Add(relTypeFooter, target)
	d.relsDirty = true
	types.AddOverride("/"+partName, footerContentType)
	sect.AddFooterReference(rid)
	return footer, nil
}

func (d *Document) freeFooterName() (partName, target string) {
	for n := 1; ; n++ {
		target = "footer" + strconv.Itoa(n) + ".xml"
		partName = "word/" + target
		if _, exists := d.parts[partName]; exists {
			continue
		}
		if _, pending := d.footers[partName]; pending {
			continue
		}
		return partName, target
	}
}

// Bytes serializes the package. Parsed parts are re-rendered; untouched
// parts keep their original bytes and archive order. Parts created during
// formatting are appended after the originals in name order.
func (d *Document) Bytes() ([]byte, error) {
	rendered := map[string][]byte{
		mainDocumentPart: marshalMainDocument(d.rootAttrs, d.body),
	}
	if d.styles != nil {
		rendered[stylesPart] = d.styles.marshal()
	}
	if d.rels != nil && d.relsDirty {
		rendered[documentRelsPart] = d.rels.marshal()
	}
	if d.types != nil {
		rendered[contentTypesPart] = d.types.marshal()
	}
	for name, footer := range d.footers {
		rendered[name] = footer.marshal()
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	written := make(map[string]bool, len(d.order))
	writePart := func(name string, content []byte) error {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("writing part %s: %w", name, err)
		}
		if _, err := w.Write(content); err != nil {
			return fmt.Errorf("writing part %s: %w", name, err)
		}
		written[name] = true
		return nil
	}
	for _, name := range d.order {
		content := d.parts[name]
		if r, ok := rendered[name]; ok {
			content = r
		}
		if err := writePart(name, content); err != nil {
			return nil, err
		}
	}
	var added []string
	for name := range rendered {
		if !written[name] {
			added = append(added, name)
		}
	}
	sort.Strings(added)
	for _, name := range added {
		if err := writePart(name, rendered[name]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
