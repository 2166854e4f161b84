package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const contentTypesNS = "http://schemas.openxmlformats.org/package/2006/content-types"

// footerContentType is the content type registered for new footer parts.
const footerContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"

// ContentTypes is the parsed [Content_Types].xml part.
type ContentTypes struct {
	Defaults  []TypeDefault
	Overrides []TypeOverride
}

// TypeDefault maps an extension to a content type.
type TypeDefault struct {
	Extension   string
	ContentType string
}

// TypeOverride maps a single part name to a content type.
type TypeOverride struct {
	PartName    string
	ContentType string
}

func parseContentTypes(data []byte) (*ContentTypes, error) {
	var raw struct {
		XMLName  xml.Name `xml:"Types"`
		Defaults []struct {
			Extension   string `xml:"Extension,attr"`
			ContentType string `xml:"ContentType,attr"`
		} `xml:"Default"`
		Overrides []struct {
			PartName    string `xml:"PartName,attr"`
			ContentType string `xml:"ContentType,attr"`
		} `xml:"Override"`
	}
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing content types part: %w", err)
	}
	ct := &ContentTypes{}
	for _, d := range raw.Defaults {
		ct.Defaults = append(ct.Defaults, TypeDefault{Extension: d.Extension, ContentType: d.ContentType})
	}
	for _, o := range raw.Overrides {
		ct.Overrides = append(ct.Overrides, TypeOverride{PartName: o.PartName, ContentType: o.ContentType})
	}
	return ct, nil
}

// AddOverride registers a content type for a part. No-op when the part is
// already registered.
func (c *ContentTypes) AddOverride(partName, contentType string) {
	for _, o := range c.Overrides {
		if o.PartName == partName {
			return
		}
	}
	c.Overrides = append(c.Overrides, TypeOverride{PartName: partName, ContentType: contentType})
}

func (c *ContentTypes) marshal() []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="` + contentTypesNS + `">`)
	for _, d := range c.Defaults {
		b.WriteString("<Default")
		writeAttr(&b, "Extension", d.Extension)
		writeAttr(&b, "ContentType", d.ContentType)
		b.WriteString("/>")
	}
	for _, o := range c.Overrides {
		b.WriteString("<Override")
		writeAttr(&b, "PartName", o.PartName)
		writeAttr(&b, "ContentType", o.ContentType)
		b.WriteString("/>")
	}
	b.WriteString("</Types>")
	return b.Bytes()
}
