package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Relationship types and part content types used when new parts are added.
const (
	relTypeFooter = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"

	relationshipsNS = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Relationships is a parsed .rels part.
type Relationships struct {
	Rels []Relationship
}

// Relationship is one package relationship entry.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

func parseRelationships(data []byte) (*Relationships, error) {
	var raw struct {
		XMLName xml.Name `xml:"Relationships"`
		Rels    []struct {
			ID     string `xml:"Id,attr"`
			Type   string `xml:"Type,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing relationships part: %w", err)
	}
	rels := &Relationships{}
	for _, r := range raw.Rels {
		rels.Rels = append(rels.Rels, Relationship{ID: r.ID, Type: r.Type, Target: r.Target})
	}
	return rels, nil
}

// TargetOf returns the target of the relationship with the given ID, or "".
func (r *Relationships) TargetOf(id string) string {
	for _, rel := range r.Rels {
		if rel.ID == id {
			return rel.Target
		}
	}
	return ""
}

// Add appends a relationship with a fresh rId and returns that ID.
func (r *Relationships) Add(relType, target string) string {
	id := "rId" + strconv.Itoa(r.nextID())
	r.Rels = append(r.Rels, Relationship{ID: id, Type: relType, Target: target})
	return id
}

func (r *Relationships) nextID() int {
	max := 0
	for _, rel := range r.Rels {
		if n, err := strconv.Atoi(strings.TrimPrefix(rel.ID, "rId")); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

func (r *Relationships) marshal() []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="` + relationshipsNS + `">`)
	for _, rel := range r.Rels {
		b.WriteString("<Relationship")
		writeAttr(&b, "Id", rel.ID)
		writeAttr(&b, "Type", rel.Type)
		writeAttr(&b, "Target", rel.Target)
		b.WriteString("/>")
	}
	b.WriteString("</Relationships>")
	return b.Bytes()
}
