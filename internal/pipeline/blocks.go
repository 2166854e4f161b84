package pipeline

import (
	"fmt"
	"strings"

	"github.com/beatrizcardc/ABNT-formatter/internal/docx"
)

// Caption placeholder texts. The writer replaces the placeholders after
// formatting; the numbering and prefix are what the layout rules require.
const (
	figureCaptionFormat = "Figura %d – Descrição da figura"
	tableCaptionFormat  = "Tabela %d – Título da tabela"
	tableSourceCaption  = "Fonte: elaboração própria."
)

// CenterImageParagraphs centers every body paragraph that carries an
// embedded graphic and removes its first line indent. Returns the number of
// paragraphs centered.
func CenterImageParagraphs(doc *docx.Document) int {
	count := 0
	for _, p := range doc.Paragraphs() {
		if !p.HasDrawing() {
			continue
		}
		p.SetAlignment(docx.AlignCenter)
		p.SetFirstLineIndent(0)
		count++
	}
	return count
}

// TableOutcome reports the hardening result for one table.
type TableOutcome struct {
	Table int
	Rows  []docx.RowOutcome
}

// HardenTables fixes the layout of every body table and marks rows so they
// do not split across pages, with the first row repeating as a header.
// Rows the model cannot rewrite are reported per table instead of aborting
// the run.
func HardenTables(doc *docx.Document) []TableOutcome {
	var out []TableOutcome
	for i, t := range doc.Tables() {
		t.SetLayoutFixed()
		out = append(out, TableOutcome{Table: i, Rows: t.Harden()})
	}
	return out
}

// CaptionStats counts the captions added by InsertCaptions.
type CaptionStats struct {
	Figures      int
	TableTitles  int
	TableSources int
}

// InsertCaptions annotates structural elements: image paragraphs get a
// numbered figure caption below, tables get a numbered title above and a
// source note below. Numbering follows document order and counts every
// figure and table, so elements that already carry a caption keep their
// number on a second run instead of shifting the sequence.
func InsertCaptions(doc *docx.Document, figures, tables bool) (CaptionStats, error) {
	var stats CaptionStats
	body := doc.Body()
	snapshot := append([]docx.BodyElement(nil), body.Elements...)
	figN, tblN := 0, 0
	for i, el := range snapshot {
		switch block := el.(type) {
		case *docx.Paragraph:
			if !block.HasDrawing() {
				continue
			}
			figN++
			if !figures || hasCaptionPrefix(snapshot, i+1, "Figura ") {
				continue
			}
			caption := captionParagraph(fmt.Sprintf(figureCaptionFormat, figN), docx.AlignCenter)
			if err := body.InsertAfter(block, caption); err != nil {
				return stats, err
			}
			stats.Figures++
		case *docx.Table:
			tblN++
			if !tables {
				continue
			}
			if !hasCaptionPrefix(snapshot, i-1, "Tabela ") {
				title := captionParagraph(fmt.Sprintf(tableCaptionFormat, tblN), docx.AlignCenter)
				if err := body.InsertBefore(block, title); err != nil {
					return stats, err
				}
				stats.TableTitles++
			}
			if !hasCaptionPrefix(snapshot, i+1, "Fonte:") {
				source := captionParagraph(tableSourceCaption, docx.AlignLeft)
				if err := body.InsertAfter(block, source); err != nil {
					return stats, err
				}
				stats.TableSources++
			}
		}
	}
	return stats, nil
}

func hasCaptionPrefix(snapshot []docx.BodyElement, i int, prefix string) bool {
	if i < 0 || i >= len(snapshot) {
		return false
	}
	p, ok := snapshot[i].(*docx.Paragraph)
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(p.Text()), prefix)
}

func captionParagraph(text, align string) *docx.Paragraph {
	p := docx.NewParagraph(text)
	p.SetAlignment(align)
	p.SetFirstLineIndent(0)
	p.SetLineSpacing(docx.LineSingle, docx.LineRuleAuto)
	p.SetFontSize(SmallFontHalfPoints)
	return p
}
