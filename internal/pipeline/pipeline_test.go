package pipeline_test

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/beatrizcardc/ABNT-formatter/internal/docx"
	"github.com/beatrizcardc/ABNT-formatter/internal/pipeline"
)

const wNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const testContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const testStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + wNS + `"><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style><w:style w:type="paragraph" w:styleId="Titulo1"><w:name w:val="heading 1"/></w:style><w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/></w:style></w:styles>`

// openBody builds a minimal package around the given body markup and opens it.
func openBody(t *testing.T, body string) *docx.Document {
	t.Helper()
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="` + wNS + `" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>` +
		body +
		`<w:sectPr><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr></w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range []struct{ name, content string }{
		{"[Content_Types].xml", testContentTypes},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`},
		{"word/document.xml", document},
		{"word/styles.xml", testStyles},
	} {
		w, err := zw.Create(p.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	doc, err := docx.Open(buf.Bytes())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return doc
}

func para(text string) string {
	return `<w:p><w:r><w:t xml:space="preserve">` + text + `</w:t></w:r></w:p>`
}

func styledPara(style, text string) string {
	return `<w:p><w:pPr><w:pStyle w:val="` + style + `"/></w:pPr><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func marshalled(t *testing.T, doc *docx.Document) string {
	t.Helper()
	out, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatal(err)
			}
			defer rc.Close()
			var b bytes.Buffer
			if _, err := b.ReadFrom(rc); err != nil {
				t.Fatal(err)
			}
			return b.String()
		}
	}
	t.Fatal("document part missing")
	return ""
}

func TestApplyRegion_MarksAndBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStyled int
	}{
		{
			name: "closed region includes boundaries",
			body: para("[[CITACAO_LONGA]]primeiro") +
				para("meio") +
				para("ultimo[[/CITACAO_LONGA]]") +
				para("fora"),
			wantStyled: 3,
		},
		{
			name:       "single paragraph region",
			body:       para("[[CITACAO_LONGA]]tudo junto[[/CITACAO_LONGA]]") + para("fora"),
			wantStyled: 1,
		},
		{
			name:       "unclosed region runs to end",
			body:       para("antes") + para("[[CITACAO_LONGA]]aberto") + para("continua"),
			wantStyled: 2,
		},
		{
			name:       "stray close token styles its paragraph",
			body:       para("texto [[/CITACAO_LONGA]] solto") + para("depois"),
			wantStyled: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := openBody(t, tt.body)
			got := pipeline.ApplyRegion(doc, "[[CITACAO_LONGA]]", "[[/CITACAO_LONGA]]", pipeline.LongQuoteStyle)
			if got != tt.wantStyled {
				t.Errorf("styled = %d, want %d", got, tt.wantStyled)
			}
			out := marshalled(t, doc)
			if strings.Contains(out, "CITACAO_LONGA") {
				t.Error("marker token leaked into output")
			}
			if got := strings.Count(out, `w:left="2268"`); got != tt.wantStyled {
				t.Errorf("quote indent count = %d, want %d", got, tt.wantStyled)
			}
		})
	}
}

func TestApplyRegion_KeepsSurroundingText(t *testing.T) {
	t.Parallel()

	doc := openBody(t, para("antes [[REFERENCIAS]]meio[[/REFERENCIAS]] depois"))
	pipeline.ApplyRegion(doc, "[[REFERENCIAS]]", "[[/REFERENCIAS]]", pipeline.ReferenceStyle)

	if got := doc.Paragraphs()[0].Text(); got != "antes meio depois" {
		t.Errorf("text = %q, want %q", got, "antes meio depois")
	}
}

func TestReferenceStyle_HangingIndent(t *testing.T) {
	t.Parallel()

	doc := openBody(t, para("[[REFERENCIAS]]SILVA, J. Obra. 2020.[[/REFERENCIAS]]"))
	pipeline.ApplyRegion(doc, "[[REFERENCIAS]]", "[[/REFERENCIAS]]", pipeline.ReferenceStyle)

	out := marshalled(t, doc)
	if !strings.Contains(out, `w:left="709"`) || !strings.Contains(out, `w:hanging="709"`) {
		t.Errorf("hanging indent not applied: %s", out)
	}
	if !strings.Contains(out, `w:after="120"`) {
		t.Error("entry spacing not applied")
	}
}

func TestFormatBodyParagraphs(t *testing.T) {
	t.Parallel()

	doc := openBody(t, styledPara("Titulo1", "Introdução")+para("corpo do texto"))
	n := pipeline.FormatBodyParagraphs(doc, pipeline.BodyOptions{Justify: true, FirstLineIndentCm: 1.25})
	if n != 2 {
		t.Fatalf("touched = %d, want 2", n)
	}

	heading := doc.Paragraphs()[0]
	if heading.Properties.Alignment.Val != docx.AlignLeft {
		t.Errorf("heading alignment = %q, want left", heading.Properties.Alignment.Val)
	}
	if heading.Properties.Indentation.FirstLine != "0" {
		t.Errorf("heading first line indent = %q, want 0", heading.Properties.Indentation.FirstLine)
	}

	bodyPara := doc.Paragraphs()[1]
	if bodyPara.Properties.Alignment.Val != docx.AlignJustify {
		t.Errorf("body alignment = %q, want both", bodyPara.Properties.Alignment.Val)
	}
	if bodyPara.Properties.Indentation.FirstLine != "709" {
		t.Errorf("body first line indent = %q, want 709", bodyPara.Properties.Indentation.FirstLine)
	}
}

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	doc := openBody(t,
		styledPara("Titulo1", "um")+ // matched by style name "heading 1"
			styledPara("Heading2", "dois")+ // matched by style ID
			para("corpo"))

	paras := doc.Paragraphs()
	if lvl, ok := pipeline.HeadingLevel(doc, paras[0]); !ok || lvl != 1 {
		t.Errorf("paragraph 0: level=%d ok=%v, want 1 true", lvl, ok)
	}
	if lvl, ok := pipeline.HeadingLevel(doc, paras[1]); !ok || lvl != 2 {
		t.Errorf("paragraph 1: level=%d ok=%v, want 2 true", lvl, ok)
	}
	if _, ok := pipeline.HeadingLevel(doc, paras[2]); ok {
		t.Error("body paragraph reported as heading")
	}
}

func TestCapitalizeHeadings(t *testing.T) {
	t.Parallel()

	doc := openBody(t,
		styledPara("Titulo1", "Introdução à pesquisa")+
			styledPara("Heading2", "Metodologia")+
			para("corpo"))

	n := pipeline.CapitalizeHeadings(doc, pipeline.CapsOptions{H1: true, H2: false})
	if n != 1 {
		t.Fatalf("capitalized = %d, want 1", n)
	}
	if got := doc.Paragraphs()[0].Text(); got != "INTRODUÇÃO À PESQUISA" {
		t.Errorf("h1 text = %q", got)
	}
	if got := doc.Paragraphs()[1].Text(); got != "Metodologia" {
		t.Errorf("h2 text changed: %q", got)
	}
}

func TestCenterImageParagraphs(t *testing.T) {
	t.Parallel()

	doc := openBody(t, `<w:p><w:r><w:drawing/></w:r></w:p>`+para("texto"))
	if n := pipeline.CenterImageParagraphs(doc); n != 1 {
		t.Fatalf("centered = %d, want 1", n)
	}
	if got := doc.Paragraphs()[0].Properties.Alignment.Val; got != docx.AlignCenter {
		t.Errorf("alignment = %q, want center", got)
	}
}

func TestInsertCaptions_FiguresAndTables(t *testing.T) {
	t.Parallel()

	body := `<w:p><w:r><w:drawing/></w:r></w:p>` +
		`<w:tbl><w:tblPr/><w:tr><w:tc><w:p><w:r><w:t>celula</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
		`<w:p><w:r><w:drawing/></w:r></w:p>`
	doc := openBody(t, body)

	stats, err := pipeline.InsertCaptions(doc, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Figures != 2 || stats.TableTitles != 1 || stats.TableSources != 1 {
		t.Fatalf("stats = %+v", stats)
	}

	out := marshalled(t, doc)
	for _, want := range []string{
		"Figura 1 – Descrição da figura",
		"Figura 2 – Descrição da figura",
		"Tabela 1 – Título da tabela",
		"Fonte: elaboração própria.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestInsertCaptions_Idempotent(t *testing.T) {
	t.Parallel()

	doc := openBody(t, `<w:p><w:r><w:drawing/></w:r></w:p>`+
		`<w:tbl><w:tblPr/><w:tr><w:tc><w:p><w:r><w:t>x</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`)

	if _, err := pipeline.InsertCaptions(doc, true, true); err != nil {
		t.Fatal(err)
	}
	stats, err := pipeline.InsertCaptions(doc, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Figures != 0 || stats.TableTitles != 0 || stats.TableSources != 0 {
		t.Errorf("second run inserted captions: %+v", stats)
	}

	out := marshalled(t, doc)
	if got := strings.Count(out, "Figura 1"); got != 1 {
		t.Errorf("figure caption count = %d, want 1", got)
	}
}

func TestAddFooterPageNumbers_Idempotent(t *testing.T) {
	t.Parallel()

	doc := openBody(t, para("texto"))

	n, err := pipeline.AddFooterPageNumbers(doc, "right")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("footers changed = %d, want 1", n)
	}

	n, err = pipeline.AddFooterPageNumbers(doc, "right")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("second run changed %d footers, want 0", n)
	}
}

func TestCollapseBlankParagraphs(t *testing.T) {
	t.Parallel()

	doc := openBody(t, para("texto")+`<w:p/><w:p/><w:p/>`+para("mais"))
	if n := pipeline.CollapseBlankParagraphs(doc); n != 2 {
		t.Fatalf("removed = %d, want 2", n)
	}
	if got := len(doc.Paragraphs()); got != 3 {
		t.Errorf("paragraphs left = %d, want 3", got)
	}
}

func TestApplyPageMargins(t *testing.T) {
	t.Parallel()

	doc := openBody(t, para("texto"))
	if n := pipeline.ApplyPageMargins(doc); n != 1 {
		t.Fatalf("sections = %d, want 1", n)
	}
	out := marshalled(t, doc)
	if !strings.Contains(out, `w:top="1701"`) || !strings.Contains(out, `w:bottom="1134"`) {
		t.Errorf("margins not applied: %s", out)
	}
}

func TestApplyBaseStyle(t *testing.T) {
	t.Parallel()

	doc := openBody(t, para("texto"))
	if err := pipeline.ApplyBaseStyle(doc, 1.25); err != nil {
		t.Fatal(err)
	}

	out, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatal(err)
	}
	var styles string
	for _, f := range zr.File {
		if f.Name == "word/styles.xml" {
			rc, _ := f.Open()
			var b bytes.Buffer
			_, _ = b.ReadFrom(rc)
			rc.Close()
			styles = b.String()
		}
	}
	for _, want := range []string{
		`w:ascii="Times New Roman"`,
		`<w:sz w:val="24"/>`,
		`w:line="360"`,
		`w:firstLine="709"`,
	} {
		if !strings.Contains(styles, want) {
			t.Errorf("styles part missing %q", want)
		}
	}
}
