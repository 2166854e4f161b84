package abnt

import (
	"fmt"
	"strings"
)

// Marker tokens recognized in the document text. Paragraphs between an open
// and a close token form a region; boundary paragraphs belong to it and the
// tokens themselves never reach the output.
const (
	QuoteOpenMarker  = "[[CITACAO_LONGA]]"
	QuoteCloseMarker = "[[/CITACAO_LONGA]]"
	RefsOpenMarker   = "[[REFERENCIAS]]"
	RefsCloseMarker  = "[[/REFERENCIAS]]"
)

// MIMEType is the media type of the produced .docx files.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Footer position constants.
const (
	FooterLeft   = "left"
	FooterCenter = "center"
	FooterRight  = "right"
)

// First line indent bounds in centimeters.
const (
	MinIndentCm     = 0.0
	MaxIndentCm     = 3.0
	DefaultIndentCm = 1.25
)

// Options selects which formatting passes run and how.
type Options struct {
	H1Caps            bool    // uppercase level 1 headings
	H2Caps            bool    // uppercase level 2 headings
	H3Caps            bool    // uppercase level 3 headings
	Justify           bool    // justify body paragraphs
	FooterPageNumbers bool    // add automatic page numbers to footers
	FooterPosition    string  // "left", "center", "right" (default: "right")
	FirstLineIndentCm float64 // body paragraph first line indent
	CenterImages      bool    // center paragraphs carrying graphics
	FigureCaptions    bool    // insert numbered figure captions
	TableCaptions     bool    // insert table titles and source notes
	FormatReferences  bool    // apply the reference list profile to marked regions
}

// DefaultOptions returns options with every pass enabled and standard
// measurements.
func DefaultOptions() *Options {
	return &Options{
		H1Caps:            true,
		H2Caps:            true,
		H3Caps:            true,
		Justify:           true,
		FooterPageNumbers: true,
		FooterPosition:    FooterRight,
		FirstLineIndentCm: DefaultIndentCm,
		CenterImages:      true,
		FigureCaptions:    true,
		TableCaptions:     true,
		FormatReferences:  true,
	}
}

// Validate checks that option values are in range.
// Returns nil if o is nil (nil means use defaults).
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	switch strings.ToLower(o.FooterPosition) {
	case "", FooterLeft, FooterCenter, FooterRight:
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, o.FooterPosition)
	}
	if o.FirstLineIndentCm < MinIndentCm || o.FirstLineIndentCm > MaxIndentCm {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidIndent, o.FirstLineIndentCm, MinIndentCm, MaxIndentCm)
	}
	return nil
}

// Input contains formatting parameters.
type Input struct {
	Document []byte   // .docx content (required)
	Name     string   // original file name, used to derive the output name (optional)
	Options  *Options // formatting options (optional, nil = defaults)
}

// Result is the outcome of a formatting run.
type Result struct {
	Document []byte // formatted .docx content
	Name     string // suggested output file name
	Stats    Stats
	Issues   []TableIssue // rows the table pass could not harden
}

// Stats counts what each pass touched.
type Stats struct {
	Sections        int // sections whose margins were set
	Paragraphs      int // body paragraphs normalized
	Headings        int // headings uppercased
	ImagesCentered  int // image paragraphs centered
	FigureCaptions  int // figure captions inserted
	TableTitles     int // table titles inserted
	TableSources    int // table source notes inserted
	QuoteParagraphs int // paragraphs styled as long quotations
	RefParagraphs   int // paragraphs styled as reference entries
	FootersNumbered int // footers that received a page number
	BlanksRemoved   int // redundant empty paragraphs removed
}

// TableIssue identifies a table row that kept its original layout because
// the document structure around it was not recognized.
type TableIssue struct {
	Table int
	Row   int
	Err   error
}

// OutputName derives the suggested output file name: the input base name
// with an _ABNT suffix and a .docx extension. An empty name falls back to
// "documento".
func OutputName(name string) string {
	base := name
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if base == "" {
		base = "documento"
	}
	return base + "_ABNT.docx"
}
