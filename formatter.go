package abnt

import (
	"context"
	"fmt"
	"strings"

	"github.com/beatrizcardc/ABNT-formatter/internal/docx"
	"github.com/beatrizcardc/ABNT-formatter/internal/pipeline"
)

// Formatter orchestrates the formatting pipeline. A Formatter is stateless
// between runs and safe for concurrent use.
type Formatter struct {
	cfg formatterConfig
}

// formatterConfig holds internal configuration for Formatter.
type formatterConfig struct {
	quoteOpen  string
	quoteClose string
	refsOpen   string
	refsClose  string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithQuoteMarkers overrides the long quotation marker tokens.
func WithQuoteMarkers(open, close string) Option {
	return func(f *Formatter) {
		f.cfg.quoteOpen = open
		f.cfg.quoteClose = close
	}
}

// WithReferenceMarkers overrides the reference list marker tokens.
func WithReferenceMarkers(open, close string) Option {
	return func(f *Formatter) {
		f.cfg.refsOpen = open
		f.cfg.refsClose = close
	}
}

// New creates a Formatter with the standard marker tokens.
// Use options to customize behavior (e.g., WithQuoteMarkers).
func New(opts ...Option) *Formatter {
	f := &Formatter{
		cfg: formatterConfig{
			quoteOpen:  QuoteOpenMarker,
			quoteClose: QuoteCloseMarker,
			refsOpen:   RefsOpenMarker,
			refsClose:  RefsCloseMarker,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format runs the full pipeline on a .docx document and returns the
// formatted document as bytes. The context is used for cancellation
// between passes.
func (f *Formatter) Format(ctx context.Context, input Input) (*Result, error) {
	if err := f.validateInput(input); err != nil {
		return nil, err
	}
	opts := input.Options
	if opts == nil {
		opts = DefaultOptions()
	}

	doc, err := docx.Open(input.Document)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDocument, err)
	}

	result := &Result{Name: OutputName(input.Name)}
	stats := &result.Stats

	// Page geometry and the default style.
	stats.Sections = pipeline.ApplyPageMargins(doc)
	if err := pipeline.ApplyBaseStyle(doc, opts.FirstLineIndentCm); err != nil {
		return nil, fmt.Errorf("applying base style: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Paragraph and heading normalization.
	stats.Paragraphs = pipeline.FormatBodyParagraphs(doc, pipeline.BodyOptions{
		Justify:           opts.Justify,
		FirstLineIndentCm: opts.FirstLineIndentCm,
	})
	stats.Headings = pipeline.CapitalizeHeadings(doc, pipeline.CapsOptions{
		H1: opts.H1Caps,
		H2: opts.H2Caps,
		H3: opts.H3Caps,
	})
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Structural elements: images, tables, captions.
	if opts.CenterImages {
		stats.ImagesCentered = pipeline.CenterImageParagraphs(doc)
	}
	for _, outcome := range pipeline.HardenTables(doc) {
		for _, row := range outcome.Rows {
			if row.Err != nil {
				result.Issues = append(result.Issues, TableIssue{Table: outcome.Table, Row: row.Index, Err: row.Err})
			}
		}
	}
	capStats, err := pipeline.InsertCaptions(doc, opts.FigureCaptions, opts.TableCaptions)
	if err != nil {
		return nil, fmt.Errorf("inserting captions: %w", err)
	}
	stats.FigureCaptions = capStats.Figures
	stats.TableTitles = capStats.TableTitles
	stats.TableSources = capStats.TableSources
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Marker regions overwrite the body paragraph formatting.
	stats.QuoteParagraphs = pipeline.ApplyRegion(doc, f.cfg.quoteOpen, f.cfg.quoteClose, pipeline.LongQuoteStyle)
	if opts.FormatReferences {
		stats.RefParagraphs = pipeline.ApplyRegion(doc, f.cfg.refsOpen, f.cfg.refsClose, pipeline.ReferenceStyle)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Page numbers and cleanup.
	if opts.FooterPageNumbers {
		n, err := pipeline.AddFooterPageNumbers(doc, positionOrDefault(opts.FooterPosition))
		if err != nil {
			return nil, fmt.Errorf("adding page numbers: %w", err)
		}
		stats.FootersNumbered = n
	}
	stats.BlanksRemoved = pipeline.CollapseBlankParagraphs(doc)

	out, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveDocument, err)
	}
	result.Document = out
	return result, nil
}

// validateInput checks that required fields are present and valid.
func (f *Formatter) validateInput(input Input) error {
	if len(input.Document) == 0 {
		return ErrEmptyDocument
	}
	if f.cfg.quoteOpen == "" || f.cfg.quoteClose == "" || f.cfg.refsOpen == "" || f.cfg.refsClose == "" {
		return ErrEmptyMarker
	}
	return input.Options.Validate()
}

func positionOrDefault(position string) string {
	if position == "" {
		return FooterRight
	}
	return strings.ToLower(position)
}
