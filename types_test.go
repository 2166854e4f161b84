package abnt_test

import (
	"errors"
	"testing"

	abnt "github.com/beatrizcardc/ABNT-formatter"
)

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"docx input", "tese.docx", "tese_ABNT.docx"},
		{"doc input", "monografia.doc", "monografia_ABNT.docx"},
		{"no extension", "artigo", "artigo_ABNT.docx"},
		{"dotted base", "tese.v2.docx", "tese.v2_ABNT.docx"},
		{"empty name", "", "documento_ABNT.docx"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := abnt.OutputName(tt.in); got != tt.want {
				t.Errorf("OutputName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    *abnt.Options
		wantErr error
	}{
		{"nil options", nil, nil},
		{"defaults", abnt.DefaultOptions(), nil},
		{"empty position", &abnt.Options{FirstLineIndentCm: 1.25}, nil},
		{"uppercase position tolerated", &abnt.Options{FooterPosition: "Center", FirstLineIndentCm: 1.25}, nil},
		{"bad position", &abnt.Options{FooterPosition: "bottom"}, abnt.ErrInvalidFooterPosition},
		{"indent too large", &abnt.Options{FirstLineIndentCm: 3.5}, abnt.ErrInvalidIndent},
		{"indent negative", &abnt.Options{FirstLineIndentCm: -0.1}, abnt.ErrInvalidIndent},
		{"zero indent allowed", &abnt.Options{FirstLineIndentCm: 0}, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultOptions_AllPassesEnabled(t *testing.T) {
	t.Parallel()

	o := abnt.DefaultOptions()
	if !o.H1Caps || !o.H2Caps || !o.H3Caps || !o.Justify || !o.FooterPageNumbers ||
		!o.CenterImages || !o.FigureCaptions || !o.TableCaptions || !o.FormatReferences {
		t.Errorf("defaults should enable every pass: %+v", o)
	}
	if o.FirstLineIndentCm != abnt.DefaultIndentCm {
		t.Errorf("FirstLineIndentCm = %v", o.FirstLineIndentCm)
	}
	if o.FooterPosition != abnt.FooterRight {
		t.Errorf("FooterPosition = %q", o.FooterPosition)
	}
}
