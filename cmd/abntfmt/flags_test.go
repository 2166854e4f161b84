package main

import (
	"testing"

	abnt "github.com/beatrizcardc/ABNT-formatter"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags, inputs, err := parseFlags([]string{"abntfmt", "tese.docx"})
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 1 || inputs[0] != "tese.docx" {
		t.Errorf("inputs = %v", inputs)
	}
	if !flags.format.h1Caps || !flags.format.justify || !flags.format.pageNumbers {
		t.Error("formatting flags should default to enabled")
	}
	if flags.format.indentCm != abnt.DefaultIndentCm {
		t.Errorf("indent = %v", flags.format.indentCm)
	}
	if flags.format.footerPosition != abnt.FooterRight {
		t.Errorf("footer position = %q", flags.format.footerPosition)
	}
	if flags.common.quiet || flags.common.verbose || flags.help || flags.version {
		t.Error("mode flags should default to off")
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"abntfmt", "--no-such-flag"}); err == nil {
		t.Error("want error for unknown flag")
	}
}

func TestApply_OnlyChangedFlagsOverride(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{
		"abntfmt", "--h2-caps=false", "--indent=2", "--footer-position=center", "tese.docx",
	})
	if err != nil {
		t.Fatal(err)
	}

	opts := abnt.DefaultOptions()
	opts.H1Caps = false // from config, no flag set
	flags.apply(opts)

	if opts.H1Caps {
		t.Error("unset flag should not override config value")
	}
	if opts.H2Caps {
		t.Error("--h2-caps=false should disable H2 caps")
	}
	if opts.FirstLineIndentCm != 2 {
		t.Errorf("indent = %v, want 2", opts.FirstLineIndentCm)
	}
	if opts.FooterPosition != abnt.FooterCenter {
		t.Errorf("footer position = %q", opts.FooterPosition)
	}
	if !opts.Justify || !opts.CenterImages {
		t.Error("untouched options should keep their values")
	}
}
