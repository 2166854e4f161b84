package main

import (
	abnt "github.com/beatrizcardc/ABNT-formatter"
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across runs.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// formatFlags mirrors the formatting options. Only flags the user actually
// set override the config file; flagSet.Changed tells them apart.
type formatFlags struct {
	h1Caps         bool
	h2Caps         bool
	h3Caps         bool
	justify        bool
	indentCm       float64
	pageNumbers    bool
	footerPosition string
	centerImages   bool
	figCaptions    bool
	tabCaptions    bool
	refsBlock      bool
}

// cliFlags holds all parsed flags plus the flag set for Changed lookups.
type cliFlags struct {
	common  commonFlags
	format  formatFlags
	output  string
	version bool
	help    bool

	fs *flag.FlagSet
}

// parseFlags parses command line arguments. Returns the flags and the
// positional arguments (input files).
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("abntfmt", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // run prints usage; keep pflag quiet

	fs.StringVarP(&f.common.config, "config", "c", "", "config file path or name")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "verbose output")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: next to input)")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "print usage and exit")

	fs.BoolVar(&f.format.h1Caps, "h1-caps", true, "uppercase level 1 headings")
	fs.BoolVar(&f.format.h2Caps, "h2-caps", true, "uppercase level 2 headings")
	fs.BoolVar(&f.format.h3Caps, "h3-caps", true, "uppercase level 3 headings")
	fs.BoolVar(&f.format.justify, "justify", true, "justify body paragraphs")
	fs.Float64Var(&f.format.indentCm, "indent", abnt.DefaultIndentCm, "first line indent in centimeters")
	fs.BoolVar(&f.format.pageNumbers, "page-numbers", true, "add page numbers to footers")
	fs.StringVar(&f.format.footerPosition, "footer-position", abnt.FooterRight, "page number position: left, center, right")
	fs.BoolVar(&f.format.centerImages, "center-images", true, "center paragraphs with images")
	fs.BoolVar(&f.format.figCaptions, "fig-captions", true, "insert figure captions")
	fs.BoolVar(&f.format.tabCaptions, "tab-captions", true, "insert table titles and sources")
	fs.BoolVar(&f.format.refsBlock, "refs-block", true, "format marked reference regions")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	f.fs = fs
	return f, fs.Args(), nil
}

// apply overrides opts with every formatting flag the user set explicitly.
func (f *cliFlags) apply(opts *abnt.Options) {
	if f.fs.Changed("h1-caps") {
		opts.H1Caps = f.format.h1Caps
	}
	if f.fs.Changed("h2-caps") {
		opts.H2Caps = f.format.h2Caps
	}
	if f.fs.Changed("h3-caps") {
		opts.H3Caps = f.format.h3Caps
	}
	if f.fs.Changed("justify") {
		opts.Justify = f.format.justify
	}
	if f.fs.Changed("indent") {
		opts.FirstLineIndentCm = f.format.indentCm
	}
	if f.fs.Changed("page-numbers") {
		opts.FooterPageNumbers = f.format.pageNumbers
	}
	if f.fs.Changed("footer-position") {
		opts.FooterPosition = f.format.footerPosition
	}
	if f.fs.Changed("center-images") {
		opts.CenterImages = f.format.centerImages
	}
	if f.fs.Changed("fig-captions") {
		opts.FigureCaptions = f.format.figCaptions
	}
	if f.fs.Changed("tab-captions") {
		opts.TableCaptions = f.format.tabCaptions
	}
	if f.fs.Changed("refs-block") {
		opts.FormatReferences = f.format.refsBlock
	}
}
