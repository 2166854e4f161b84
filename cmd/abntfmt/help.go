package main

import (
	"fmt"
	"io"
)

const usageText = `abntfmt - format .docx documents to academic layout standards

Usage:
  abntfmt [flags] <input.docx> [more.docx ...]

Each input produces <name>_ABNT.docx next to the original, or in the
directory given by --output.

Markers recognized in the document text:
  [[CITACAO_LONGA]] ... [[/CITACAO_LONGA]]   long quotation block
  [[REFERENCIAS]] ... [[/REFERENCIAS]]       reference list (hanging indent)

Flags:
  -c, --config string          config file path or name
  -o, --output string          output directory (default: next to input)
  -q, --quiet                  suppress progress output
  -v, --verbose                verbose output
      --version                print version and exit
  -h, --help                   print this help

Formatting flags (override the config file):
      --h1-caps                uppercase level 1 headings (default true)
      --h2-caps                uppercase level 2 headings (default true)
      --h3-caps                uppercase level 3 headings (default true)
      --justify                justify body paragraphs (default true)
      --indent float           first line indent in centimeters (default 1.25)
      --page-numbers           add page numbers to footers (default true)
      --footer-position string page number position: left, center, right (default "right")
      --center-images          center paragraphs with images (default true)
      --fig-captions           insert figure captions (default true)
      --tab-captions           insert table titles and sources (default true)
      --refs-block             format marked reference regions (default true)

Examples:
  abntfmt tese.docx
  abntfmt --indent 1.5 --footer-position center tese.docx
  abntfmt -c abnt.yaml -o ./out capitulo1.docx capitulo2.docx
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
