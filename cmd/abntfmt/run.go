package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	abnt "github.com/beatrizcardc/ABNT-formatter"
	"github.com/beatrizcardc/ABNT-formatter/internal/config"
	"github.com/beatrizcardc/ABNT-formatter/internal/fileutil"
	"github.com/beatrizcardc/ABNT-formatter/internal/hints"
)

// Sentinel errors for CLI I/O operations.
var (
	ErrNoInput       = errors.New("no input file specified")
	ErrReadDocument  = errors.New("failed to read document")
	ErrWriteDocument = errors.New("failed to write document")
)

// run executes the CLI: resolve configuration, discover inputs, and format
// each document in turn.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		return err
	}
	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintln(env.Stdout, "abntfmt "+Version)
		return nil
	}

	envCfg := loadEnvConfig()
	if flags.common.verbose {
		warnUnknownEnvVars(env.Stderr)
	}

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg := config.DefaultConfig()
	if configName != "" {
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return err
		}
	}
	applyEnvConfig(envCfg, cfg)
	opts := cfg.Options()
	flags.apply(opts)
	if err := opts.Validate(); err != nil {
		return err
	}

	if len(inputs) == 0 {
		if cfg.Input.DefaultDir == "" {
			return ErrNoInput
		}
		inputs, err = discoverInputs(cfg.Input.DefaultDir)
		if err != nil {
			return err
		}
	}

	outDir := flags.output
	if outDir == "" {
		outDir = cfg.Output.DefaultDir
	}

	formatter := abnt.New()
	for _, input := range inputs {
		if err := formatOne(ctx, formatter, input, outDir, opts, flags, env); err != nil {
			return err
		}
	}
	return nil
}

func formatOne(ctx context.Context, formatter *abnt.Formatter, input, outDir string, opts *abnt.Options, flags *cliFlags, env *Environment) error {
	data, err := os.ReadFile(input) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadDocument, input, err)
	}

	result, err := formatter.Format(ctx, abnt.Input{
		Document: data,
		Name:     filepath.Base(input),
		Options:  opts,
	})
	if err != nil {
		return fmt.Errorf("formatting %s: %w", input, err)
	}

	outPath := filepath.Join(dirOrInputDir(outDir, input), result.Name)
	if err := fileutil.WriteFileAtomic(outPath, result.Document, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteDocument, outPath, err)
	}

	for _, issue := range result.Issues {
		fmt.Fprintf(env.Stderr, "warning: %s: table %d row %d kept original layout: %v\n",
			input, issue.Table+1, issue.Row+1, issue.Err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%s -> %s\n", input, outPath)
	}
	if flags.common.verbose {
		printStats(env.Stdout, result.Stats)
	}
	return nil
}

func dirOrInputDir(outDir, input string) string {
	if outDir != "" {
		return outDir
	}
	return filepath.Dir(input)
}

// discoverInputs lists the .docx files of a directory, skipping documents
// that already carry the output suffix so runs do not feed on their own
// results.
func discoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoInput, dir, err)
	}
	var inputs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".docx") {
			continue
		}
		if strings.HasSuffix(name, "_ABNT.docx") || strings.HasPrefix(name, "~$") {
			continue
		}
		inputs = append(inputs, filepath.Join(dir, name))
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no .docx files in %s", ErrNoInput, dir)
	}
	return inputs, nil
}

// hintFor maps an error to an actionable hint, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, abnt.ErrOpenDocument):
		return hints.ForNotDocx()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	}
	return ""
}

func printStats(w io.Writer, s abnt.Stats) {
	fmt.Fprintf(w, "  sections: %d, paragraphs: %d, headings: %d\n", s.Sections, s.Paragraphs, s.Headings)
	fmt.Fprintf(w, "  images centered: %d, figure captions: %d, table titles: %d, table sources: %d\n",
		s.ImagesCentered, s.FigureCaptions, s.TableTitles, s.TableSources)
	fmt.Fprintf(w, "  quote paragraphs: %d, reference paragraphs: %d\n", s.QuoteParagraphs, s.RefParagraphs)
	fmt.Fprintf(w, "  footers numbered: %d, blank paragraphs removed: %d\n", s.FootersNumbered, s.BlanksRemoved)
}
