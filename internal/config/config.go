// Package config loads formatting configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	abnt "github.com/beatrizcardc/ABNT-formatter"
	"github.com/beatrizcardc/ABNT-formatter/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for a formatting run. Zero values are not
// meaningful on their own; load on top of DefaultConfig so absent fields
// keep their defaults.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Headings   HeadingsConfig   `yaml:"headings"`
	Paragraph  ParagraphConfig  `yaml:"paragraph"`
	Footer     FooterConfig     `yaml:"footer"`
	Figures    FiguresConfig    `yaml:"figures"`
	Tables     TablesConfig     `yaml:"tables"`
	References ReferencesConfig `yaml:"references"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// HeadingsConfig selects which heading levels are uppercased.
type HeadingsConfig struct {
	H1Caps bool `yaml:"h1Caps"`
	H2Caps bool `yaml:"h2Caps"`
	H3Caps bool `yaml:"h3Caps"`
}

// ParagraphConfig defines body paragraph options.
type ParagraphConfig struct {
	Justify           bool    `yaml:"justify"`
	FirstLineIndentCm float64 `yaml:"firstLineIndentCm"`
}

// FooterConfig defines page numbering options.
type FooterConfig struct {
	PageNumbers bool   `yaml:"pageNumbers"`
	Position    string `yaml:"position"` // "left", "center", "right" (default: "right")
}

// FiguresConfig defines image handling options.
type FiguresConfig struct {
	Center   bool `yaml:"center"`
	Captions bool `yaml:"captions"`
}

// TablesConfig defines table annotation options.
type TablesConfig struct {
	Captions bool `yaml:"captions"`
}

// ReferencesConfig defines reference list options.
type ReferencesConfig struct {
	FormatBlock bool `yaml:"formatBlock"`
}

// DefaultConfig returns the configuration matching abnt.DefaultOptions:
// every pass enabled with standard measurements.
func DefaultConfig() *Config {
	return &Config{
		Headings:   HeadingsConfig{H1Caps: true, H2Caps: true, H3Caps: true},
		Paragraph:  ParagraphConfig{Justify: true, FirstLineIndentCm: abnt.DefaultIndentCm},
		Footer:     FooterConfig{PageNumbers: true, Position: abnt.FooterRight},
		Figures:    FiguresConfig{Center: true, Captions: true},
		Tables:     TablesConfig{Captions: true},
		References: ReferencesConfig{FormatBlock: true},
	}
}

// Options converts the configuration to formatting options.
func (c *Config) Options() *abnt.Options {
	return &abnt.Options{
		H1Caps:            c.Headings.H1Caps,
		H2Caps:            c.Headings.H2Caps,
		H3Caps:            c.Headings.H3Caps,
		Justify:           c.Paragraph.Justify,
		FooterPageNumbers: c.Footer.PageNumbers,
		FooterPosition:    c.Footer.Position,
		FirstLineIndentCm: c.Paragraph.FirstLineIndentCm,
		CenterImages:      c.Figures.Center,
		FigureCaptions:    c.Figures.Captions,
		TableCaptions:     c.Tables.Captions,
		FormatReferences:  c.References.FormatBlock,
	}
}

// Validate checks configuration values. Delegates the formatting fields to
// the option validation so the CLI and the library reject the same inputs.
func (c *Config) Validate() error {
	return c.Options().Validate()
}

// LoadConfig loads configuration from a file path or config name, layered
// on top of the defaults. If nameOrPath contains a path separator, it's
// treated as a file path. Otherwise, it's treated as a config name and
// searched in standard locations. Returns error if the file is not found
// (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/abntfmt/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "abntfmt", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
