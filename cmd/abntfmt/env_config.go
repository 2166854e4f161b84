package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beatrizcardc/ABNT-formatter/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string  // ABNTFMT_CONFIG: config file path
	InputDir       string  // ABNTFMT_INPUT_DIR: default input directory
	OutputDir      string  // ABNTFMT_OUTPUT_DIR: default output directory
	FooterPosition string  // ABNTFMT_FOOTER_POSITION: left, center, right
	IndentCm       float64 // ABNTFMT_INDENT: first line indent in centimeters
	indentSet      bool
}

// knownEnvVars lists valid ABNTFMT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"ABNTFMT_CONFIG":          true,
	"ABNTFMT_INPUT_DIR":       true,
	"ABNTFMT_OUTPUT_DIR":      true,
	"ABNTFMT_FOOTER_POSITION": true,
	"ABNTFMT_INDENT":          true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("ABNTFMT_CONFIG"),
		InputDir:       os.Getenv("ABNTFMT_INPUT_DIR"),
		OutputDir:      os.Getenv("ABNTFMT_OUTPUT_DIR"),
		FooterPosition: os.Getenv("ABNTFMT_FOOTER_POSITION"),
	}

	if indent := os.Getenv("ABNTFMT_INDENT"); indent != "" {
		if v, err := strconv.ParseFloat(indent, 64); err == nil {
			cfg.IndentCm = v
			cfg.indentSet = true
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized ABNTFMT_* variables.
// Helps catch typos like ABNTFMT_POSICAO instead of ABNTFMT_FOOTER_POSITION.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "ABNTFMT_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment values on cfg. CLI flags are merged
// afterwards, so the precedence is: flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.FooterPosition != "" {
		cfg.Footer.Position = env.FooterPosition
	}
	if env.indentSet {
		cfg.Paragraph.FirstLineIndentCm = env.IndentCm
	}
}
