package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beatrizcardc/ABNT-formatter/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("ABNTFMT_CONFIG", "/etc/abnt.yaml")
	t.Setenv("ABNTFMT_INPUT_DIR", "/docs/in")
	t.Setenv("ABNTFMT_OUTPUT_DIR", "/docs/out")
	t.Setenv("ABNTFMT_FOOTER_POSITION", "center")
	t.Setenv("ABNTFMT_INDENT", "1.5")

	env := loadEnvConfig()
	if env.ConfigPath != "/etc/abnt.yaml" {
		t.Errorf("ConfigPath = %q", env.ConfigPath)
	}
	if env.InputDir != "/docs/in" || env.OutputDir != "/docs/out" {
		t.Errorf("dirs = %q, %q", env.InputDir, env.OutputDir)
	}
	if env.FooterPosition != "center" {
		t.Errorf("FooterPosition = %q", env.FooterPosition)
	}
	if !env.indentSet || env.IndentCm != 1.5 {
		t.Errorf("IndentCm = %v (set=%v)", env.IndentCm, env.indentSet)
	}
}

func TestLoadEnvConfig_IgnoresBadIndent(t *testing.T) {
	t.Setenv("ABNTFMT_INDENT", "um vírgula cinco")

	env := loadEnvConfig()
	if env.indentSet {
		t.Error("unparseable indent should be ignored")
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	applyEnvConfig(&envConfig{
		OutputDir:      "/docs/out",
		FooterPosition: "left",
		IndentCm:       2,
		indentSet:      true,
	}, cfg)

	if cfg.Output.DefaultDir != "/docs/out" {
		t.Errorf("output dir = %q", cfg.Output.DefaultDir)
	}
	if cfg.Footer.Position != "left" {
		t.Errorf("position = %q", cfg.Footer.Position)
	}
	if cfg.Paragraph.FirstLineIndentCm != 2 {
		t.Errorf("indent = %v", cfg.Paragraph.FirstLineIndentCm)
	}
	// Untouched values keep their defaults.
	if cfg.Input.DefaultDir != "" || !cfg.Footer.PageNumbers {
		t.Error("unset env values should not change the config")
	}
}

func TestApplyEnvConfig_EmptyEnvLeavesConfigAlone(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	want := *config.DefaultConfig()
	applyEnvConfig(&envConfig{}, cfg)
	if *cfg != want {
		t.Errorf("config changed: %+v", *cfg)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("ABNTFMT_POSICAO", "direita")
	t.Setenv("ABNTFMT_CONFIG", "abnt.yaml")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "ABNTFMT_POSICAO") {
		t.Errorf("missing warning for unknown variable: %q", out)
	}
	if strings.Contains(out, "ABNTFMT_CONFIG") {
		t.Errorf("known variable should not be warned about: %q", out)
	}
}
