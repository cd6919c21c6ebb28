package config

import (
	"path/filepath"
	"testing"

	"github.com/dongho-jung/templet/internal/constants"
)

func TestResolve_FlagWins(t *testing.T) {
	t.Setenv(constants.EnvTemplateDir, "/env/dir")

	cfg, err := Resolve("/flag/dir")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.TemplateDir != "/flag/dir" {
		t.Errorf("TemplateDir = %q, want %q", cfg.TemplateDir, "/flag/dir")
	}
}

func TestResolve_EnvOverridesDefault(t *testing.T) {
	t.Setenv(constants.EnvTemplateDir, "/env/dir")

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.TemplateDir != "/env/dir" {
		t.Errorf("TemplateDir = %q, want %q", cfg.TemplateDir, "/env/dir")
	}
}

func TestResolve_DefaultUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(constants.EnvTemplateDir, "")

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := filepath.Join(home, constants.DocumentsDirName, constants.TemplateDirName)
	if cfg.TemplateDir != want {
		t.Errorf("TemplateDir = %q, want %q", cfg.TemplateDir, want)
	}
}

func TestResolve_ThemeFromEnv(t *testing.T) {
	t.Setenv(constants.EnvTheme, "dark")

	cfg, err := Resolve("/tmp/templates")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.Theme != ThemeDark {
		t.Errorf("Theme = %q, want %q", cfg.Theme, ThemeDark)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input string
		want  Theme
	}{
		{"light", ThemeLight},
		{"dark", ThemeDark},
		{"auto", ThemeAuto},
		{"", ThemeAuto},
		{"solarized", ThemeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseTheme(tt.input); got != tt.want {
				t.Errorf("ParseTheme(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
