// Package config handles templet runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dongho-jung/templet/internal/constants"
)

// Theme controls the TUI color scheme.
type Theme string

// Theme values.
const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config holds the resolved runtime settings.
type Config struct {
	// TemplateDir is the directory templates are read from.
	TemplateDir string
	// Theme is the TUI color scheme preference.
	Theme Theme
}

// Resolve builds the configuration. The template directory is taken from
// flagDir when non-empty, then the TEMPLET_DIR environment variable, then
// ~/Documents/templet. Passing the directory explicitly lets tests point the
// store at a temporary directory.
func Resolve(flagDir string) (*Config, error) {
	dir := flagDir
	if dir == "" {
		dir = os.Getenv(constants.EnvTemplateDir)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, constants.DocumentsDirName, constants.TemplateDirName)
	}

	return &Config{
		TemplateDir: dir,
		Theme:       ParseTheme(os.Getenv(constants.EnvTheme)),
	}, nil
}

// ParseTheme maps a theme string to a Theme, defaulting to auto.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return ThemeAuto
	}
}
