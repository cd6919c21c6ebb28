// Package constants defines shared constants used throughout templet.
package constants

import (
	"path/filepath"
	"strings"
)

// AppName is the binary and project name.
const AppName = "templet"

// Environment variables recognized by templet.
const (
	EnvTemplateDir = "TEMPLET_DIR"
	EnvTheme       = "TEMPLET_THEME"
	EnvDebug       = "TEMPLET_DEBUG"
	EnvLogFile     = "TEMPLET_LOG"
)

// Default template directory components under the user's home.
const (
	DocumentsDirName = "Documents"
	TemplateDirName  = "templet"
)

// Timestamp formats used by the copy engine.
const (
	HeaderTimeFormat = "2006-01-02 • 15:04:05"
	DatePrefixFormat = "2006-01-02"
)

// headerExtensions are the extensions that receive a generated header when
// copied. Matching is case-insensitive: ".TXT" gets a header too.
var headerExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// textExtensions are the file extensions templet treats as templates.
var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".markdown": true, ".mdown": true, ".mkd": true,
	".py": true, ".js": true, ".ts": true, ".tsx": true, ".jsx": true,
	".html": true, ".css": true, ".scss": true, ".sass": true, ".less": true,
	".yml": true, ".yaml": true, ".json": true, ".xml": true, ".toml": true,
	".ini": true, ".cfg": true, ".conf": true, ".env": true, ".rst": true,
	".sh": true, ".bash": true, ".zsh": true, ".fish": true,
	".tex": true, ".csv": true, ".sql": true, ".vim": true, ".lua": true,
	".rb": true, ".go": true, ".rs": true, ".java": true, ".kt": true,
	".c": true, ".cpp": true, ".h": true, ".hpp": true, ".php": true,
	".swift": true, ".r": true, ".jl": true, ".pl": true, ".pm": true,
	".dart": true, ".gradle": true, ".clj": true, ".ex": true, ".exs": true,
	".elm": true, ".ml": true, ".mli": true, ".nim": true, ".zig": true,
	".vue": true, ".svelte": true,
	// Suffixed ignore templates such as "Go.gitignore"; the literal dotfiles
	// are excluded by the store's hidden-file rule.
	".gitignore": true, ".dockerignore": true,
}

// bareTextNames are extensionless files that are still text templates.
var bareTextNames = map[string]bool{
	"Dockerfile": true, "Makefile": true, "Rakefile": true, "Gemfile": true,
	"Pipfile": true, "Procfile": true, "Vagrantfile": true, "Brewfile": true,
	"Guardfile": true, "Justfile": true, "LICENSE": true, "README": true,
	"CHANGELOG": true, "AUTHORS": true, "CONTRIBUTORS": true, "COPYING": true,
	"INSTALL": true, "NOTICE": true, "MANIFEST": true,
}

// IsSupportedTemplate reports whether a filename is listed as a template.
func IsSupportedTemplate(name string) bool {
	if bareTextNames[name] {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	return textExtensions[ext]
}

// IsHeaderEligible reports whether files with the given extension get the
// generated header on copy. The extension includes the leading dot and may
// be in any case.
func IsHeaderEligible(ext string) bool {
	return headerExtensions[strings.ToLower(ext)]
}
