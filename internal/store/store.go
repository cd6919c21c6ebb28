// Package store lists and reads templates from the template directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dongho-jung/templet/internal/constants"
	"github.com/dongho-jung/templet/internal/logging"
)

// ErrStoreUnavailable indicates the template directory is missing or
// unreadable. Callers report it and exit before any UI is shown.
var ErrStoreUnavailable = errors.New("template directory unavailable")

// Entry is a single template in the store.
type Entry struct {
	// Name is the filename, e.g. "meeting-notes.md".
	Name string
	// Path is the absolute path of the template file.
	Path string
	// Ext is the lowercased extension including the dot, "" for bare names.
	Ext string
	// HeaderEligible marks templates that receive the generated header.
	HeaderEligible bool
}

// Store reads templates from a single directory.
type Store struct {
	dir string
}

// New creates a store over the given directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the template directory path.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the templates in the directory, sorted by name. Only regular
// files on the supported-text allowlist are included; dotfiles and
// subdirectories are skipped. A missing or unreadable directory yields an
// error wrapping ErrStoreUnavailable.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, s.dir, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !de.Type().IsRegular() {
			continue
		}
		if !constants.IsSupportedTemplate(name) {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		entries = append(entries, Entry{
			Name:           name,
			Path:           filepath.Join(s.dir, name),
			Ext:            ext,
			HeaderEligible: constants.IsHeaderEligible(ext),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	logging.Debug("store: listed %d templates in %s", len(entries), s.dir)
	return entries, nil
}

// Read returns the full content of a template.
func (s *Store) Read(e Entry) ([]byte, error) {
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", e.Name, err)
	}
	return data, nil
}

// Setup creates the template directory if it does not exist.
func (s *Store) Setup() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create template directory %s: %w", s.dir, err)
	}
	return nil
}
