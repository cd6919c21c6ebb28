// Package service provides the copy engine for templet.
package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dongho-jung/templet/internal/constants"
	"github.com/dongho-jung/templet/internal/fileutil"
	"github.com/dongho-jung/templet/internal/logging"
	"github.com/dongho-jung/templet/internal/store"
)

// ErrDestinationConflict indicates a file with the destination name already
// exists in the working directory.
var ErrDestinationConflict = errors.New("destination file already exists")

// Options control a single copy operation.
type Options struct {
	// Plain skips the generated header even for header-eligible templates.
	Plain bool
	// Force overwrites an existing destination file.
	Force bool
	// DatePrefix prefixes the destination name with the current date.
	DatePrefix bool
}

// Copier copies templates into a destination directory.
type Copier struct {
	store   *store.Store
	destDir string
	now     func() time.Time
}

// NewCopier creates a copier writing into destDir.
func NewCopier(st *store.Store, destDir string) *Copier {
	return &Copier{
		store:   st,
		destDir: destDir,
		now:     time.Now,
	}
}

// Copy copies the template into the destination directory and returns the
// destination filename. Header-eligible templates get the generated header
// unless opts.Plain is set. The write is atomic: a failure never leaves a
// partial destination file.
func (c *Copier) Copy(e store.Entry, opts Options) (string, error) {
	content, err := c.store.Read(e)
	if err != nil {
		return "", err
	}

	name := e.Name
	if opts.DatePrefix {
		name = c.now().Format(constants.DatePrefixFormat) + "-" + name
	}
	dest := filepath.Join(c.destDir, name)

	if !opts.Force {
		if _, err := os.Lstat(dest); err == nil {
			return "", fmt.Errorf("%w: %s", ErrDestinationConflict, name)
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to check destination %s: %w", name, err)
		}
	}

	if e.HeaderEligible && !opts.Plain {
		content = append(renderHeader(e.Name, c.now()), content...)
	}

	if err := fileutil.WriteFileAtomic(dest, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	logging.Debug("copier: wrote %s (%d bytes, header=%v)", name, len(content), e.HeaderEligible && !opts.Plain)
	return name, nil
}

// renderHeader builds the two header lines and separator prepended to
// header-eligible templates.
func renderHeader(templateName string, now time.Time) []byte {
	return []byte(fmt.Sprintf("# ✦ Template: %s\n### 📅 %s\n---\n\n",
		templateName, now.Format(constants.HeaderTimeFormat)))
}
