// Package fs provides file-based persistence for digests.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/hndigest"
)

// Filename returns the digest filename for a date.
// Example: hn_digest_2026-08-31.md
func Filename(date time.Time) string {
	return fmt.Sprintf("hn_digest_%s.md", date.Format("2006-01-02"))
}

// FormatDigest formats a digest as markdown: a level-1 dated heading
// followed by the digest text verbatim.
func FormatDigest(digest *hndigest.Digest) string {
	return fmt.Sprintf("# Hacker News Digest - %s\n\n%s", digest.Date.Format("2006-01-02"), digest.Text)
}

// Ensure Writer implements hndigest.DigestWriter at compile time.
var _ hndigest.DigestWriter = (*Writer)(nil)

// Writer writes digests as markdown files to a directory.
type Writer struct {
	dir string
}

// NewWriter creates a new Writer that writes to the given directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteDigest writes the digest to disk, overwriting any existing file
// for the same date.
func (w *Writer) WriteDigest(ctx context.Context, digest *hndigest.Digest) error {
	if err := digest.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.dir, Filename(digest.Date))
	return os.WriteFile(path, []byte(FormatDigest(digest)), 0644)
}

// Path returns the file path a digest with the given date is written to.
func (w *Writer) Path(date time.Time) string {
	return filepath.Join(w.dir, Filename(date))
}
