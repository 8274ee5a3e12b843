// Package fs provides file-based implementations of the checkhtml
// reader, checklist loader and report store.
package fs

import (
	"context"
	"io"
	"os"

	"github.com/fwojciec/checkhtml"
	"golang.org/x/net/html/charset"
)

// Ensure Reader implements checkhtml.Reader at compile time.
var _ checkhtml.Reader = (*Reader)(nil)

// Reader reads HTML documents from the local file system.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the contents of the file at path decoded to UTF-8.
// The encoding is taken from a byte order mark or <meta charset>
// declaration, or detected from the content.
func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path) //nolint:gosec // User-provided HTML path is intentional
	if err != nil {
		return "", err
	}
	defer f.Close()

	cr, err := charset.NewReader(f, "text/html")
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(cr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
