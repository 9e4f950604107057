// Package extract turns stored PDF and PPTX files into normalized plain
// text plus a page/slide count. Unreadable files fail with an
// *ExtractionError wrapping the original cause; empty but well-formed files
// yield empty text and the unit count actually seen.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExtractionError marks a file as unreadable or corrupt. The worker treats
// it as fatal for the job; it is never retried.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extract dispatches on the file extension and returns normalized text and
// the number of pages or slides.
func Extract(path string) (string, int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF(path)
	case ".pptx":
		return PPTX(path)
	default:
		return "", 0, &ExtractionError{Path: path, Err: fmt.Errorf("unsupported format %q", filepath.Ext(path))}
	}
}

// normalizeLine collapses internal whitespace runs to single spaces.
func normalizeLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
