package util

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrInvalidFileName is returned when a name is empty or resolves to a
// path component that would escape the target directory.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName strips any path components from an uploaded file name
// and rejects names that cannot be stored safely.
func SanitizeFileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	name = filepath.Base(name)
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", ErrInvalidFileName
	}
	return name, nil
}
