package fileutil

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// SameFile reports whether a and b name the same file on fsys, either by
// cleaned path or, when both exist, by os.SameFile identity.
func SameFile(fsys afero.Fs, a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := fsys.Stat(a)
	if err != nil {
		return false
	}
	bi, err := fsys.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
