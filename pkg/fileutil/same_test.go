package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/a/blue", []byte("x"), 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/b/blue", []byte("x"), 0o755))

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "/a/blue", "/a/blue", true},
		{"uncleaned", "/a/./bin/../blue", "/a/blue", true},
		{"different files", "/a/blue", "/b/blue", false},
		{"missing destination", "/a/blue", "/c/blue", false},
		{"missing but same path", "/c/blue", "/c//blue", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameFile(fsys, tt.a, tt.b))
		})
	}
}

func TestSameFile_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "blue")
	link := filepath.Join(dir, "blue-link")
	require.NoError(t, os.WriteFile(target, []byte("blue"), 0o755))
	require.NoError(t, os.Symlink(target, link))

	fsys := afero.NewOsFs()
	assert.True(t, SameFile(fsys, link, target))
	assert.False(t, SameFile(fsys, link, filepath.Join(dir, "other")))
}
