package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slekup/blue/internal/errors"
)

func TestResolveHome(t *testing.T) {
	got, err := ResolveHome()
	want, wantErr := os.UserHomeDir()

	if wantErr != nil {
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrHomeDirUnavailable))
		return
	}
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveHome_Unset(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")
	t.Setenv("home", "")

	_, err := ResolveHome()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrHomeDirUnavailable), "got %v", err)
}

func TestExecutable(t *testing.T) {
	exe, err := Executable()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(exe), "Executable() = %q, want absolute path", exe)
}

func TestEnsureDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := filepath.Join("/home", "alice", ".blue", "bin")

	require.NoError(t, EnsureDir(fsys, dir, 0))
	assert.True(t, DirExists(fsys, dir))

	// Idempotent.
	require.NoError(t, EnsureDir(fsys, dir, 0o700))
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	fsys := afero.NewOsFs()
	root := t.TempDir()
	blocker := filepath.Join(root, ".blue")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	err := EnsureDir(fsys, filepath.Join(blocker, "bin"), 0)
	assert.Error(t, err)
}

func TestDirExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/file", []byte("x"), 0o644))
	require.NoError(t, fsys.MkdirAll("/dir", 0o755))

	assert.True(t, DirExists(fsys, "/dir"))
	assert.False(t, DirExists(fsys, "/file"))
	assert.False(t, DirExists(fsys, "/missing"))
}

func TestUserConfigDir(t *testing.T) {
	got := UserConfigDir()
	if !filepath.IsAbs(got) {
		t.Errorf("UserConfigDir() = %q, want absolute path", got)
	}
	if !strings.HasPrefix(got, ConfigHome()) {
		t.Errorf("UserConfigDir() = %q, want path under %q", got, ConfigHome())
	}
	if filepath.Base(got) != AppName {
		t.Errorf("UserConfigDir() = %q, want it to end with %q", got, AppName)
	}
}

func TestWorkspaceConfigPath(t *testing.T) {
	got := WorkspaceConfigPath(filepath.Join("work", "proj"))
	want := filepath.Join("work", "proj", "blue.toml")
	if got != want {
		t.Errorf("WorkspaceConfigPath() = %q, want %q", got, want)
	}
}
