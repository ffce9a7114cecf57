package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"github.com/slekup/blue/internal/errors"
)

// AppName is the application name used for directory naming.
const AppName = "blue"

// WorkspaceConfigFile is the name of the workspace configuration file.
const WorkspaceConfigFile = "blue.toml"

// DefaultDirPerm is the permission for directories blue creates.
// Install directories hold an executable other users may need to run.
const DefaultDirPerm = 0o755

// EnsureDir creates path and any missing parents on fsys.
// If perm is 0, DefaultDirPerm is used. Existing directories are left alone.
func EnsureDir(fsys afero.Fs, path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return fsys.MkdirAll(path, perm)
}

// DirExists reports whether path exists on fsys and is a directory.
func DirExists(fsys afero.Fs, path string) bool {
	ok, err := afero.DirExists(fsys, path)
	return err == nil && ok
}

// ResolveHome returns the user's home directory.
// The error is marked with errors.ErrHomeDirUnavailable.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "resolving home directory"), errors.ErrHomeDirUnavailable)
	}
	if home == "" {
		return "", errors.Mark(errors.New("home directory is empty"), errors.ErrHomeDirUnavailable)
	}
	return home, nil
}

// Executable returns the path of the running binary.
// The error is marked with errors.ErrSelfPathUnavailable.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "locating running executable"), errors.ErrSelfPathUnavailable)
	}
	return exe, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// UserConfigDir returns the per-user blue config directory: <ConfigHome>/blue.
func UserConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// WorkspaceConfigPath returns the blue.toml path inside dir.
func WorkspaceConfigPath(dir string) string {
	return filepath.Join(dir, WorkspaceConfigFile)
}
