package install

import (
	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/paths"
)

// Target is the resolved install location for one run.
type Target struct {
	OS OS

	// Dir is the install directory. It exists once Resolve returns.
	Dir string

	// Home is the home directory used to compute Dir. It is empty on
	// macOS, where Dir is fixed.
	Home string

	platform Platform
}

// Join returns the path of name inside t.Dir.
func (t *Target) Join(name string) string {
	return t.platform.Join(t.Dir, name)
}

// Resolve computes the install directory for env.OS and creates it if it
// does not exist. For an unsupported OS nothing is touched and the error
// is errors.ErrUnsupportedPlatform.
func Resolve(env Env) (*Target, error) {
	env = env.withDefaults()
	p := PlatformFor(env.OS)

	dir, home, err := p.InstallDir(env.Home)
	if err != nil {
		return nil, err
	}

	if !paths.DirExists(env.FS, dir) {
		env.Logger.Debug("creating install directory", "dir", dir)
		if err := paths.EnsureDir(env.FS, dir, 0); err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrDirCreateFailed), "creating directory %s", dir)
		}
	}

	return &Target{
		OS:       env.OS,
		Dir:      dir,
		Home:     home,
		platform: p,
	}, nil
}
