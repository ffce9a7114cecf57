package install

import (
	"strings"

	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/pkg/fileutil"
)

// Binary records a completed copy of the running executable.
type Binary struct {
	// Source is the path of the running executable.
	Source string
	// Dest is t.Dir joined with the executable's file name.
	Dest string
	// Size is the number of bytes copied, or the size of the existing
	// file when InPlace is set.
	Size int64
	// InPlace is set when the running executable already is Dest, so
	// nothing was copied.
	InPlace bool
}

// InstallBinary copies the running executable into t.Dir under its own
// file name, replacing any existing file there.
func InstallBinary(env Env, t *Target) (*Binary, error) {
	env = env.withDefaults()

	src, err := env.Executable()
	if err != nil {
		return nil, errors.Mark(err, errors.ErrSelfPathUnavailable)
	}

	name := binaryName(src)
	if name == "" {
		return nil, errors.Mark(errors.Newf("no file name in executable path %q", src), errors.ErrSelfPathUnavailable)
	}

	dest := t.Join(name)

	// Copying a file onto itself truncates it before reading.
	if fileutil.SameFile(env.FS, src, dest) {
		info, err := env.FS.Stat(dest)
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrCopyFailed), "checking %s", dest)
		}
		env.Logger.Info("binary already installed", "dest", dest)
		return &Binary{Source: src, Dest: dest, Size: info.Size(), InPlace: true}, nil
	}

	env.Logger.Debug("copying binary", "src", src, "dest", dest)

	n, err := fileutil.CopyFile(env.FS, src, env.FS, dest, fileutil.ExecPerm)
	if err != nil {
		env.Logger.Error("failed to move the binary", "dest", dest, "err", err)
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrCopyFailed), "copying binary to %s", dest)
	}

	return &Binary{Source: src, Dest: dest, Size: n}, nil
}

// binaryName strips the directory from p, accepting either separator so a
// Windows path resolves the same way on any host.
func binaryName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		p = p[i+1:]
	}
	switch p {
	case "", ".", "..":
		return ""
	}
	return p
}
