// Package fileutil provides small filesystem helpers that operate on an
// afero.Fs so callers can swap the real disk for an in-memory one.
package fileutil

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/slekup/blue/internal/errors"
)

// ExecPerm is the mode given to copied executables.
const ExecPerm os.FileMode = 0o755

// CopyFile copies the contents of src on srcFS to dst on dstFS, truncating
// dst if it already exists. perm applies only when dst is created.
//
// On failure dst may be left partially written; no cleanup is attempted.
// It returns the number of bytes written.
func CopyFile(srcFS afero.Fs, src string, dstFS afero.Fs, dst string, perm os.FileMode) (int64, error) {
	in, err := srcFS.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %s", src)
	}
	defer in.Close()

	out, err := dstFS.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, errors.Wrapf(err, "creating %s", dst)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, errors.Wrapf(err, "writing %s", dst)
	}

	if err := out.Close(); err != nil {
		return n, errors.Wrapf(err, "closing %s", dst)
	}

	// O_TRUNC keeps the mode of an existing file; force it so an old
	// non-executable copy does not stay non-executable.
	if err := dstFS.Chmod(dst, perm); err != nil {
		return n, errors.Wrapf(err, "setting mode on %s", dst)
	}

	return n, nil
}
