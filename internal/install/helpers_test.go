package install

import (
	"context"
	"io/fs"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/slekup/blue/internal/logging"
)

const (
	testExe     = "/opt/build/blue"
	testExeBody = "\x7fELF blue binary body"
)

type call struct {
	name string
	args []string
}

// recorder is a Runner that records invocations and returns err.
type recorder struct {
	calls []call
	err   error
}

func (r *recorder) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, call{name: name, args: args})
	return r.err
}

func fixedHome(home string) func() (string, error) {
	return func() (string, error) { return home, nil }
}

func newTestEnv(t *testing.T, o OS, home string) (Env, *recorder) {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, testExe, []byte(testExeBody), 0o755))

	rec := &recorder{}
	return Env{
		OS:         o,
		FS:         fsys,
		Home:       fixedHome(home),
		Executable: func() (string, error) { return testExe, nil },
		Runner:     rec,
		Logger:     logging.ForTest(t),
	}, rec
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

// failWriteFs opens files normally but fails every write.
type failWriteFs struct {
	afero.Fs
}

func (f failWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return failWriteFile{File: file}, nil
}

type failWriteFile struct {
	afero.File
}

func (f failWriteFile) Write([]byte) (int, error) {
	return 0, &fs.PathError{Op: "write", Path: f.Name(), Err: syscall.ENOSPC}
}

func (f failWriteFile) WriteString(string) (int, error) {
	return f.Write(nil)
}

func countLines(content, line string) int {
	n := 0
	for _, l := range strings.Split(content, "\n") {
		if l == line {
			n++
		}
	}
	return n
}
