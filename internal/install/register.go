package install

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/slekup/blue/internal/errors"
)

// Method names how a directory was put on PATH.
type Method string

const (
	// MethodUserEnv is the persistent Windows user environment.
	MethodUserEnv Method = "user-environment"
	// MethodProfile is an export line in a shell profile.
	MethodProfile Method = "shell-profile"
)

// Registration describes the outcome of Register.
type Registration struct {
	Method Method

	// ProfilePath and Line are set for MethodProfile.
	ProfilePath string
	Line        string

	// Command is the command run for MethodUserEnv.
	Command string

	// Changed is false when the profile already contained Line.
	Changed bool

	// Warning holds a non-fatal failure, marked with
	// errors.ErrPathMechanismFailed.
	Warning error
}

// Register makes t.Dir visible on the user's PATH using t's platform.
func Register(ctx context.Context, env Env, t *Target) (*Registration, error) {
	env = env.withDefaults()
	p := t.platform
	if p == nil {
		p = PlatformFor(t.OS)
	}
	return p.Register(ctx, env, t)
}

// registerWindows prepends t.Dir to the persistent user PATH. The update
// replaces the whole value, so running it twice lists the directory twice.
func registerWindows(ctx context.Context, env Env, t *Target) *Registration {
	script := fmt.Sprintf(`setx PATH "%s;$Env:PATH"`, t.Dir)
	reg := &Registration{Method: MethodUserEnv, Command: "powershell " + script}

	env.Logger.Info("running command", "cmd", reg.Command)
	if err := env.Runner.Run(ctx, "powershell", script); err != nil {
		reg.Warning = errors.Wrap(errors.Mark(err, errors.ErrPathMechanismFailed), "setting PATH variable")
		env.Logger.Error("failed to set PATH variable", "err", err)
		return reg
	}

	reg.Changed = true
	return reg
}

// registerProfile appends line to the profile at path unless an existing
// line already contains it. The file is created if missing and never
// truncated.
func registerProfile(env Env, path, line string) (reg *Registration, err error) {
	reg = &Registration{Method: MethodProfile, ProfilePath: path, Line: line}

	f, err := env.FS.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrProfileOpenFailed), "opening %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil && reg.Changed {
			reg, err = nil, errors.Wrapf(errors.Mark(cerr, errors.ErrProfileWriteFailed), "closing %s", path)
		}
	}()

	scan, err := scanProfile(f, line)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrProfileOpenFailed), "reading %s", path)
	}

	if scan.found {
		env.Logger.Debug("PATH line already exists in profile", "line", line, "profile", path)
		return reg, nil
	}

	entry := line + "\n"
	if scan.size > 0 && !scan.trailingNewline {
		entry = "\n" + entry
	}

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrProfileWriteFailed), "seeking %s", path)
	}
	if _, err := io.WriteString(f, entry); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrProfileWriteFailed), "writing %s", path)
	}

	reg.Changed = true
	env.Logger.Info("PATH line appended to profile", "line", line, "profile", path)
	return reg, nil
}

type profileScan struct {
	found           bool
	size            int64
	trailingNewline bool
}

// scanProfile reports whether any line of r contains line. Matching is a
// plain substring test: a longer line that embeds the export counts.
func scanProfile(r io.Reader, line string) (profileScan, error) {
	var s profileScan
	br := bufio.NewReader(r)
	for {
		text, err := br.ReadString('\n')
		if len(text) > 0 {
			s.size += int64(len(text))
			s.trailingNewline = strings.HasSuffix(text, "\n")
			if strings.Contains(text, line) {
				s.found = true
				return s, nil
			}
		}
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return s, err
		}
	}
}
