package install

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/slekup/blue/internal/errors"
)

// MacOSInstallDir is the fixed install directory on macOS.
const MacOSInstallDir = "/usr/local/bin/.blue/bin"

// Platform is the per-OS install strategy.
type Platform interface {
	// OS reports which operating system this strategy serves.
	OS() OS

	// InstallDir computes the install directory. home is only called by
	// strategies that need it.
	InstallDir(home func() (string, error)) (dir string, usedHome string, err error)

	// Join appends a file name to dir using the platform's separator.
	Join(dir, name string) string

	// Register puts t.Dir on the user's PATH.
	Register(ctx context.Context, env Env, t *Target) (*Registration, error)
}

// PlatformFor returns the strategy for o.
func PlatformFor(o OS) Platform {
	switch o {
	case Windows:
		return windowsPlatform{}
	case Linux:
		return unixPlatform{os: Linux, profile: ".bashrc"}
	case MacOS:
		return unixPlatform{os: MacOS, profile: ".bash_profile", fixedDir: MacOSInstallDir}
	default:
		return unsupportedPlatform{}
	}
}

type windowsPlatform struct{}

func (windowsPlatform) OS() OS { return Windows }

func (p windowsPlatform) InstallDir(home func() (string, error)) (string, string, error) {
	h, err := lookupHome(home)
	if err != nil {
		return "", "", err
	}
	return p.Join(p.Join(h, ".blue"), "bin"), h, nil
}

// Join always uses a backslash so the result does not depend on the host
// the code runs on.
func (windowsPlatform) Join(dir, name string) string {
	return strings.TrimRight(dir, `\/`) + `\` + name
}

func (windowsPlatform) Register(ctx context.Context, env Env, t *Target) (*Registration, error) {
	return registerWindows(ctx, env, t), nil
}

type unixPlatform struct {
	os       OS
	profile  string
	fixedDir string
}

func (p unixPlatform) OS() OS { return p.os }

func (p unixPlatform) InstallDir(home func() (string, error)) (string, string, error) {
	if p.fixedDir != "" {
		return p.fixedDir, "", nil
	}
	h, err := lookupHome(home)
	if err != nil {
		return "", "", err
	}
	return path.Join(h, ".blue", "bin"), h, nil
}

func (unixPlatform) Join(dir, name string) string {
	return path.Join(dir, name)
}

func (p unixPlatform) Register(_ context.Context, env Env, t *Target) (*Registration, error) {
	h := t.Home
	if h == "" {
		var err error
		if h, err = lookupHome(env.Home); err != nil {
			return nil, err
		}
	}
	return registerProfile(env, path.Join(h, p.profile), ExportLine(t.Dir))
}

type unsupportedPlatform struct{}

func (unsupportedPlatform) OS() OS { return Unsupported }

func (unsupportedPlatform) InstallDir(func() (string, error)) (string, string, error) {
	return "", "", errors.ErrUnsupportedPlatform
}

func (unsupportedPlatform) Join(dir, name string) string {
	return path.Join(dir, name)
}

func (unsupportedPlatform) Register(context.Context, Env, *Target) (*Registration, error) {
	return nil, errors.ErrUnsupportedPlatform
}

// ExportLine is the profile line that adds dir to PATH.
func ExportLine(dir string) string {
	return fmt.Sprintf("export PATH=$PATH:%s", dir)
}

func lookupHome(home func() (string, error)) (string, error) {
	if home == nil {
		return "", errors.Mark(errors.New("no home directory lookup configured"), errors.ErrHomeDirUnavailable)
	}
	h, err := home()
	if err != nil {
		return "", errors.Mark(err, errors.ErrHomeDirUnavailable)
	}
	if h == "" {
		return "", errors.Mark(errors.New("home directory is empty"), errors.ErrHomeDirUnavailable)
	}
	return h, nil
}
