package install

import (
	"runtime"
	"strings"
)

// OS identifies the operating systems blue knows how to install on.
// The zero value is Unsupported.
type OS int

const (
	Unsupported OS = iota
	Windows
	Linux
	MacOS
)

// String returns the lower-case name used in logs.
func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	default:
		return "unsupported"
	}
}

// ParseOS maps a GOOS value to an OS. "macos" is accepted as an alias for
// "darwin". Anything else is Unsupported.
func ParseOS(goos string) OS {
	switch strings.ToLower(strings.TrimSpace(goos)) {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin", "macos":
		return MacOS
	default:
		return Unsupported
	}
}

// CurrentOS returns the OS blue is running on.
func CurrentOS() OS {
	return ParseOS(runtime.GOOS)
}
