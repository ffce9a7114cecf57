// Package paths resolves the well-known locations blue reads from: the
// user's home directory, the running executable, the workspace config file
// and the per-user config directory.
//
// # XDG Base Directory Compliance
//
// The per-user config directory comes from github.com/adrg/xdg, so it
// follows XDG conventions on Linux (~/.config/blue) and the native
// locations on macOS and Windows.
//
// # Error Handling
//
// Lookups that can fail mark their errors with the sentinels from
// internal/errors so callers can branch with errors.Is:
//
//	home, err := paths.ResolveHome()
//	if errors.Is(err, blueerrors.ErrHomeDirUnavailable) {
//	    // ...
//	}
package paths
