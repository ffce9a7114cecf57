package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY returns true if w is a terminal. Any writer exposing Fd() is
// inspected, which covers *os.File and most wrappers around it.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether ANSI colour should be written to w.
//
// NO_COLOR (https://no-color.org) and TERM=dumb always disable colour.
// CLICOLOR_FORCE enables it even when w is not a terminal.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if v := os.Getenv("CLICOLOR_FORCE"); v != "" && v != "0" {
		return true
	}
	return isTTY
}
