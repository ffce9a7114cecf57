// Package cmd holds build metadata for the blue binary, injected via ldflags:
//
//	go build -ldflags "-X github.com/slekup/blue/cmd.Version=v0.1.0" ./cmd/blue
package cmd

// Build-time variables set via ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
