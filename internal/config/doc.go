// Package config loads the two configuration files blue reads.
//
// # User Settings
//
// Optional per-user settings live in <xdg config home>/blue/config.toml
// and are read through Viper, so every key can be overridden with a
// BLUE_-prefixed environment variable:
//
//	log_format = "json"   # BLUE_LOG_FORMAT
//	log_file   = "/tmp/blue.log"
//
// Call [Init] once at startup, then [Load]. A missing settings file is not
// an error.
//
// # Workspace Configuration
//
// A workspace is a directory holding a blue.toml file:
//
//	[workspace]
//	name = "my-project"
//
//	[requirements]
//	commands = ["git", "go"]
//	files    = ["go.mod"]
//	env      = ["GOPATH"]
//
// [LoadWorkspace] reads it from an afero.Fs. A missing file yields
// errors.ErrNotFound and a malformed one errors.ErrInvalidConfig. Use
// [Validate] to report unknown keys and bad values without failing the
// load:
//
//	ws, err := config.LoadWorkspace(fsys, "blue.toml")
//	if err != nil {
//	    return err
//	}
//	for _, issue := range config.Validate(ws) {
//	    fmt.Println(issue)
//	}
package config
