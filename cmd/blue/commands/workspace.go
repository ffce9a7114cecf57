package commands

import (
	"context"

	"github.com/spf13/afero"

	"github.com/slekup/blue/internal/config"
	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/logging"
)

// workspaceFS is where blue.toml is read from.
var workspaceFS afero.Fs = afero.NewOsFs()

// optionalWorkspace loads blue.toml from the current directory for commands
// that can run without one. Problems with the file are logged and ignored.
func optionalWorkspace(ctx context.Context) *config.Workspace {
	ws, err := config.LoadWorkspace(workspaceFS, "")
	if err != nil {
		if !errors.Is(err, errors.ErrNotFound) {
			logging.FromContext(ctx).Warn("ignoring workspace config", "err", err)
		}
		return nil
	}
	return ws
}
