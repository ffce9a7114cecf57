package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	buildinfo "github.com/slekup/blue/cmd"
)

func TestVersionCommand(t *testing.T) {
	resetState(t)

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "blue version "+buildinfo.Version, lines[0])
	assert.Contains(t, stdout, "commit:    "+buildinfo.Commit)
	assert.Contains(t, stdout, "built:     "+buildinfo.Date)
	assert.Contains(t, stdout, runtime.Version())
	assert.Contains(t, stdout, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCommand_Metadata(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
}
