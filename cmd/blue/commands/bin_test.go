package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slekup/blue/internal/errors"
)

func TestBinCommand(t *testing.T) {
	resetState(t)
	executable = func() (string, error) { return "/home/alice/.blue/bin/blue", nil }

	stdout, _, err := execute(t, "bin")
	require.NoError(t, err)
	assert.Equal(t, "/home/alice/.blue/bin/blue\n", stdout)
}

func TestBinCommand_Error(t *testing.T) {
	resetState(t)
	executable = func() (string, error) {
		return "", errors.Mark(errors.New("no /proc"), errors.ErrSelfPathUnavailable)
	}

	_, _, err := execute(t, "bin")
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.Code(err))
	assert.True(t, errors.Is(err, errors.ErrSelfPathUnavailable))
}
