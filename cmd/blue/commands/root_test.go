package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	resetState(t)

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			t.Cleanup(func() { verbosity = 0 })
			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(context.Background(), tt.wantLevel), "expected %v enabled", tt.wantLevel)
			if tt.wantLevel > logging.LevelTrace {
				assert.False(t, logger.Enabled(context.Background(), tt.wantLevel-4), "expected %v disabled", tt.wantLevel-4)
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	resetState(t)

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"BLUE_DEBUG=1", "1", slog.LevelDebug},
		{"BLUE_DEBUG=true", "true", slog.LevelDebug},
		{"BLUE_DEBUG=2", "2", logging.LevelTrace},
		{"BLUE_DEBUG=0", "0", slog.LevelWarn},
		{"BLUE_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(debugEnv, tt.envVal)
			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(context.Background(), tt.wantLevel))
			if tt.wantLevel == slog.LevelDebug {
				assert.False(t, logger.Enabled(context.Background(), logging.LevelTrace))
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	resetState(t)
	t.Setenv(debugEnv, "2")
	verbosity = 1

	require.NoError(t, setupLogging(rootCmd))

	logger := slog.Default()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug), "flag should override env var")
}

func TestSetupLogging_Quiet(t *testing.T) {
	resetState(t)
	quiet = true

	require.NoError(t, setupLogging(rootCmd))

	logger := slog.Default()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	resetState(t)
	quiet = true
	verbosity = 1

	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUsage, errors.Code(err))
}

func TestSetupLogging_LogFile(t *testing.T) {
	resetState(t)
	logFile = filepath.Join(t.TempDir(), "blue.log")
	verbosity = 1

	require.NoError(t, setupLogging(rootCmd))
	slog.Default().Info("hello from test", "dir", "/home/alice/.blue/bin")
	closeLogFile()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from test"`)
	assert.Contains(t, string(data), `"dir":"/home/alice/.blue/bin"`)
}

func TestSetupLogging_LogFileUnwritable(t *testing.T) {
	resetState(t)
	logFile = filepath.Join(t.TempDir(), "missing", "blue.log")

	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.Code(err))
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Error: boom\n",
		},
		{
			name: "with suggestion",
			err:  errors.NewFailure(errors.New("boom"), "try again"),
			want: "Error: boom\nSuggestion: try again\n",
		},
		{
			name: "already reported",
			err:  errors.NewExitError(nil, errors.ExitFailure),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRoot_NoCommandPrintsHelp(t *testing.T) {
	resetState(t)

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	for _, name := range []string{"bootstrap", "bin", "check", "version"} {
		assert.Contains(t, stdout, name)
	}
}

func TestRoot_VersionFlag(t *testing.T) {
	resetState(t)

	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "blue version "))
}

func TestRoot_UnknownFlagIsUsageError(t *testing.T) {
	resetState(t)

	_, _, err := execute(t, "bin", "--bogus")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUsage, errors.Code(err))
}

func TestRoot_SettingsLogFormat(t *testing.T) {
	resetState(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "blue")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("log_format = \"json\"\n"), 0o644))

	executable = func() (string, error) { return "/opt/blue/blue", nil }

	stdout, _, err := execute(t, "bin")
	require.NoError(t, err)
	assert.Equal(t, "/opt/blue/blue\n", stdout)
	require.NotNil(t, settings)
	assert.Equal(t, "json", settings.LogFormat)
}
