package config

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/paths"
	"github.com/slekup/blue/pkg/fileutil"
)

// Workspace is the parsed content of a blue.toml file.
type Workspace struct {
	Workspace    WorkspaceInfo `mapstructure:"workspace" toml:"workspace" json:"workspace" yaml:"workspace"`
	Requirements Requirements  `mapstructure:"requirements" toml:"requirements" json:"requirements" yaml:"requirements"`

	// Path is the file the workspace was loaded from.
	Path string `mapstructure:"-" toml:"-" json:"-" yaml:"-"`

	// raw holds the file bytes for strict validation.
	raw []byte
}

// WorkspaceInfo describes the workspace itself.
type WorkspaceInfo struct {
	Name        string `mapstructure:"name" toml:"name" json:"name" yaml:"name"`
	Description string `mapstructure:"description" toml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
}

// Requirements lists what a machine needs to work in the workspace.
type Requirements struct {
	// Commands must resolve on PATH.
	Commands []string `mapstructure:"commands" toml:"commands,omitempty" json:"commands,omitempty" yaml:"commands,omitempty"`
	// Files must exist, relative to the workspace directory.
	Files []string `mapstructure:"files" toml:"files,omitempty" json:"files,omitempty" yaml:"files,omitempty"`
	// Env variables must be set and non-empty.
	Env []string `mapstructure:"env" toml:"env,omitempty" json:"env,omitempty" yaml:"env,omitempty"`
}

// Dir returns the directory containing the workspace file.
func (w *Workspace) Dir() string {
	return filepath.Dir(w.Path)
}

// LoadWorkspace reads and parses the blue.toml at path on fsys.
// An empty path means blue.toml in the current directory, and a directory
// means the blue.toml inside it.
func LoadWorkspace(fsys afero.Fs, path string) (*Workspace, error) {
	switch {
	case path == "":
		path = paths.WorkspaceConfigFile
	case paths.DirExists(fsys, path):
		path = paths.WorkspaceConfigPath(path)
	}

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "checking %s", path)
	}
	if !exists {
		return nil, errors.Wrapf(errors.ErrNotFound, "no %s found at %s", paths.WorkspaceConfigFile, path)
	}

	data, err := fileutil.ReadFileWithLimit(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrInvalidConfig), "%s is not valid toml", path)
	}

	ws := &Workspace{Path: path, raw: data}
	if err := v.Unmarshal(ws); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrInvalidConfig), "decoding %s", path)
	}

	return ws, nil
}
