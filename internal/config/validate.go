package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Validation errors for workspace fields.
var (
	// ErrUnknownKey indicates a key blue does not understand.
	ErrUnknownKey = errors.New("unknown key")

	// ErrEmptyValue indicates an empty entry in a list.
	ErrEmptyValue = errors.New("empty value")

	// ErrDuplicateValue indicates the same entry listed twice.
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrInvalidEnvName indicates an environment variable name that cannot be set.
	ErrInvalidEnvName = errors.New("invalid environment variable name")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrMissingName indicates the workspace has no name.
	ErrMissingName = errors.New("workspace name is required")
)

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks ws for problems. It returns nil if ws is valid.
// Unknown keys are found by strictly decoding the original file bytes.
func Validate(ws *Workspace) []error {
	if ws == nil {
		return []error{errors.New("workspace is nil")}
	}

	var errs []error

	errs = append(errs, unknownKeys(ws.raw)...)

	if strings.TrimSpace(ws.Workspace.Name) == "" {
		errs = append(errs, &FieldError{Field: "workspace.name", Err: ErrMissingName})
	}

	errs = append(errs, checkList("requirements.commands", ws.Requirements.Commands, nil)...)
	errs = append(errs, checkList("requirements.files", ws.Requirements.Files, validatePath)...)
	errs = append(errs, checkList("requirements.env", ws.Requirements.Env, validateEnvName)...)

	return errs
}

func unknownKeys(raw []byte) []error {
	if len(raw) == 0 {
		return nil
	}

	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var scratch Workspace
	err := dec.Decode(&scratch)
	if err == nil {
		return nil
	}

	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		// Syntax errors are reported by LoadWorkspace.
		return nil
	}

	errs := make([]error, 0, len(strict.Errors))
	for _, de := range strict.Errors {
		row, _ := de.Position()
		errs = append(errs, &FieldError{
			Field: strings.Join(de.Key(), "."),
			Line:  row,
			Err:   ErrUnknownKey,
		})
	}
	return errs
}

func checkList(field string, values []string, check func(string) error) []error {
	var errs []error
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			errs = append(errs, &FieldError{Field: field, Err: ErrEmptyValue})
			continue
		}
		if seen[trimmed] {
			errs = append(errs, &FieldError{Field: field, Value: v, Err: ErrDuplicateValue})
			continue
		}
		seen[trimmed] = true
		if check != nil {
			if err := check(trimmed); err != nil {
				errs = append(errs, &FieldError{Field: field, Value: v, Err: err})
			}
		}
	}
	return errs
}

// validatePath checks that a path string is well-formed.
// It does not check if the path exists.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}

func validateEnvName(name string) error {
	if !envNamePattern.MatchString(name) {
		return ErrInvalidEnvName
	}
	return nil
}

// FieldError is a validation problem attached to a workspace field.
type FieldError struct {
	Field string
	Value string
	// Line is the 1-based line in blue.toml, or 0 when unknown.
	Line int
	Err  error
}

func (e *FieldError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Field)
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if e.Value != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Value)
	}
	return sb.String()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
