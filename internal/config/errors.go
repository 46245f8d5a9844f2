package config

import (
	"fmt"
	"strings"
)

// InvalidRootError reports a root token that cannot be expanded to an
// absolute path.
type InvalidRootError struct {
	Root   string
	Reason string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid root %q: %s", e.Root, e.Reason)
}

// ConfigError wraps any failure while parsing or validating the
// configuration document. Use errors.As to reach the specific cause
// (MalformedRepoIDError, UnknownEnumValueError, DuplicatePathError).
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// MalformedRepoIDError reports a project repo value that does not parse
// as "owner/repo".
type MalformedRepoIDError struct {
	Node string // document path of the project, e.g. "src/oss/workspaces"
	Repo string
}

func (e *MalformedRepoIDError) Error() string {
	return fmt.Sprintf("project %q: repo %q is not of the form \"owner/repo\"", e.Node, e.Repo)
}

// UnknownEnumValueError reports a git setting outside its allowed set.
type UnknownEnumValueError struct {
	Node    string // document path of the offending node, "" for the global git block
	Field   string
	Value   string
	Allowed []string
}

func (e *UnknownEnumValueError) Error() string {
	where := "global git settings"
	if e.Node != "" {
		where = fmt.Sprintf("node %q", e.Node)
	}
	return fmt.Sprintf("%s: invalid %s %q: must be %s", where, e.Field, e.Value, formatOptions(e.Allowed))
}

// DuplicatePathError reports two nodes resolving to the same absolute
// filesystem path.
type DuplicatePathError struct {
	Path  string // the colliding absolute path
	Nodes []string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("nodes %q and %q both resolve to %s", e.Nodes[0], e.Nodes[1], e.Path)
}

// UnknownPathError reports a workspace or project path that does not
// exist in the declared tree.
type UnknownPathError struct {
	Path string
}

func (e *UnknownPathError) Error() string {
	return fmt.Sprintf("path %q is not declared in the configuration", e.Path)
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
