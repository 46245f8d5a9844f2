package config

import "strings"

// Valid enum values for git settings.
var (
	ValidHosts      = []string{string(HostGitHub), string(HostGitLab)}
	ValidStrategies = []string{string(StrategyBranch), string(StrategyWorktree)}
	ValidProtocols  = []string{string(ProtocolSSH), string(ProtocolHTTPS)}
)

// validateOverride checks the enum fields of a partial override.
// Empty fields are unset, not invalid.
func validateOverride(o *GitOverride, node string) error {
	if o == nil {
		return nil
	}
	if err := validateEnum(string(o.Host), "host", ValidHosts, node); err != nil {
		return err
	}
	if err := validateEnum(string(o.CloneStrategy), "clone_strategy", ValidStrategies, node); err != nil {
		return err
	}
	return validateEnum(string(o.Protocol), "protocol", ValidProtocols, node)
}

// validateProject checks a project's git settings. A declared repo must
// parse as "owner/repo"; the parsed identifier is cached on the node.
func validateProject(p *Project) error {
	if p.Git == nil {
		return nil
	}
	if err := validateOverride(&p.Git.GitOverride, p.node); err != nil {
		return err
	}
	if p.Git.Repo == "" {
		return nil
	}
	repo, err := ParseRepoID(p.Git.Repo)
	if err != nil {
		return &MalformedRepoIDError{Node: p.node, Repo: p.Git.Repo}
	}
	p.repo = repo
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed
// values.
func validateEnum(value, field string, allowed []string, node string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &UnknownEnumValueError{Node: node, Field: field, Value: value, Allowed: allowed}
}

// RepoID identifies a repository as owner/name.
type RepoID struct {
	Owner string
	Name  string
}

func (r RepoID) String() string { return r.Owner + "/" + r.Name }

// IsZero reports whether the identifier is unset.
func (r RepoID) IsZero() bool { return r.Owner == "" && r.Name == "" }

// ParseRepoID parses an "owner/repo" identifier. Exactly one separator,
// both parts non-empty.
func ParseRepoID(s string) (RepoID, error) {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoID{}, &MalformedRepoIDError{Repo: s}
	}
	return RepoID{Owner: owner, Name: name}, nil
}
