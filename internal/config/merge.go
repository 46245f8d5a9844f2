package config

import "fmt"

// Effective is the fully resolved git configuration for one project
// after applying the override chain. Every field is populated.
type Effective struct {
	Host          Host
	Protocol      Protocol
	CloneStrategy CloneStrategy
	Repo          RepoID
}

// CloneURL derives the clone URL from the resolved host, protocol, and
// repo identifier.
func (e *Effective) CloneURL() string {
	if e.Protocol == ProtocolSSH {
		return fmt.Sprintf("git@%s:%s.git", e.Host.Domain(), e.Repo)
	}
	return fmt.Sprintf("https://%s/%s.git", e.Host.Domain(), e.Repo)
}

// Resolve merges git settings for a project, most specific wins:
// project > ancestor workspaces (innermost to outermost) > global >
// hard-coded defaults. The chain is passed outermost-first, as produced
// by Tree.WalkProjects.
//
// Returns nil when the project declares no repo identifier: such a
// project is path-only and never a clone target. Pure; no filesystem
// access, no node mutation.
func Resolve(p *Project, chain []*Workspace, global GitOverride) *Effective {
	if p.Git == nil || p.Git.Repo == "" {
		return nil
	}

	eff := &Effective{
		Host:          DefaultHost,
		Protocol:      DefaultProtocol,
		CloneStrategy: DefaultStrategy,
		Repo:          p.repo,
	}

	eff.apply(&global)
	for _, ws := range chain {
		eff.apply(ws.Git)
	}
	eff.apply(&p.Git.GitOverride)

	return eff
}

// apply overlays the set fields of a partial override. Fields are
// independent: setting only host never resets strategy or protocol.
func (e *Effective) apply(o *GitOverride) {
	if o == nil {
		return
	}
	if o.Host != "" {
		e.Host = o.Host
	}
	if o.CloneStrategy != "" {
		e.CloneStrategy = o.CloneStrategy
	}
	if o.Protocol != "" {
		e.Protocol = o.Protocol
	}
}
