package config

import "path/filepath"

// WalkWorkspaces visits every workspace pre-order, in declaration
// order. Return false from fn to stop early. Walking never mutates the
// tree; re-walking yields an identical sequence.
func (t *Tree) WalkWorkspaces(fn func(ws *Workspace) bool) {
	var walk func(ws *Workspace) bool
	walk = func(ws *Workspace) bool {
		if !fn(ws) {
			return false
		}
		for _, child := range ws.Workspaces {
			if !walk(child) {
				return false
			}
		}
		return true
	}
	for _, ws := range t.Workspaces {
		if !walk(ws) {
			return
		}
	}
}

// WalkProjects visits every project in the same pre-order traversal:
// each workspace's own projects before its nested workspaces. The
// chain holds the project's ancestor workspaces outermost-first, the
// owning workspace last — exactly the Resolve inputs. The chain slice
// is reused between calls; copy it if it must outlive fn.
func (t *Tree) WalkProjects(fn func(p *Project, chain []*Workspace) bool) {
	var chain []*Workspace
	var walk func(ws *Workspace) bool
	walk = func(ws *Workspace) bool {
		chain = append(chain, ws)
		defer func() { chain = chain[:len(chain)-1] }()
		for _, p := range ws.Projects {
			if !fn(p, chain) {
				return false
			}
		}
		for _, child := range ws.Workspaces {
			if !walk(child) {
				return false
			}
		}
		return true
	}
	for _, ws := range t.Workspaces {
		if !walk(ws) {
			return
		}
	}
}

// WorkspacePaths collects every workspace's absolute path in walk
// order.
func (t *Tree) WorkspacePaths() []string {
	var paths []string
	t.WalkWorkspaces(func(ws *Workspace) bool {
		paths = append(paths, ws.abs)
		return true
	})
	return paths
}

// ProjectPaths collects every project's absolute path in walk order.
func (t *Tree) ProjectPaths() []string {
	var paths []string
	t.WalkProjects(func(p *Project, _ []*Workspace) bool {
		paths = append(paths, p.abs)
		return true
	})
	return paths
}

// abs normalizes a lookup target: absolute paths pass through, paths
// relative to the root are joined onto it.
func (t *Tree) absTarget(target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(t.Root, filepath.FromSlash(target))
}

// LookupWorkspace finds the workspace at the given path (relative to
// the root, or absolute). Fails with UnknownPathError if the path is
// not declared.
func (t *Tree) LookupWorkspace(target string) (*Workspace, error) {
	abs := t.absTarget(target)
	var found *Workspace
	t.WalkWorkspaces(func(ws *Workspace) bool {
		if ws.abs == abs {
			found = ws
			return false
		}
		return true
	})
	if found == nil {
		return nil, &UnknownPathError{Path: target}
	}
	return found, nil
}

// LookupProject finds the project at the given path along with its
// ancestor chain. Fails with UnknownPathError if the path is not
// declared.
func (t *Tree) LookupProject(target string) (*Project, []*Workspace, error) {
	abs := t.absTarget(target)
	var (
		found      *Project
		foundChain []*Workspace
	)
	t.WalkProjects(func(p *Project, chain []*Workspace) bool {
		if p.abs == abs {
			found = p
			foundChain = append([]*Workspace(nil), chain...)
			return false
		}
		return true
	})
	if found == nil {
		return nil, nil, &UnknownPathError{Path: target}
	}
	return found, foundChain, nil
}
