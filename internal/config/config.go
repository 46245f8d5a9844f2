package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Host is a supported git hosting service.
type Host string

const (
	HostGitHub Host = "github"
	HostGitLab Host = "gitlab"
)

// Domain returns the clone domain for the host.
func (h Host) Domain() string {
	switch h {
	case HostGitLab:
		return "gitlab.com"
	default:
		return "github.com"
	}
}

// Protocol is a supported git transport.
type Protocol string

const (
	ProtocolHTTPS Protocol = "https"
	ProtocolSSH   Protocol = "ssh"
)

// CloneStrategy selects the on-disk layout of a cloned project.
type CloneStrategy string

const (
	// StrategyBranch is a standard single-checkout clone.
	StrategyBranch CloneStrategy = "branch"
	// StrategyWorktree is a bare clone under <project>/.bare with one
	// linked worktree checked out beside it.
	StrategyWorktree CloneStrategy = "worktree"
)

// Hard-coded defaults, applied below the global document settings.
const (
	DefaultHost     = HostGitHub
	DefaultProtocol = ProtocolHTTPS
	DefaultStrategy = StrategyBranch
)

// GitOverride is a partial set of git settings. Any level of the tree
// may set any subset of fields; unset fields inherit from the next
// more general level.
type GitOverride struct {
	Host          Host          `yaml:"host"`
	CloneStrategy CloneStrategy `yaml:"clone_strategy"`
	Protocol      Protocol      `yaml:"protocol"`
}

// ProjectGit holds a project's git settings: the repo identifier that
// makes the project cloneable plus optional overrides.
type ProjectGit struct {
	Repo        string `yaml:"repo"`
	GitOverride `yaml:",inline"`
}

// Project is a directory under a workspace, optionally git-backed.
type Project struct {
	Git *ProjectGit `yaml:"git"`

	name string
	abs  string
	node string // document path, e.g. "src/oss/workspaces"
	repo RepoID // parsed from Git.Repo during build; zero if path-only
}

// Name returns the project's directory name.
func (p *Project) Name() string { return p.name }

// Path returns the project's absolute path.
func (p *Project) Path() string { return p.abs }

// Node returns the project's document path relative to the root.
func (p *Project) Node() string { return p.node }

// Workspace is a directory grouping projects and nested workspaces.
type Workspace struct {
	Git        *GitOverride  `yaml:"git"`
	Workspaces WorkspaceList `yaml:"workspaces"`
	Projects   ProjectList   `yaml:"projects"`

	name string
	abs  string
	node string

	// synthetic marks an ancestor synthesized from a separator key
	// ("src/oss"); such nodes merge with same-name siblings.
	synthetic bool
}

// Name returns the workspace's directory name. A separator key in the
// document ("src/oss") is split during build, so after Parse every
// name is a single segment.
func (w *Workspace) Name() string { return w.name }

// Path returns the workspace's absolute path.
func (w *Workspace) Path() string { return w.abs }

// Node returns the workspace's document path relative to the root.
func (w *Workspace) Node() string { return w.node }

// WorkspaceList preserves the declaration order of a "workspaces"
// mapping. Walk order depends on it.
type WorkspaceList []*Workspace

// UnmarshalYAML decodes a mapping of name -> workspace node, keeping
// the key order of the source document.
func (l *WorkspaceList) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: workspaces must be a mapping", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		ws := &Workspace{name: key.Value}
		if value.Tag != "!!null" {
			if err := value.Decode(ws); err != nil {
				return err
			}
		}
		*l = append(*l, ws)
	}
	return nil
}

// ProjectList preserves the declaration order of a "projects" mapping.
type ProjectList []*Project

// UnmarshalYAML decodes a mapping of name -> project node, keeping the
// key order of the source document. A project with a null body is a
// plain directory.
func (l *ProjectList) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: projects must be a mapping", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		p := &Project{name: key.Value}
		if value.Tag != "!!null" {
			if err := value.Decode(p); err != nil {
				return err
			}
		}
		*l = append(*l, p)
	}
	return nil
}

// Tree is the parsed configuration: an absolute root plus the declared
// workspace hierarchy with every node's absolute path computed.
// Read-only after Parse.
type Tree struct {
	Root       string
	Git        GitOverride // global defaults, may be partial
	Workspaces WorkspaceList
}

// document mirrors the raw YAML layout before root expansion.
type document struct {
	Root       string        `yaml:"root"`
	Git        *GitOverride  `yaml:"git"`
	Workspaces WorkspaceList `yaml:"workspaces"`
}

// Parse decodes and validates a configuration document. Validation
// failures are wrapped in ConfigError; an unusable root token fails
// with InvalidRootError.
func Parse(data []byte) (*Tree, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Err: err}
	}

	root, err := ExpandRoot(doc.Root)
	if err != nil {
		return nil, err
	}

	t := &Tree{Root: root, Workspaces: doc.Workspaces}
	if doc.Git != nil {
		t.Git = *doc.Git
	}

	if err := t.build(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	return t, nil
}

// build computes every node's absolute path in a single pre-order pass
// (parent paths known before children) and validates the tree:
// unique absolute paths, well-formed repo identifiers, known enum
// values.
func (t *Tree) build() error {
	if err := validateOverride(&t.Git, ""); err != nil {
		return err
	}

	seen := map[string]string{} // absolute path -> document path

	claim := func(abs, node string) error {
		if prev, ok := seen[abs]; ok {
			return &DuplicatePathError{Path: abs, Nodes: []string{prev, node}}
		}
		seen[abs] = node
		return nil
	}

	var walk func(parentAbs, parentNode string, ws *Workspace) error
	walk = func(parentAbs, parentNode string, ws *Workspace) error {
		ws.abs = filepath.Join(parentAbs, ws.name)
		ws.node = path.Join(parentNode, ws.name)
		if err := claim(ws.abs, ws.node); err != nil {
			return err
		}
		if err := validateOverride(ws.Git, ws.node); err != nil {
			return err
		}
		for _, p := range ws.Projects {
			p.abs = filepath.Join(ws.abs, p.name)
			p.node = path.Join(ws.node, p.name)
			if err := claim(p.abs, p.node); err != nil {
				return err
			}
			if err := validateProject(p); err != nil {
				return err
			}
		}
		ws.Workspaces = normalize(ws.Workspaces)
		for _, child := range ws.Workspaces {
			if err := walk(ws.abs, ws.node, child); err != nil {
				return err
			}
		}
		return nil
	}

	t.Workspaces = normalize(t.Workspaces)
	for _, ws := range t.Workspaces {
		if err := walk(t.Root, "", ws); err != nil {
			return err
		}
	}
	return nil
}

// normalize splits separator keys and merges the synthesized ancestors
// with siblings of the same name, so "src/oss" and a nested "src"
// block describe one subtree. Two explicit declarations of the same
// name are both kept; the build walk reports them as duplicate paths.
func normalize(list WorkspaceList) WorkspaceList {
	var out WorkspaceList
	index := map[string]*Workspace{}
	for _, ws := range list {
		ws = splitName(ws)
		prev, ok := index[ws.name]
		switch {
		case !ok:
			index[ws.name] = ws
			out = append(out, ws)
		case ws.synthetic:
			prev.Workspaces = append(prev.Workspaces, ws.Workspaces...)
		case prev.synthetic:
			ws.Workspaces = append(prev.Workspaces, ws.Workspaces...)
			*prev = *ws
		default:
			out = append(out, ws)
		}
	}
	return out
}

// splitName rewrites a workspace declared with a separator key
// ("src/oss") into the equivalent nested chain and returns the
// outermost node, so both spellings resolve to the same tree shape.
// Projects and overrides stay on the innermost node; the synthesized
// ancestors are plain directories.
func splitName(ws *Workspace) *Workspace {
	segs := strings.Split(ws.name, "/")
	if len(segs) == 1 {
		return ws
	}
	ws.name = segs[len(segs)-1]
	for i := len(segs) - 2; i >= 0; i-- {
		ws = &Workspace{name: segs[i], Workspaces: WorkspaceList{ws}, synthetic: true}
	}
	return ws
}
