package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultPath returns the configuration document location:
// $XDG_CONFIG_HOME/workspaces/workspaces.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "workspaces", "workspaces.yaml")
}

// Load reads and parses the configuration document at path, falling
// back to DefaultPath when path is empty. A missing or unreadable file
// is a fatal pre-flight error; there is no implicit default tree.
func Load(path string) (*Tree, error) {
	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

const starterConfig = `# workspaces configuration
#
# Declares your local development directory layout. "workspaces" are
# plain directories; "projects" are directories underneath them,
# optionally backed by a git repository so they can be restored with
# "workspaces restore".

# Base directory the whole tree hangs off. "~" expands to your home
# directory; absolute paths are used as-is. Keep the quotes: a bare ~
# is YAML null.
root: "~"

# Optional global git defaults. Any level below may override any
# subset of these fields; more specific wins.
# git:
#   host: github            # github | gitlab
#   clone_strategy: branch  # branch | worktree
#   protocol: https         # ssh | https

workspaces:
  src:
    # git: { protocol: ssh }        # optional override for this subtree
    projects:
      scratch:                      # no repo: restored as a bare directory
    #  my-tool:
    #    git:
    #      repo: "you/my-tool"      # required to make the project cloneable
    #      clone_strategy: worktree # bare clone + linked worktree layout
    # workspaces:                   # nest as deep as you like
    #   oss:
    #     projects:
`

// Init writes a commented starter document to path (DefaultPath when
// empty). Refuses to overwrite an existing file unless force is set.
// Returns the path written.
func Init(path string, force bool) (string, error) {
	if path == "" {
		path = DefaultPath()
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
