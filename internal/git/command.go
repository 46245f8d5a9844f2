package git

import (
	"path/filepath"

	"github.com/czifro/workspaces/internal/config"
)

// BareDirName is the directory holding the bare repository inside a
// worktree-strategy project.
const BareDirName = ".bare"

// Invocation is one external git command.
type Invocation struct {
	Name string
	Args []string
}

// String renders the invocation for display.
func (i Invocation) String() string {
	s := i.Name
	for _, a := range i.Args {
		s += " " + a
	}
	return s
}

// CloneInvocation builds a plain branch-strategy clone of url into
// target.
func CloneInvocation(url, target string) Invocation {
	return Invocation{Name: "git", Args: []string{"clone", url, target}}
}

// BareCloneInvocation builds a bare clone of url into <target>/.bare.
func BareCloneInvocation(url, target string) Invocation {
	return Invocation{Name: "git", Args: []string{"clone", "--bare", url, filepath.Join(target, BareDirName)}}
}

// WorktreeAddInvocation builds the worktree checkout of branch beside
// the bare repository at <target>/.bare.
func WorktreeAddInvocation(target, branch string) Invocation {
	bare := filepath.Join(target, BareDirName)
	return Invocation{Name: "git", Args: []string{"-C", bare, "worktree", "add", filepath.Join("..", branch), branch}}
}

// CommandsFor returns the ordered invocation sequence for cloning url
// into target with the given strategy. For the worktree strategy,
// defaultBranch names the branch checked out as the first worktree
// (the cloner detects it from the bare repo between the two steps).
func CommandsFor(strategy config.CloneStrategy, url, target, defaultBranch string) []Invocation {
	if strategy == config.StrategyWorktree {
		return []Invocation{
			BareCloneInvocation(url, target),
			WorktreeAddInvocation(target, defaultBranch),
		}
	}
	return []Invocation{CloneInvocation(url, target)}
}
