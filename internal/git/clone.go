package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/czifro/workspaces/internal/cmd"
	"github.com/czifro/workspaces/internal/config"
)

// CloneFailedError reports a clone invocation that exited non-zero.
// The wrapped error carries the captured stderr.
type CloneFailedError struct {
	URL  string
	Path string
	Err  error
}

func (e *CloneFailedError) Error() string {
	return fmt.Sprintf("clone %s into %s: %v", e.URL, e.Path, e.Err)
}

func (e *CloneFailedError) Unwrap() error {
	return e.Err
}

// Cloner is the external git capability the restore engine depends on.
// Implementations clone the resolved repository into path using the
// resolved strategy.
type Cloner interface {
	Clone(ctx context.Context, eff *config.Effective, path string) error
}

// CLICloner clones by shelling out to the git binary.
type CLICloner struct{}

// Clone runs the invocation sequence for eff's strategy. Non-zero
// exits surface as CloneFailedError; the caller records them per path
// and continues.
func (CLICloner) Clone(ctx context.Context, eff *config.Effective, path string) error {
	url := eff.CloneURL()

	var err error
	if eff.CloneStrategy == config.StrategyWorktree {
		err = cloneWorktree(ctx, url, path)
	} else {
		err = run(ctx, CloneInvocation(url, path))
	}
	if err != nil {
		return &CloneFailedError{URL: url, Path: path, Err: err}
	}
	return nil
}

// cloneWorktree lays out a worktree-strategy clone: a bare clone under
// <path>/.bare plus one linked worktree of the default branch checked
// out beside it.
func cloneWorktree(ctx context.Context, url, path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	if err := run(ctx, BareCloneInvocation(url, path)); err != nil {
		return err
	}
	branch := DefaultBranch(ctx, bareDir(path))
	return run(ctx, WorktreeAddInvocation(path, branch))
}

func bareDir(path string) string {
	return filepath.Join(path, BareDirName)
}

// run executes a single invocation. Args already include any -C.
func run(ctx context.Context, inv Invocation) error {
	return cmd.RunContext(ctx, "", inv.Name, inv.Args...)
}

// DefaultBranch returns the default branch of a freshly cloned bare
// repository (e.g. "main" or "master"). HEAD in a bare clone points at
// the remote's default branch.
func DefaultBranch(ctx context.Context, repoPath string) string {
	output, err := outputGit(ctx, repoPath, "symbolic-ref", "--short", "HEAD")
	if err == nil {
		if branch := strings.TrimSpace(string(output)); branch != "" {
			return branch
		}
	}

	// Fallback: check well-known branch names.
	if runGit(ctx, repoPath, "rev-parse", "--verify", "main") == nil {
		return "main"
	}
	if runGit(ctx, repoPath, "rev-parse", "--verify", "master") == nil {
		return "master"
	}

	// Last resort default
	return "main"
}
