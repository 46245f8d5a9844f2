// Package restore drives idempotent restoration of the declared
// directory layout: missing workspace directories are created, missing
// git-backed projects are cloned with their resolved strategy, and
// everything already on disk is left untouched.
//
// The engine never aborts a run on a per-path failure; every outcome is
// collected into a Report so one broken repository cannot block the
// rest. Re-running restore converges: a second run over a restored
// tree produces only skips.
package restore

import (
	"context"
	"os"

	"github.com/czifro/workspaces/internal/config"
	"github.com/czifro/workspaces/internal/git"
)

// Action classifies the outcome for one path.
type Action string

const (
	// ActionCreated: the directory was missing and has been created.
	ActionCreated Action = "created"
	// ActionCloned: the project was missing and has been cloned.
	ActionCloned Action = "cloned"
	// ActionSkippedExists: the path already exists; nothing was done.
	ActionSkippedExists Action = "skipped (already exists)"
	// ActionSkippedNoRepo: the project declares no repo; only its
	// directory is ensured.
	ActionSkippedNoRepo Action = "skipped (no repo)"
	// ActionFailed: directory creation or clone failed; see Err.
	ActionFailed Action = "failed"
)

// Outcome is the result for a single path.
type Outcome struct {
	Path   string
	Action Action
	Err    error
}

// Report aggregates per-path outcomes of one restore run.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(path string, action Action, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{Path: path, Action: action, Err: err})
}

// Failed returns the outcomes that failed.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Action == ActionFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Engine restores targets from a resolved configuration tree. The
// cloner is injected so tests substitute a fake for the git binary.
type Engine struct {
	tree   *config.Tree
	cloner git.Cloner
}

// New creates a restore engine over the tree.
func New(tree *config.Tree, cloner git.Cloner) *Engine {
	return &Engine{tree: tree, cloner: cloner}
}

// Workspace restores a single workspace, identified by its path
// relative to the root. With includeProjects the workspace's own
// projects are restored too. An undeclared target fails with
// UnknownPathError before any filesystem action.
func (e *Engine) Workspace(ctx context.Context, target string, includeProjects bool) (*Report, error) {
	ws, err := e.tree.LookupWorkspace(target)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	e.ensureDir(report, ws.Path())

	if includeProjects {
		e.tree.WalkProjects(func(p *config.Project, chain []*config.Workspace) bool {
			if chain[len(chain)-1] == ws {
				e.restoreProject(ctx, report, p, chain)
			}
			return true
		})
	}
	return report, nil
}

// AllWorkspaces restores every declared workspace, and with
// includeProjects every project in the tree.
func (e *Engine) AllWorkspaces(ctx context.Context, includeProjects bool) (*Report, error) {
	report := &Report{}
	e.tree.WalkWorkspaces(func(ws *config.Workspace) bool {
		e.ensureDir(report, ws.Path())
		return true
	})

	if includeProjects {
		e.tree.WalkProjects(func(p *config.Project, chain []*config.Workspace) bool {
			e.restoreProject(ctx, report, p, chain)
			return true
		})
	}
	return report, nil
}

// Project restores a single project, identified by its path relative
// to the root. The owning workspace's directory is ensured first.
func (e *Engine) Project(ctx context.Context, target string) (*Report, error) {
	p, chain, err := e.tree.LookupProject(target)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	owner := chain[len(chain)-1]
	if !exists(owner.Path()) {
		e.ensureDir(report, owner.Path())
	}
	e.restoreProject(ctx, report, p, chain)
	return report, nil
}

// ensureDir creates a workspace directory if missing. Workspaces are
// never clone targets.
func (e *Engine) ensureDir(report *Report, path string) {
	if exists(path) {
		report.add(path, ActionSkippedExists, nil)
		return
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		report.add(path, ActionFailed, err)
		return
	}
	report.add(path, ActionCreated, nil)
}

// restoreProject applies the per-project algorithm: resolve the
// effective git settings; path-only projects get a plain directory;
// existing directories are never re-cloned; missing repos are cloned
// with the resolved strategy.
func (e *Engine) restoreProject(ctx context.Context, report *Report, p *config.Project, chain []*config.Workspace) {
	eff := config.Resolve(p, chain, e.tree.Git)
	path := p.Path()

	if eff == nil {
		if !exists(path) {
			if err := os.MkdirAll(path, 0o755); err != nil {
				report.add(path, ActionFailed, err)
				return
			}
		}
		report.add(path, ActionSkippedNoRepo, nil)
		return
	}

	if exists(path) {
		report.add(path, ActionSkippedExists, nil)
		return
	}

	if err := e.cloner.Clone(ctx, eff, path); err != nil {
		report.add(path, ActionFailed, err)
		return
	}
	report.add(path, ActionCloned, nil)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
