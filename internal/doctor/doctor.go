// Package doctor diagnoses drift between the declared layout and the
// filesystem: workspaces and projects that exist in configuration but
// not on disk. It re-runs tree resolution and reports discrepancies;
// restore consumes the same notion of "missing".
package doctor

import (
	"os"

	"github.com/czifro/workspaces/internal/config"
)

// Diagnosis lists declared paths missing from disk, in walk order.
type Diagnosis struct {
	MissingWorkspaces []string
	MissingProjects   []string
}

// Clean reports whether nothing is missing.
func (d *Diagnosis) Clean() bool {
	return len(d.MissingWorkspaces) == 0 && len(d.MissingProjects) == 0
}

// Diagnose checks every declared workspace and project path for
// existence on disk. Read-only; never touches the tree or filesystem
// state.
func Diagnose(tree *config.Tree) *Diagnosis {
	d := &Diagnosis{}
	for _, path := range tree.WorkspacePaths() {
		if !exists(path) {
			d.MissingWorkspaces = append(d.MissingWorkspaces, path)
		}
	}
	for _, path := range tree.ProjectPaths() {
		if !exists(path) {
			d.MissingProjects = append(d.MissingProjects, path)
		}
	}
	return d
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
