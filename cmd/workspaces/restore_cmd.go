package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/czifro/workspaces/internal/git"
	"github.com/czifro/workspaces/internal/log"
	"github.com/czifro/workspaces/internal/output"
	"github.com/czifro/workspaces/internal/restore"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restore",
		Short:   "Restore missing workspaces and projects",
		GroupID: GroupCore,
		Long: `Restore recreates the declared layout on disk: missing workspace
directories are created, missing git-backed projects are cloned with
their resolved strategy, and existing paths are never touched.

Individual clone failures are reported but do not abort the run; the
command exits 0 whenever a full report was produced.`,
		Example: `  workspaces restore workspace src                     # directory only
  workspaces restore workspace src --include-projects  # plus its projects
  workspaces restore workspace --all --include-projects
  workspaces restore project src/my-tool`,
	}
	cmd.AddCommand(newRestoreWorkspaceCmd())
	cmd.AddCommand(newRestoreProjectCmd())
	return cmd
}

func newRestoreWorkspaceCmd() *cobra.Command {
	var (
		all             bool
		includeProjects bool
	)

	cmd := &cobra.Command{
		Use:   "workspace [PATH]",
		Short: "Restore one workspace, or all with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return errors.New("exactly one of PATH or --all is required")
			}
			if err := git.CheckGit(); err != nil {
				return err
			}
			tree, err := loadTree()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			engine := restore.New(tree, git.CLICloner{})

			var report *restore.Report
			if all {
				report, err = engine.AllWorkspaces(ctx, includeProjects)
			} else {
				report, err = engine.Workspace(ctx, args[0], includeProjects)
			}
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Restore every declared workspace")
	cmd.Flags().BoolVar(&includeProjects, "include-projects", false, "Also restore the workspace's projects")
	return cmd
}

func newRestoreProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project PATH",
		Short: "Restore a single project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := git.CheckGit(); err != nil {
				return err
			}
			tree, err := loadTree()
			if err != nil {
				return err
			}

			engine := restore.New(tree, git.CLICloner{})
			report, err := engine.Project(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}
}

// printReport writes per-path outcomes to stdout and a failure summary
// to stderr. Failures never change the exit status; the report is the
// result.
func printReport(cmd *cobra.Command, report *restore.Report) {
	ctx := cmd.Context()
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	for _, o := range report.Outcomes {
		if o.Err != nil {
			out.Printf("%s: %s: %v\n", o.Path, o.Action, o.Err)
			continue
		}
		out.Printf("%s: %s\n", o.Path, o.Action)
	}

	if failed := report.Failed(); len(failed) > 0 {
		l.Printf("%d of %d paths failed\n", len(failed), len(report.Outcomes))
	}
}
