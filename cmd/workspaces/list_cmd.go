package main

import (
	"github.com/spf13/cobra"

	"github.com/czifro/workspaces/internal/output"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List declared workspace and project paths",
		GroupID: GroupCore,
		Long: `List the absolute paths of declared workspaces or projects, one per
line, in declaration order.`,
		Example: `  workspaces list workspaces   # every workspace path
  workspaces list projects     # every project path`,
	}
	cmd.AddCommand(newListWorkspacesCmd())
	cmd.AddCommand(newListProjectsCmd())
	return cmd
}

func newListWorkspacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workspaces",
		Short: "List workspace paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree()
			if err != nil {
				return err
			}
			out := output.FromContext(cmd.Context())
			for _, path := range tree.WorkspacePaths() {
				out.Println(path)
			}
			return nil
		},
	}
}

func newListProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List project paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree()
			if err != nil {
				return err
			}
			out := output.FromContext(cmd.Context())
			for _, path := range tree.ProjectPaths() {
				out.Println(path)
			}
			return nil
		},
	}
}
