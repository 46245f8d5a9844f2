package main

import (
	"github.com/spf13/cobra"

	"github.com/czifro/workspaces/internal/config"
	"github.com/czifro/workspaces/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage the workspaces configuration",
		GroupID: GroupConfig,
		Example: `  workspaces config init   # write a starter workspaces.yaml
  workspaces config show   # print the resolved tree
  workspaces config path   # print the active config file path`,
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(configPath, force)
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree()
			if err != nil {
				return err
			}

			out := output.FromContext(cmd.Context())
			out.Printf("root: %s\n", tree.Root)
			tree.WalkWorkspaces(func(ws *config.Workspace) bool {
				out.Printf("workspace %s\n", ws.Path())
				return true
			})
			tree.WalkProjects(func(p *config.Project, chain []*config.Workspace) bool {
				if eff := config.Resolve(p, chain, tree.Git); eff != nil {
					out.Printf("project   %s  %s (%s, %s, %s)\n", p.Path(), eff.Repo, eff.Host, eff.Protocol, eff.CloneStrategy)
				} else {
					out.Printf("project   %s  (directory only)\n", p.Path())
				}
				return true
			})
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the active configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}
}
