package main

import (
	"github.com/spf13/cobra"

	"github.com/czifro/workspaces/internal/doctor"
	"github.com/czifro/workspaces/internal/output"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Short:   "Report declared paths missing from disk",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Doctor re-resolves the configuration tree and reports every declared
workspace or project directory that does not exist on disk. It makes no
changes; run 'workspaces restore' to fix what it finds.`,
		Example: `  workspaces doctor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree()
			if err != nil {
				return err
			}

			out := output.FromContext(cmd.Context())
			diagnosis := doctor.Diagnose(tree)

			if diagnosis.Clean() {
				out.Println("✓ all declared workspaces and projects exist")
				return nil
			}

			if len(diagnosis.MissingWorkspaces) > 0 {
				out.Println("Missing workspaces:")
				for _, path := range diagnosis.MissingWorkspaces {
					out.Printf("  %s\n", path)
				}
			}
			if len(diagnosis.MissingProjects) > 0 {
				out.Println("Missing projects:")
				for _, path := range diagnosis.MissingProjects {
					out.Printf("  %s\n", path)
				}
			}
			out.Println()
			out.Println("Run 'workspaces restore workspace --all --include-projects' to recreate them.")
			return nil
		},
	}
}
