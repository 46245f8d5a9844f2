// Package config owns the workspaces configuration document: parsing
// the declarative workspace/project tree, expanding the root path,
// validating the document, resolving per-project git settings through
// the override chain, and walking the resolved tree in declaration
// order.
//
// The document lives at $XDG_CONFIG_HOME/workspaces/workspaces.yaml:
//
//	root: "~"
//	git:                      # optional global defaults
//	  host: github            # github | gitlab
//	  clone_strategy: branch  # branch | worktree
//	  protocol: https         # ssh | https
//	workspaces:
//	  src:
//	    git: { protocol: ssh }          # optional partial override
//	    workspaces:                     # optional nesting
//	      oss:
//	        projects:
//	          workspaces: { git: { repo: "czifro/workspaces" } }
//	    projects:
//	      scratch:                      # no repo: directory only
//
// A workspace key may itself contain path separators ("src/oss"); it
// resolves to the same tree shape as the equivalent nested form.
//
// The tree is built once per invocation and is read-only afterwards.
// Unknown document keys are ignored for forward compatibility.
package config
