package main

import (
	"github.com/spf13/cobra"

	"github.com/norok2/shipwheel/pkg/projfile"
	"github.com/norok2/shipwheel/pkg/setuptools"
)

// loadProject resolves the --project-file flag.  The default filename is
// allowed to be absent; a filename the user asked for by name is not.
func loadProject(flags *cobra.Command, filename string) (projfile.Project, error) {
	missingOK := !flags.Flags().Changed("project-file")
	return projfile.Load(filename, missingOK)
}

func projectFileFlag(cmd *cobra.Command, storage *string) {
	cmd.Flags().StringVar(storage, "project-file", "shipwheel.yml",
		"Read project settings from `IN_YAML_FILE`")
}

func builderFor(proj projfile.Project, universal bool) setuptools.Builder {
	return setuptools.Builder{
		Python:    proj.Python,
		SetupPy:   proj.SetupPy,
		Universal: universal,
	}
}
