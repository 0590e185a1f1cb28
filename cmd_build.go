package main

import (
	"github.com/spf13/cobra"

	"github.com/norok2/shipwheel/pkg/cliutil"
)

func init() {
	var projFile string
	var noUniversal bool
	cmd := &cobra.Command{
		Use:   "build [flags]",
		Short: "Build a wheel distribution of the project",
		Long: "Run the project's `setup.py bdist_wheel`, leaving the wheel in the " +
			"conventional dist directory next to setup.py.  By default the wheel is " +
			"built with setuptools' --universal flag, producing a single py2.py3 " +
			"wheel; pass --no-universal for a wheel tagged for the running " +
			"interpreter only." +
			"\n\n" +
			"All of the actual packaging work is setuptools'; success or failure is " +
			"whatever setup.py reports.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(0)),
		RunE: func(flags *cobra.Command, args []string) error {
			proj, err := loadProject(flags, projFile)
			if err != nil {
				return err
			}
			return builderFor(proj, !noUniversal).BDistWheel(flags.Context())
		},
	}
	projectFileFlag(cmd, &projFile)
	cmd.Flags().BoolVar(&noUniversal, "no-universal", false,
		"Tag the wheel for the running interpreter instead of py2.py3")
	argparser.AddCommand(cmd)
}
