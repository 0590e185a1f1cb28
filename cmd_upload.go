package main

import (
	"github.com/spf13/cobra"

	"github.com/norok2/shipwheel/pkg/cliutil"
	"github.com/norok2/shipwheel/pkg/distdir"
	"github.com/norok2/shipwheel/pkg/twine"
)

func init() {
	var projFile string
	var argDistDir string
	var argRepoURL string
	var argCheck bool
	var argSkipExisting bool
	cmd := &cobra.Command{
		Use:   "upload [flags]",
		Short: "Upload everything in the dist directory with twine",
		Long: "Hand every file currently in the dist directory to a single " +
			"`twine upload` invocation; the shell's `twine upload dist/*`, with the " +
			"glob expanded here.  Credentials are twine's business (~/.pypirc, " +
			"TWINE_USERNAME/TWINE_PASSWORD, or keyring); shipwheel never reads them." +
			"\n\n" +
			"An empty dist directory is an error: it means the build step hasn't " +
			"run.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(0)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()

			proj, err := loadProject(flags, projFile)
			if err != nil {
				return err
			}

			distDir := argDistDir
			if distDir == "" {
				distDir = builderFor(proj, false).DistDir()
			}
			files, err := distdir.Artifacts(distDir)
			if err != nil {
				return err
			}

			uploader := twine.Uploader{
				Twine:         proj.Twine,
				RepositoryURL: argRepoURL,
				SkipExisting:  argSkipExisting,
			}
			if uploader.RepositoryURL == "" {
				uploader.RepositoryURL = proj.RepositoryURL
			}
			if argCheck {
				if err := uploader.Check(ctx, files); err != nil {
					return err
				}
			}
			return uploader.Upload(ctx, files)
		},
	}
	projectFileFlag(cmd, &projFile)
	cmd.Flags().StringVar(&argDistDir, "dist-dir", "",
		"Upload the files in `DIR` (default: the dist directory next to setup.py)")
	cmd.Flags().StringVar(&argRepoURL, "repository-url", "",
		"Pass `URL` to twine as --repository-url")
	cmd.Flags().BoolVar(&argCheck, "check", false,
		"Run `twine check` over the artifacts first")
	cmd.Flags().BoolVar(&argSkipExisting, "skip-existing", false,
		"Pass --skip-existing to twine")
	argparser.AddCommand(cmd)
}
