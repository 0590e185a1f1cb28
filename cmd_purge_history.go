package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/norok2/shipwheel/pkg/cliutil"
	"github.com/norok2/shipwheel/pkg/githistory"
)

func init() {
	var projFile string
	var argRepoDir string
	var argForce bool
	cmd := &cobra.Command{
		Use:   "purge-history [flags] [TRACKED_PATH]",
		Short: "Rewrite git history to drop a credentials file from every commit",
		Long: "Run `git filter-branch` with an index filter that removes " +
			"TRACKED_PATH (default: the project's credentials file, .pypirc) from " +
			"every commit on every branch and tag, pruning commits that become " +
			"empty, and rewriting tag names onto the rewritten commits." +
			"\n\n" +
			"This rewrites every commit hash in the repository and cannot be " +
			"undone, which is why it wants --force.  Running it again is safe but " +
			"pointless: the second rewrite finds nothing to remove, yet still " +
			"remaps the hashes.  It has nothing to do with building or uploading; " +
			"it exists for the day a credentials file lands in version control.",
		Args: cliutil.WrapPositionalArgs(cobra.MaximumNArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			proj, err := loadProject(flags, projFile)
			if err != nil {
				return err
			}

			path := proj.CredentialsFile
			if path == "" {
				path = ".pypirc"
			}
			if len(args) == 1 {
				path = args[0]
			}

			if !argForce {
				return errors.New("refusing to rewrite history without --force " +
					"(this gives every commit in the repository a new hash)")
			}
			return githistory.PurgeFile(flags.Context(), argRepoDir, path)
		},
	}
	projectFileFlag(cmd, &projFile)
	cmd.Flags().StringVar(&argRepoDir, "repo-dir", ".",
		"Rewrite the repository at `DIR`")
	cmd.Flags().BoolVar(&argForce, "force", false,
		"Actually do it")
	argparser.AddCommand(cmd)
}
