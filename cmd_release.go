package main

import (
	"fmt"
	"path/filepath"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/norok2/shipwheel/pkg/cliutil"
	"github.com/norok2/shipwheel/pkg/distdir"
	"github.com/norok2/shipwheel/pkg/pypi"
	"github.com/norok2/shipwheel/pkg/pyver"
	"github.com/norok2/shipwheel/pkg/setuptools"
	"github.com/norok2/shipwheel/pkg/twine"
)

func init() {
	var projFile string
	var argRepoURL string
	var argCheck bool
	var argSkipExisting bool
	var argNoUniversal bool
	var argVerify bool
	cmd := &cobra.Command{
		Use:   "release [flags]",
		Short: "Build a wheel and upload it, in one go",
		Long: "Build a wheel of the project, then upload everything in the dist " +
			"directory.  The upload file list is computed after the build " +
			"finishes, and a failed build stops the release." +
			"\n\n" +
			"With --verify, afterwards ask the package index (over the PEP 503 " +
			"simple API) whether it now serves every wheel of the released version.  " +
			"Indexes may propagate uploads asynchronously, so a --verify failure " +
			"right after an upload is suspicion, not proof.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(0)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()

			proj, err := loadProject(flags, projFile)
			if err != nil {
				return err
			}
			builder := builderFor(proj, !argNoUniversal)

			dlog.Info(ctx, "building wheel")
			if err := builder.BDistWheel(ctx); err != nil {
				return fmt.Errorf("build: %w", err)
			}

			files, err := distdir.Artifacts(builder.DistDir())
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
					return fmt.Errorf("check: %w", err)
				}
			}
			dlog.Infof(ctx, "uploading %d artifact(s)", len(files))
			if err := uploader.Upload(ctx, files); err != nil {
				return fmt.Errorf("upload: %w", err)
			}

			if argVerify {
				return verifyRelease(flags, proj.IndexURL, builder, files)
			}
			return nil
		},
	}
	projectFileFlag(cmd, &projFile)
	cmd.Flags().StringVar(&argRepoURL, "repository-url", "",
		"Pass `URL` to twine as --repository-url")
	cmd.Flags().BoolVar(&argCheck, "check", false,
		"Run `twine check` over the artifacts before uploading")
	cmd.Flags().BoolVar(&argSkipExisting, "skip-existing", false,
		"Pass --skip-existing to twine")
	cmd.Flags().BoolVar(&argNoUniversal, "no-universal", false,
		"Tag the wheel for the running interpreter instead of py2.py3")
	cmd.Flags().BoolVar(&argVerify, "verify", false,
		"Afterwards, check that the index serves the released wheels")
	argparser.AddCommand(cmd)
}

func verifyRelease(flags *cobra.Command, indexURL string, builder setuptools.Builder, files []string) error {
	ctx := flags.Context()

	meta, err := builder.Metadata(ctx)
	if err != nil {
		return err
	}
	relVer, err := pyver.Parse(meta.Version)
	if err != nil {
		return fmt.Errorf("package version: %w", err)
	}

	client := pypi.Client{BaseURL: indexURL}
	for _, file := range distdir.Wheels(files) {
		basename := filepath.Base(file)
		name, err := distdir.ParseWheelName(basename)
		if err != nil {
			return err
		}
		if name.Version.Cmp(*relVer) != 0 {
			// stale artifact from an earlier build
			dlog.Warnf(ctx, "not verifying %s: it is not part of release %s", basename, relVer)
			continue
		}
		ok, err := client.HasFile(ctx, meta.Name, basename)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if !ok {
			return fmt.Errorf("verify: index does not (yet?) serve %s", basename)
		}
		dlog.Infof(ctx, "index serves %s", basename)
	}
	return nil
}
