// Package twine invokes the twine upload tool.  Credentials are twine's
// business (its ~/.pypirc, TWINE_* environment variables, or keyring); this
// package never sees them.
package twine

import (
	"context"
	"errors"

	"github.com/datawire/dlib/dexec"
)

// An Uploader describes how to invoke twine.  The zero value uploads to the
// default index (PyPI).
type Uploader struct {
	// Twine is the twine executable to run.  Defaults to "twine".
	Twine string
	// RepositoryURL, if set, is passed as `--repository-url` so that the
	// upload goes somewhere other than twine's configured default.
	RepositoryURL string
	// SkipExisting passes `--skip-existing`, turning "this file is
	// already on the index" from an error into a no-op.
	SkipExisting bool
}

func (u Uploader) twine() string {
	if u.Twine == "" {
		return "twine"
	}
	return u.Twine
}

// Check runs `twine check` over the given artifacts, which validates that
// their long_description will render on the index.
func (u Uploader) Check(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return errors.New("twine check: no files")
	}
	args := append([]string{"check"}, files...)
	return dexec.CommandContext(ctx, u.twine(), args...).Run()
}

// Upload runs one `twine upload` invocation over all of the given artifacts.
// The uploader's exit status is returned unmodified.
func (u Uploader) Upload(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return errors.New("twine upload: no files")
	}
	args := []string{"upload"}
	if u.RepositoryURL != "" {
		args = append(args, "--repository-url", u.RepositoryURL)
	}
	if u.SkipExisting {
		args = append(args, "--skip-existing")
	}
	args = append(args, files...)
	return dexec.CommandContext(ctx, u.twine(), args...).Run()
}
