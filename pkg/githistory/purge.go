// Package githistory rewrites git history to remove files that should never
// have been committed (credentials files, mostly).
package githistory

import (
	"context"
	"fmt"
	"strings"

	"github.com/datawire/dlib/dexec"
)

// PurgeFile removes the given tracked path from every commit on every branch
// and tag of the repository at repoDir, pruning commits that become empty,
// and rewriting tag names to point at the rewritten commits:
//
//     git filter-branch \
//         --index-filter "git rm --cached --ignore-unmatch PATH" \
//         --prune-empty --tag-name-filter cat -- --all
//
// This is destructive and irreversible: every commit in the repository gets
// a new hash, even on a second run that finds nothing left to remove.  It is
// not safe to run concurrently with any other operation on the repository.
func PurgeFile(ctx context.Context, repoDir, path string) error {
	if err := checkWorkTree(ctx, repoDir); err != nil {
		return err
	}
	cmd := dexec.CommandContext(ctx, "git", "filter-branch",
		// -f overwrites the refs/original/ backup that a previous run
		// left behind; without it a second run refuses to start.
		"-f",
		// filter-branch evaluates the filter with `sh -c`, so the
		// path needs quoting, not just argv separation.
		"--index-filter", "git rm --cached --ignore-unmatch "+shellQuote(path),
		"--prune-empty",
		"--tag-name-filter", "cat",
		"--", "--all")
	cmd.Dir = repoDir
	return cmd.Run()
}

// checkWorkTree refuses to touch anything that isn't a git work tree, so
// that the filter-branch error for a bad --repo-dir isn't the first thing
// the user sees.
func checkWorkTree(ctx context.Context, repoDir string) error {
	cmd := dexec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = repoDir
	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("not a git work tree: %q: %w", repoDir, err)
	}
	if strings.TrimSpace(string(out)) != "true" {
		return fmt.Errorf("not a git work tree: %q", repoDir)
	}
	return nil
}

// shellQuote quotes a string for POSIX sh.
func shellQuote(str string) string {
	return "'" + strings.ReplaceAll(str, "'", `'\''`) + "'"
}
