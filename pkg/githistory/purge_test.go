package githistory_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datawire/dlib/dexec"
	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norok2/shipwheel/pkg/githistory"
	"github.com/norok2/shipwheel/pkg/testutil"
)

//nolint:paralleltest // StubCommand uses t.Setenv
func TestPurgeFileInvocation(t *testing.T) {
	ctx := dlog.NewTestContext(t, true)
	logFile := testutil.StubCommand(t, "git",
		`if [ "$1" = rev-parse ]; then echo true; fi`)

	require.NoError(t, githistory.PurgeFile(ctx, ".", ".pypirc"))

	calls := testutil.StubCalls(t, logFile)
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"rev-parse", "--is-inside-work-tree"}, calls[0])
	assert.Equal(t, []string{
		"filter-branch",
		"-f",
		"--index-filter", "git rm --cached --ignore-unmatch '.pypirc'",
		"--prune-empty",
		"--tag-name-filter", "cat",
		"--", "--all",
	}, calls[1])
}

//nolint:paralleltest // StubCommand uses t.Setenv
func TestPurgeFileQuotesPath(t *testing.T) {
	ctx := dlog.NewTestContext(t, true)
	logFile := testutil.StubCommand(t, "git",
		`if [ "$1" = rev-parse ]; then echo true; fi`)

	require.NoError(t, githistory.PurgeFile(ctx, ".", "it's got spaces.cfg"))

	calls := testutil.StubCalls(t, logFile)
	require.Len(t, calls, 2)
	assert.Equal(t,
		`git rm --cached --ignore-unmatch 'it'\''s got spaces.cfg'`,
		calls[1][3])
}

//nolint:paralleltest // StubCommand uses t.Setenv
func TestPurgeFileNotARepo(t *testing.T) {
	ctx := dlog.NewTestContext(t, true)
	logFile := testutil.StubCommand(t, "git",
		`if [ "$1" = rev-parse ]; then echo false >&2; exit 128; fi`)

	err := githistory.PurgeFile(ctx, ".", ".pypirc")
	assert.Error(t, err)
	// the underlying git failure stays inspectable through the wrapper
	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))
	// it must not have gone on to filter-branch
	assert.Len(t, testutil.StubCalls(t, logFile), 1)
}

// TestPurgeFileRewrite runs the real git against a throwaway repository.
//
//nolint:paralleltest // t.Setenv
func TestPurgeFileRewrite(t *testing.T) {
	if _, err := dexec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	ctx := dlog.NewTestContext(t, true)

	t.Setenv("GIT_AUTHOR_NAME", "test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@localhost")
	t.Setenv("GIT_COMMITTER_NAME", "test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@localhost")
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("FILTER_BRANCH_SQUELCH_WARNING", "1")

	repoDir := t.TempDir()
	git := func(args ...string) string {
		t.Helper()
		cmd := dexec.CommandContext(ctx, "git", args...)
		cmd.Dir = repoDir
		out, err := cmd.Output()
		require.NoError(t, err)
		return string(out)
	}

	git("init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "README"), []byte("hi\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, ".pypirc"), []byte("[pypi]\npassword=hunter2\n"), 0o600))
	git("add", "README", ".pypirc")
	git("commit", "-q", "-m", "initial")
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "README"), []byte("hi there\n"), 0o644))
	git("add", "README")
	git("commit", "-q", "-m", "update readme")

	require.NoError(t, githistory.PurgeFile(ctx, repoDir, ".pypirc"))

	// the credentials file is gone from every surviving commit
	assert.Empty(t, strings.TrimSpace(git("log", "--format=%H", "HEAD", "--", ".pypirc")))
	// the rest of history survived
	assert.NotEmpty(t, strings.TrimSpace(git("log", "--format=%H", "HEAD", "--", "README")))

	// a second run finds nothing to remove but still succeeds
	require.NoError(t, githistory.PurgeFile(ctx, repoDir, ".pypirc"))
}
