package twine_test

import (
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norok2/shipwheel/pkg/testutil"
	"github.com/norok2/shipwheel/pkg/twine"
)

//nolint:paralleltest // StubCommand uses t.Setenv
func TestUpload(t *testing.T) {
	type testcase struct {
		InputUploader twine.Uploader
		InputFiles    []string
		ExpectedArgv  []string
	}
	files := []string{"dist/hdu-0.2.3-py2.py3-none-any.whl", "dist/hdu-0.2.3.tar.gz"}
	testcases := map[string]testcase{
		"plain": {
			InputUploader: twine.Uploader{},
			InputFiles:    files,
			ExpectedArgv: []string{"upload",
				"dist/hdu-0.2.3-py2.py3-none-any.whl", "dist/hdu-0.2.3.tar.gz"},
		},
		"repositoryURL": {
			InputUploader: twine.Uploader{RepositoryURL: "https://test.pypi.org/legacy/"},
			InputFiles:    files,
			ExpectedArgv: []string{"upload", "--repository-url", "https://test.pypi.org/legacy/",
				"dist/hdu-0.2.3-py2.py3-none-any.whl", "dist/hdu-0.2.3.tar.gz"},
		},
		"skipExisting": {
			InputUploader: twine.Uploader{SkipExisting: true},
			InputFiles:    files,
			ExpectedArgv: []string{"upload", "--skip-existing",
				"dist/hdu-0.2.3-py2.py3-none-any.whl", "dist/hdu-0.2.3.tar.gz"},
		},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			ctx := dlog.NewTestContext(t, true)
			logFile := testutil.StubCommand(t, "twine", "")

			require.NoError(t, tcData.InputUploader.Upload(ctx, tcData.InputFiles))

			calls := testutil.StubCalls(t, logFile)
			require.Len(t, calls, 1)
			assert.Equal(t, tcData.ExpectedArgv, calls[0])
		})
	}
}

//nolint:paralleltest // StubCommand uses t.Setenv
func TestCheck(t *testing.T) {
	ctx := dlog.NewTestContext(t, true)
	logFile := testutil.StubCommand(t, "twine", "")

	require.NoError(t, twine.Uploader{}.Check(ctx, []string{"dist/a.whl"}))

	calls := testutil.StubCalls(t, logFile)
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"check", "dist/a.whl"}, calls[0])
}

//nolint:paralleltest // StubCommand uses t.Setenv
func TestUploadPropagatesFailure(t *testing.T) {
	ctx := dlog.NewTestContext(t, true)
	testutil.StubCommand(t, "twine", "exit 1")

	assert.Error(t, twine.Uploader{}.Upload(ctx, []string{"dist/a.whl"}))
}

func TestUploadNoFiles(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)

	assert.Error(t, twine.Uploader{}.Upload(ctx, nil))
	assert.Error(t, twine.Uploader{}.Check(ctx, nil))
}
