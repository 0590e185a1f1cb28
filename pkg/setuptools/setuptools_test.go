package setuptools_test

import (
	"path/filepath"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norok2/shipwheel/pkg/setuptools"
	"github.com/norok2/shipwheel/pkg/testutil"
)

//nolint:paralleltest // StubCommand uses t.Setenv
func TestBDistWheel(t *testing.T) {
	type testcase struct {
		InputBuilder setuptools.Builder
		ExpectedArgv []string
	}
	testcases := map[string]testcase{
		"universal": {
			InputBuilder: setuptools.Builder{Universal: true},
			ExpectedArgv: []string{"setup.py", "bdist_wheel", "--universal"},
		},
		"plain": {
			InputBuilder: setuptools.Builder{},
			ExpectedArgv: []string{"setup.py", "bdist_wheel"},
		},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			ctx := dlog.NewTestContext(t, true)
			logFile := testutil.StubCommand(t, "python3", "")

			require.NoError(t, tcData.InputBuilder.BDistWheel(ctx))

			calls := testutil.StubCalls(t, logFile)
			require.Len(t, calls, 1)
			assert.Equal(t, tcData.ExpectedArgv, calls[0])
		})
	}
}

func TestBuilderPaths(t *testing.T) {
	t.Parallel()

	builder := setuptools.Builder{SetupPy: filepath.Join("proj", "setup.py")}
	assert.Equal(t, "proj", builder.ProjectDir())
	assert.Equal(t, filepath.Join("proj", "dist"), builder.DistDir())

	builder = setuptools.Builder{}
	assert.Equal(t, ".", builder.ProjectDir())
	assert.Equal(t, "dist", builder.DistDir())
}

//nolint:paralleltest // StubCommand uses t.Setenv
func TestBDistWheelPropagatesFailure(t *testing.T) {
	ctx := dlog.NewTestContext(t, true)
	testutil.StubCommand(t, "python3", "exit 7")

	err := setuptools.Builder{Universal: true}.BDistWheel(ctx)
	assert.Error(t, err)
}

//nolint:paralleltest // StubCommand uses t.Setenv
func TestMetadata(t *testing.T) {
	ctx := dlog.NewTestContext(t, true)
	logFile := testutil.StubCommand(t, "python3", "printf 'hdu\\n0.2.3\\n'")

	meta, err := setuptools.Builder{}.Metadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, setuptools.Metadata{Name: "hdu", Version: "0.2.3"}, meta)

	calls := testutil.StubCalls(t, logFile)
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"setup.py", "--name", "--version"}, calls[0])
}

//nolint:paralleltest // StubCommand uses t.Setenv
func TestMetadataGarbage(t *testing.T) {
	ctx := dlog.NewTestContext(t, true)
	testutil.StubCommand(t, "python3", "printf 'just-one-line\\n'")

	_, err := setuptools.Builder{}.Metadata(ctx)
	assert.Error(t, err)
}
