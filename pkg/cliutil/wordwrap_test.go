package cliutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/norok2/shipwheel/pkg/cliutil"
)

func TestWrap(t *testing.T) {
	t.Parallel()
	type testcase struct {
		InputWidth  int
		InputStr    string
		ExpectedStr string
	}
	testcases := map[string]testcase{
		"zeroWidthNoWrap": {
			InputWidth:  0,
			InputStr:    "some text that would otherwise certainly have been wrapped to a few lines by now",
			ExpectedStr: "some text that would otherwise certainly have been wrapped to a few lines by now",
		},
		"shortUnchanged": {
			InputWidth:  80,
			InputStr:    "short line",
			ExpectedStr: "short line",
		},
		"preservesInnerSpacing": {
			InputWidth:  30,
			InputStr:    "First sentence.  Second one is here too.",
			ExpectedStr: "First sentence.  Second\none is here too.",
		},
		"overlongWordNotSplit": {
			InputWidth:  10,
			InputStr:    "supercalifragilistic",
			ExpectedStr: "supercalifragilistic",
		},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tcData.ExpectedStr, cliutil.Wrap(tcData.InputWidth, tcData.InputStr))
		})
	}
}

func TestWrapIndent(t *testing.T) {
	t.Parallel()
	// width 30 and indent 10 leave 15 columns of text per line
	assert.Equal(t,
		"one two three\n          four five six",
		cliutil.WrapIndent(10, 30, "one two three four five six"))
}
