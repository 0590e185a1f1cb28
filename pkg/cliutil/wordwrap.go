package cliutil

import (
	"strings"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no
// wrapping.
//
// In order to have some room for slop to avoid things like a short word being
// on a line by itself, most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent wraps the string `s` to a maximum width `w` with leading indent
// `i`.  The first line is not indented (this is assumed to be done by the
// caller).  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being
// on a line by itself, most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, str string) string {
	if width == 0 {
		return str
	}
	limit := width - 5 - indent
	if limit < 1 {
		return str
	}

	var ret strings.Builder
	for lineNum, line := range strings.Split(str, "\n") {
		if lineNum > 0 {
			ret.WriteString("\n")
			ret.WriteString(strings.Repeat(" ", indent))
		}
		// Break at space boundaries, preserving the original inter-word
		// spacing of whatever ends up mid-line.
		for len(line) > limit {
			cut := strings.LastIndex(line[:limit+1], " ")
			if cut <= 0 {
				// A single over-long word; don't split it.
				cut = strings.Index(line, " ")
				if cut < 0 {
					break
				}
			}
			ret.WriteString(strings.TrimRight(line[:cut], " "))
			ret.WriteString("\n")
			ret.WriteString(strings.Repeat(" ", indent))
			line = strings.TrimLeft(line[cut:], " ")
		}
		ret.WriteString(line)
	}
	return ret.String()
}
