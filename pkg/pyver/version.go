// Package pyver implements the subset of PEP 440 ("Version Identification
// and Dependency Specification") that a release tool needs: parsing public
// and local version identifiers, normalizing them, and ordering them.
//
// https://www.python.org/dev/peps/pep-0440/
package pyver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// A Version is a version identifier:
//
//     [N!]N(.N)*[{a|b|rc}N][.postN][.devN][+<local>]
type Version struct {
	Epoch   int
	Release []int
	Pre     *PreRelease
	Post    *int
	Dev     *int
	// Local version label segments.  "If a segment consists entirely of
	// ASCII digits then that section should be considered an integer for
	// comparison purposes", hence int-or-string.
	Local []intstr.IntOrString
}

type PreRelease struct {
	L string // "a", "b", or "rc" (canonical spellings)
	N int
}

// reVersion is the permissive VERSION_PATTERN regex from the PyPA "packaging"
// project, as given in PEP 440 Appendix B.
var reVersion = regexp.MustCompile(`(?i)^\s*v?` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?:[-_\.]?(?P<pre_l>a|b|c|rc|alpha|beta|pre|preview)[-_\.]?(?P<pre_n>[0-9]+)?)?` +
	`(?:(?:-(?P<post_n1>[0-9]+))|(?:[-_\.]?(?P<post_l>post|rev|r)[-_\.]?(?P<post_n2>[0-9]+)?))?` +
	`(?:[-_\.]?(?P<dev_l>dev)[-_\.]?(?P<dev_n>[0-9]+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_\.][a-z0-9]+)*))?` +
	`\s*$`)

var preSpellings = map[string]string{
	"a": "a", "alpha": "a",
	"b": "b", "beta": "b",
	"c": "rc", "rc": "rc", "pre": "rc", "preview": "rc",
}

// Parse parses a version string, performing normalization.
func Parse(str string) (*Version, error) {
	match := reVersion.FindStringSubmatch(str)
	if match == nil {
		return nil, fmt.Errorf("invalid version: %q", str)
	}

	var ver Version
	var err error

	if epoch := match[reVersion.SubexpIndex("epoch")]; epoch != "" {
		ver.Epoch, err = strconv.Atoi(epoch)
		if err != nil {
			return nil, err
		}
	}

	for _, segStr := range strings.Split(match[reVersion.SubexpIndex("release")], ".") {
		segInt, err := strconv.Atoi(segStr)
		if err != nil {
			return nil, err
		}
		ver.Release = append(ver.Release, segInt)
	}

	atoiOrZero := func(str string) (int, error) {
		if str == "" {
			return 0, nil
		}
		return strconv.Atoi(str)
	}

	if preL := strings.ToLower(match[reVersion.SubexpIndex("pre_l")]); preL != "" {
		preN, err := atoiOrZero(match[reVersion.SubexpIndex("pre_n")])
		if err != nil {
			return nil, err
		}
		ver.Pre = &PreRelease{L: preSpellings[preL], N: preN}
	}

	if postN1, postL := match[reVersion.SubexpIndex("post_n1")], match[reVersion.SubexpIndex("post_l")]; postN1 != "" || postL != "" {
		postN, err := atoiOrZero(postN1 + match[reVersion.SubexpIndex("post_n2")])
		if err != nil {
			return nil, err
		}
		ver.Post = &postN
	}

	if match[reVersion.SubexpIndex("dev_l")] != "" {
		devN, err := atoiOrZero(match[reVersion.SubexpIndex("dev_n")])
		if err != nil {
			return nil, err
		}
		ver.Dev = &devN
	}

	localParts := strings.FieldsFunc(match[reVersion.SubexpIndex("local")], func(r rune) bool {
		return strings.ContainsRune("-_.", r)
	})
	for _, part := range localParts {
		ver.Local = append(ver.Local, intstr.Parse(strings.ToLower(part)))
	}

	return &ver, nil
}

// String returns the canonical (normalized) spelling of the version.
func (ver Version) String() string {
	var ret strings.Builder
	if ver.Epoch > 0 {
		fmt.Fprintf(&ret, "%d!", ver.Epoch)
	}
	for i, segment := range ver.Release {
		if i > 0 {
			ret.WriteString(".")
		}
		fmt.Fprintf(&ret, "%d", segment)
	}
	if ver.Pre != nil {
		fmt.Fprintf(&ret, "%s%d", ver.Pre.L, ver.Pre.N)
	}
	if ver.Post != nil {
		fmt.Fprintf(&ret, ".post%d", *ver.Post)
	}
	if ver.Dev != nil {
		fmt.Fprintf(&ret, ".dev%d", *ver.Dev)
	}
	sep := "+"
	for _, local := range ver.Local {
		ret.WriteString(sep)
		ret.WriteString(local.String())
		sep = "."
	}
	return ret.String()
}
