package distdir

import (
	"fmt"
	"regexp"

	"github.com/norok2/shipwheel/pkg/pyver"
)

// WheelName is the information encoded in a wheel's filename
// (`{distribution}-{version}(-{build})?-{python}-{abi}-{platform}.whl`).
type WheelName struct {
	Distribution string
	Version      pyver.Version
	// compatibility tags (PEP 425); opaque to us, twine and pip care
	Python   string
	ABI      string
	Platform string
}

var reWheelName = regexp.MustCompile(`^` +
	`(?P<distribution>[^-]+)` +
	`-(?P<version>[^-]+)` +
	`(?:-(?P<build>[0-9][^-]*))?` +
	`-(?P<python>[^-]+)` +
	`-(?P<abi>[^-]+)` +
	`-(?P<platform>[^-]+)` +
	`\.whl$`)

// ParseWheelName parses the basename of a wheel file.
func ParseWheelName(filename string) (*WheelName, error) {
	match := reWheelName.FindStringSubmatch(filename)
	if match == nil {
		return nil, fmt.Errorf("invalid wheel filename: %q", filename)
	}

	ver, err := pyver.Parse(match[reWheelName.SubexpIndex("version")])
	if err != nil {
		return nil, fmt.Errorf("invalid wheel filename: %q: %w", filename, err)
	}

	return &WheelName{
		Distribution: match[reWheelName.SubexpIndex("distribution")],
		Version:      *ver,
		Python:       match[reWheelName.SubexpIndex("python")],
		ABI:          match[reWheelName.SubexpIndex("abi")],
		Platform:     match[reWheelName.SubexpIndex("platform")],
	}, nil
}
