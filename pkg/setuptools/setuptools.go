// Package setuptools runs a project's setup.py to build distributions and to
// query package metadata.  The heavy lifting is all setuptools' own; this
// package just knows how to invoke it.
package setuptools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datawire/dlib/dexec"
)

// A Builder describes how to invoke a project's setup.py.  The zero value is
// usable and builds a universal wheel of the project in the current
// directory.
type Builder struct {
	// Python is the interpreter to run setup.py with.  Defaults to
	// "python3".
	Python string
	// SetupPy is the path to the project's setup.py.  Defaults to
	// "setup.py" in the current directory.
	SetupPy string
	// Universal selects a "py2.py3-none-any" wheel instead of one tagged
	// for the running interpreter only.  BDistWheel passes
	// `--universal` through to setuptools verbatim.
	Universal bool
}

func (b Builder) python() string {
	if b.Python == "" {
		return "python3"
	}
	return b.Python
}

func (b Builder) setupPy() string {
	if b.SetupPy == "" {
		return "setup.py"
	}
	return b.SetupPy
}

// ProjectDir returns the directory that setup.py lives in; setuptools resolves
// its output locations relative to it.
func (b Builder) ProjectDir() string {
	return filepath.Dir(b.setupPy())
}

// DistDir returns the directory that `setup.py bdist_wheel` leaves its
// artifacts in.
func (b Builder) DistDir() string {
	return filepath.Join(b.ProjectDir(), "dist")
}

// BDistWheel builds a wheel distribution of the project.  The child process
// inherits the environment; its output is routed through dlog.  The
// builder's exit status is returned unmodified.
func (b Builder) BDistWheel(ctx context.Context) error {
	args := []string{b.python(), filepath.Base(b.setupPy()), "bdist_wheel"}
	if b.Universal {
		args = append(args, "--universal")
	}
	cmd := dexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = b.ProjectDir()
	return cmd.Run()
}

// Metadata is the subset of the package metadata that the release process
// needs.
type Metadata struct {
	Name    string
	Version string
}

// Metadata asks setup.py for the package name and version.
func (b Builder) Metadata(ctx context.Context) (Metadata, error) {
	cmd := dexec.CommandContext(ctx, b.python(), filepath.Base(b.setupPy()), "--name", "--version")
	cmd.Dir = b.ProjectDir()
	out, err := cmd.Output()
	if err != nil {
		return Metadata{}, err
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 2 || lines[0] == "" || lines[1] == "" {
		return Metadata{}, fmt.Errorf("setup.py --name --version: expected 2 lines of output, got %q", string(out))
	}
	return Metadata{
		Name:    lines[0],
		Version: lines[1],
	}, nil
}
