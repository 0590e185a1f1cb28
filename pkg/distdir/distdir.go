// Package distdir deals with the "dist" directory that setuptools leaves
// build artifacts in.  The directory's lifecycle belongs to the build tool;
// this package only ever reads it.
package distdir

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Artifacts returns the path of every regular file in the given dist
// directory, sorted; the equivalent of the shell's `dist/*`.  Subdirectories
// and dotfiles are skipped.
//
// An empty (or absent) dist directory is an error: there is nothing to
// upload, and it is almost certainly because the build step hasn't run.
func Artifacts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var ret []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ret = append(ret, filepath.Join(dir, entry.Name()))
	}
	if len(ret) == 0 {
		return nil, &fs.PathError{
			Op:   "list artifacts",
			Path: dir,
			Err:  fmt.Errorf("directory contains no distribution files"),
		}
	}
	sort.Strings(ret)
	return ret, nil
}

// Wheels filters paths down to the ones that name wheel files.
func Wheels(paths []string) []string {
	var ret []string
	for _, p := range paths {
		if strings.HasSuffix(p, ".whl") {
			ret = append(ret, p)
		}
	}
	return ret
}
