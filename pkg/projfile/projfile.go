// Package projfile reads the optional shipwheel.yml project file, which
// holds the per-project settings that would otherwise be repeated as flags
// on every invocation.
package projfile

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Project is the schema of shipwheel.yml.  Every field is optional; the
// zero value describes the conventional setuptools project layout.
type Project struct {
	// Python is the interpreter used to run setup.py (default "python3").
	Python string `json:"Python,omitempty"`
	// SetupPy is the path to setup.py (default "setup.py").
	SetupPy string `json:"SetupPy,omitempty"`
	// Twine is the twine executable (default "twine").
	Twine string `json:"Twine,omitempty"`
	// RepositoryURL is where twine uploads to (default: twine's own
	// default, i.e. PyPI).
	RepositoryURL string `json:"RepositoryURL,omitempty"`
	// IndexURL is the PEP 503 simple API base URL used to verify uploads
	// (default "https://pypi.org/simple/").
	IndexURL string `json:"IndexURL,omitempty"`
	// CredentialsFile is the tracked path that `shipwheel purge-history`
	// removes by default (default ".pypirc").
	CredentialsFile string `json:"CredentialsFile,omitempty"`
}

// Load reads and parses a project file.  A missing file is not an error if
// missingOK is set; the zero Project is returned.
func Load(filename string, missingOK bool) (Project, error) {
	yamlBytes, err := os.ReadFile(filename)
	if err != nil {
		if missingOK && os.IsNotExist(err) {
			return Project{}, nil
		}
		return Project{}, err
	}
	var proj Project
	if err := yaml.Unmarshal(yamlBytes, &proj, yaml.DisallowUnknownFields); err != nil {
		return Project{}, fmt.Errorf("%s: %w", filename, err)
	}
	return proj, nil
}
