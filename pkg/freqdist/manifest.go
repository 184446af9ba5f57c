package freqdist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest names the distribution files for each name category. Relative
// paths are resolved against the manifest's own directory so a dataset stays
// relocatable as one unit.
type Manifest struct {
	FirstMale   string `yaml:"first_male"`
	FirstFemale string `yaml:"first_female"`
	Last        string `yaml:"last"`
}

// LoadManifest reads a YAML manifest from path.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest

	raw, err := os.ReadFile(path)
	if err != nil {
		return m, errors.Join(ErrManifest, err)
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return m, errors.Join(ErrManifest, err)
	}

	base := filepath.Dir(path)
	m.FirstMale = resolve(base, m.FirstMale)
	m.FirstFemale = resolve(base, m.FirstFemale)
	m.Last = resolve(base, m.Last)

	if err := m.Validate(); err != nil {
		return m, err
	}
	return m, nil
}

// Validate checks that all three categories are present.
func (m Manifest) Validate() error {
	switch {
	case m.FirstMale == "":
		return fmt.Errorf("%w: missing first_male source", ErrManifest)
	case m.FirstFemale == "":
		return fmt.Errorf("%w: missing first_female source", ErrManifest)
	case m.Last == "":
		return fmt.Errorf("%w: missing last source", ErrManifest)
	}
	return nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
