package freqdist_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/freqdist"
)

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	m, err := freqdist.LoadManifest(testdata("manifest.yaml"))
	require.NoError(t, err)

	// relative entries resolve against the manifest's directory
	assert.Equal(t, filepath.Join("testdata", "weighted.first"), m.FirstMale)
	assert.Equal(t, filepath.Join("testdata", "uniform.first"), m.FirstFemale)
	assert.Equal(t, filepath.Join("testdata", "weighted.first"), m.Last)
}

func TestLoadManifest_Incomplete(t *testing.T) {
	t.Parallel()

	_, err := freqdist.LoadManifest(testdata("manifest_incomplete.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, freqdist.ErrManifest)
}

func TestLoadManifest_Missing(t *testing.T) {
	t.Parallel()

	_, err := freqdist.LoadManifest(testdata("no-such-manifest.yaml"))
	assert.ErrorIs(t, err, freqdist.ErrManifest)
}

func TestManifest_Validate(t *testing.T) {
	t.Parallel()

	valid := freqdist.Manifest{FirstMale: "a", FirstFemale: "b", Last: "c"}
	assert.NoError(t, valid.Validate())

	for name, m := range map[string]freqdist.Manifest{
		"missing first_male":   {FirstFemale: "b", Last: "c"},
		"missing first_female": {FirstMale: "a", Last: "c"},
		"missing last":         {FirstMale: "a", FirstFemale: "b"},
	} {
		assert.ErrorIs(t, m.Validate(), freqdist.ErrManifest, name)
	}
}
