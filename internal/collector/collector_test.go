package collector

import (
	"testing"

	"github.com/anikeev/invtree/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFromRawSources(t *testing.T) {
	cfg := &config.Config{
		Network: "MISIS network",
		RawSources: map[string]any{
			"manifest": map[string]any{
				"files": []any{"../../testdata/manifest/inventory.yml"},
			},
		},
	}

	net, results, err := Collect(cfg)
	require.NoError(t, err)
	require.NotNil(t, net)

	assert.Equal(t, "MISIS network", net.Name())
	assert.Len(t, net.Computers(), 2)

	var manifestRun, composeSkipped bool
	for _, r := range results {
		switch r.Name {
		case "Inventory Manifest":
			manifestRun = !r.Skipped && r.Err == nil
		case "Docker Compose":
			composeSkipped = r.Skipped
		}
	}
	assert.True(t, manifestRun, "manifest collector should have run")
	assert.True(t, composeSkipped, "compose collector should be skipped when unconfigured")
}

func TestCollectSurfacesCollectorError(t *testing.T) {
	cfg := &config.Config{
		Network: "lab",
		RawSources: map[string]any{
			"manifest": map[string]any{
				"files": []any{"does-not-exist.yml"},
			},
		},
	}

	_, _, err := Collect(cfg)
	require.Error(t, err)

	var cerr *CollectorError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Inventory Manifest", cerr.Collector)
}

func TestRegistryReturnsFreshInstances(t *testing.T) {
	first := All()
	second := All()
	require.NotEmpty(t, first)

	for i := range first {
		assert.NotSame(t, first[i], second[i])
	}
}
