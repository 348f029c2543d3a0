package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anikeev/invtree/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestCollectorYAML(t *testing.T) {
	net := inventory.NewNetwork("MISIS network")

	mc := &ManifestCollector{
		Files: []string{"../../testdata/manifest/inventory.yml"},
	}

	err := mc.Collect(net)
	require.NoError(t, err)

	computers := net.Computers()
	require.Len(t, computers, 2)
	assert.Equal(t, "server1.misis.ru", computers[0].Name())
	assert.Equal(t, "server2.misis.ru", computers[1].Name())

	server1 := net.FindComputer("server1.misis.ru")
	require.NotNil(t, server1)
	require.Len(t, server1.Addresses(), 1)
	assert.Equal(t, "192.168.1.1", server1.Addresses()[0].String())

	comps := server1.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, "CPU, 4 cores @ 2500MHz", comps[0].Describe())
	assert.Equal(t, "Memory, 16000 MiB", comps[1].Describe())

	server2 := net.FindComputer("server2.misis.ru")
	require.NotNil(t, server2)
	comps = server2.Components()
	require.Len(t, comps, 2)

	disk, ok := comps[1].(*inventory.Disk)
	require.True(t, ok)
	assert.Equal(t, "HDD, 2000 GiB", disk.Describe())
	parts := disk.Partitions()
	require.Len(t, parts, 2)
	assert.Equal(t, "system", parts[0].Name)
	assert.Equal(t, "data", parts[1].Name)
}

func TestManifestCollectorJSONC(t *testing.T) {
	net := inventory.NewNetwork("lab")

	mc := &ManifestCollector{
		Files: []string{"../../testdata/manifest/inventory.jsonc"},
	}

	err := mc.Collect(net)
	require.NoError(t, err)

	build := net.FindComputer("build.lab")
	require.NotNil(t, build)
	assert.Len(t, build.Addresses(), 1)

	comps := build.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, "CPU, 16 cores @ 3600MHz", comps[0].Describe())
	assert.Equal(t, "Memory, 65536 MiB", comps[1].Describe())
	assert.Equal(t, "SSD, 1000 GiB", comps[2].Describe())
}

func TestManifestCollectorRejectsBadComponent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	manifest := `hosts:
  - name: host1
    components:
      - type: gpu
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	mc := &ManifestCollector{Files: []string{path}}
	err := mc.Collect(inventory.NewNetwork("lab"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown component type")
}

func TestManifestCollectorRejectsBadAddress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	manifest := `hosts:
  - name: host1
    addresses:
      - not-an-address
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	mc := &ManifestCollector{Files: []string{path}}
	err := mc.Collect(inventory.NewNetwork("lab"))
	require.Error(t, err)

	var verr *inventory.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestManifestCollectorRejectsOverflowingPartition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	manifest := `hosts:
  - name: host1
    components:
      - type: disk
        kind: ssd
        size: 100
        partitions:
          - size: 200
            name: too-big
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	mc := &ManifestCollector{Files: []string{path}}
	err := mc.Collect(inventory.NewNetwork("lab"))
	require.Error(t, err)

	var cerr *inventory.CapacityError
	assert.ErrorAs(t, err, &cerr)
}

func TestParseStorageKind(t *testing.T) {
	tests := []struct {
		input    string
		expected inventory.StorageKind
		valid    bool
	}{
		{"ssd", inventory.SSD, true},
		{"SSD", inventory.SSD, true},
		{"hdd", inventory.Magnetic, true},
		{"magnetic", inventory.Magnetic, true},
		{"tape", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := parseStorageKind(tt.input)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, kind)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestManifestValidate(t *testing.T) {
	mc := &ManifestCollector{
		Files: []string{"../../testdata/manifest/inventory.yml", "missing.yml"},
	}

	errs := mc.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "sources.manifest.files[1]", errs[0].Field)
	assert.Contains(t, errs[0].Message, "missing.yml")
}
