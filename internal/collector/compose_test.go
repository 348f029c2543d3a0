package collector

import (
	"testing"

	"github.com/anikeev/invtree/internal/config"
	"github.com/anikeev/invtree/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeCollector(t *testing.T) {
	net := inventory.NewNetwork("lab")

	cc := &ComposeCollector{
		Files: []config.ComposeFile{
			{Path: "../../testdata/compose/docker-compose.yml", Host: "misis.ru"},
		},
	}

	err := cc.Collect(net)
	require.NoError(t, err)

	computers := net.Computers()
	require.Len(t, computers, 2)
	// Services map in sorted name order.
	assert.Equal(t, "db.misis.ru", computers[0].Name())
	assert.Equal(t, "web.misis.ru", computers[1].Name())

	db := net.FindComputer("db.misis.ru")
	require.NotNil(t, db)
	require.Len(t, db.Addresses(), 1)
	assert.Equal(t, "10.5.0.10", db.Addresses()[0].String())

	comps := db.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, "CPU, 2 cores @ 2400MHz", comps[0].Describe())
	assert.Equal(t, "Memory, 512 MiB", comps[1].Describe())

	web := net.FindComputer("web.misis.ru")
	require.NotNil(t, web)
	comps = web.Components()
	require.Len(t, comps, 2)
	// Fractional CPU quotas round up to whole cores.
	assert.Equal(t, "CPU, 1 cores @ 2400MHz", comps[0].Describe())
	assert.Equal(t, "Memory, 256 MiB", comps[1].Describe())
}

func TestComposeCollectorWithoutHostSuffix(t *testing.T) {
	net := inventory.NewNetwork("lab")

	cc := &ComposeCollector{
		Files: []config.ComposeFile{
			{Path: "../../testdata/compose/docker-compose.yml"},
		},
	}

	require.NoError(t, cc.Collect(net))
	assert.NotNil(t, net.FindComputer("db"))
	assert.NotNil(t, net.FindComputer("web"))
}

func TestHostName(t *testing.T) {
	assert.Equal(t, "db.misis.ru", hostName("db", "misis.ru"))
	assert.Equal(t, "db", hostName("db", ""))
}

func TestParseMemoryBytes(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"512M", 512 * 1024 * 1024},
		{"512MB", 512 * 1024 * 1024},
		{"2G", 2 * 1024 * 1024 * 1024},
		{"1024K", 1024 * 1024},
		{"100", 100},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseMemoryBytes(tt.input))
		})
	}
}

func TestComposeValidate(t *testing.T) {
	cc := &ComposeCollector{
		Files: []config.ComposeFile{
			{Path: "nope/docker-compose.yml", Host: "h"},
		},
	}

	errs := cc.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "sources.compose.files[0]", errs[0].Field)
}

func TestComposeFallbackParse(t *testing.T) {
	net := inventory.NewNetwork("lab")

	cc := &ComposeCollector{}
	err := cc.parseFallback(net, "../../testdata/compose/docker-compose.yml", "misis.ru")
	require.NoError(t, err)

	db := net.FindComputer("db.misis.ru")
	require.NotNil(t, db)
	require.Len(t, db.Components(), 2)
	assert.Equal(t, "CPU, 2 cores @ 2400MHz", db.Components()[0].Describe())
}
