package render

import (
	"strings"
	"testing"

	"github.com/anikeev/invtree/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestD2RendererBasic(t *testing.T) {
	n := misisNetwork(t)

	r := &D2Renderer{Theme: "default"}
	output := r.Render(n)

	assert.Contains(t, output, "direction: right")
	assert.Contains(t, output, `network: "Network: MISIS network"`)
	assert.Contains(t, output, `server1-misis-ru: "server1.misis.ru"`)
	assert.Contains(t, output, `server2-misis-ru: "server2.misis.ru"`)
	assert.Contains(t, output, `addr-0: "192.168.1.1"`)
	assert.Contains(t, output, `cpu-0: "CPU, 4 cores @ 2500MHz"`)
	assert.Contains(t, output, `memory-1: "Memory, 16000 MiB"`)
	assert.Contains(t, output, `disk-1: "HDD, 2000 GiB"`)
	assert.Contains(t, output, "shape: cylinder")
	assert.Contains(t, output, `part-0: "[0]: 500 GiB, system"`)
	assert.Contains(t, output, `part-1: "[1]: 1500 GiB, data"`)
}

func TestD2RendererHostOrder(t *testing.T) {
	n := misisNetwork(t)

	output := (&D2Renderer{}).Render(n)

	first := strings.Index(output, "server1-misis-ru")
	second := strings.Index(output, "server2-misis-ru")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestD2RendererThemeFallback(t *testing.T) {
	n := inventory.NewNetwork("lab")

	output := (&D2Renderer{Theme: "no-such-theme"}).Render(n)

	defaultNet := GetTheme("default").ColorForElement("network")
	assert.Contains(t, output, defaultNet.Fill)
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "dark", GetTheme("dark").Name)
	assert.Equal(t, "default", GetTheme("unknown").Name)
	assert.Contains(t, ThemeNames(), "monochrome")
}
