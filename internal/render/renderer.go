package render

import (
	"github.com/anikeev/invtree/internal/inventory"
)

// Renderer defines the interface for inventory output formats.
type Renderer interface {
	Render(net *inventory.Network) string
}

// New returns the renderer for a format name. Unknown formats fall back to
// the ASCII tree.
func New(format, theme string) Renderer {
	if format == "d2" {
		return &D2Renderer{Theme: theme}
	}
	return &TreeRenderer{}
}

// RenderTree renders the inventory as an indented ASCII tree.
func RenderTree(net *inventory.Network) string {
	r := &TreeRenderer{}
	return r.Render(net)
}
