package render

import (
	"fmt"
	"strings"

	"github.com/anikeev/invtree/internal/inventory"
	"github.com/anikeev/invtree/internal/util"
)

// D2Renderer generates D2 diagram text for an inventory.
type D2Renderer struct {
	Theme string // theme name, see theme.go
}

// Render returns a D2 document with the network as the outer container,
// one node per host, and component nodes nested inside each host.
func (r *D2Renderer) Render(net *inventory.Network) string {
	theme := GetTheme(r.Theme)
	var b strings.Builder

	b.WriteString("direction: right\n\n")

	netColor := theme.ColorForElement("network")
	fmt.Fprintf(&b, "network: %s {\n", util.Quote("Network: "+net.Name()))
	fmt.Fprintf(&b, "  style.fill: %q\n", netColor.Fill)
	fmt.Fprintf(&b, "  style.stroke: %q\n", netColor.Stroke)
	b.WriteString("\n")

	for _, c := range net.Computers() {
		r.renderComputer(&b, c, theme, "  ")
	}

	b.WriteString("}\n")

	return b.String()
}

func (r *D2Renderer) renderComputer(b *strings.Builder, c *inventory.Computer, theme *Theme, indent string) {
	id := util.SanitizeID(c.Name())
	hostColor := theme.ColorForElement("host")

	fmt.Fprintf(b, "%s%s: %s {\n", indent, id, util.Quote(c.Name()))
	fmt.Fprintf(b, "%s  style.fill: %q\n", indent, hostColor.Fill)
	fmt.Fprintf(b, "%s  style.stroke: %q\n", indent, hostColor.Stroke)
	if icon := LookupHostIcon(); icon != "" {
		fmt.Fprintf(b, "%s  icon: %s\n", indent, icon)
	}

	addrColor := theme.ColorForElement("address")
	for i, addr := range c.Addresses() {
		fmt.Fprintf(b, "%s  addr-%d: %s {\n", indent, i, util.Quote(addr.String()))
		fmt.Fprintf(b, "%s    style.fill: %q\n", indent, addrColor.Fill)
		fmt.Fprintf(b, "%s    style.stroke: %q\n", indent, addrColor.Stroke)
		fmt.Fprintf(b, "%s  }\n", indent)
	}

	for i, comp := range c.Components() {
		r.renderComponent(b, comp, i, theme, indent+"  ")
	}

	fmt.Fprintf(b, "%s}\n", indent)
}

func (r *D2Renderer) renderComponent(b *strings.Builder, comp inventory.Component, index int, theme *Theme, indent string) {
	kind := elementKind(comp)
	id := fmt.Sprintf("%s-%d", kind, index)
	color := theme.ColorForElement(kind)

	fmt.Fprintf(b, "%s%s: %s {\n", indent, id, util.Quote(comp.Describe()))
	if disk, ok := comp.(*inventory.Disk); ok {
		fmt.Fprintf(b, "%s  shape: cylinder\n", indent)
		fmt.Fprintf(b, "%s  style.fill: %q\n", indent, color.Fill)
		fmt.Fprintf(b, "%s  style.stroke: %q\n", indent, color.Stroke)
		partColor := theme.ColorForElement("partition")
		for i, p := range disk.Partitions() {
			label := fmt.Sprintf("[%d]: %d GiB, %s", i, p.SizeGiB, p.Name)
			fmt.Fprintf(b, "%s  part-%d: %s {\n", indent, i, util.Quote(label))
			fmt.Fprintf(b, "%s    style.fill: %q\n", indent, partColor.Fill)
			fmt.Fprintf(b, "%s    style.stroke: %q\n", indent, partColor.Stroke)
			fmt.Fprintf(b, "%s  }\n", indent)
		}
	} else {
		fmt.Fprintf(b, "%s  style.fill: %q\n", indent, color.Fill)
		fmt.Fprintf(b, "%s  style.stroke: %q\n", indent, color.Stroke)
		if icon := LookupComponentIcon(comp); icon != "" {
			fmt.Fprintf(b, "%s  icon: %s\n", indent, icon)
		}
	}
	fmt.Fprintf(b, "%s}\n", indent)
}
