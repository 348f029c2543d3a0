package render

import (
	"fmt"
	"strings"

	"github.com/anikeev/invtree/internal/inventory"
)

// TreeRenderer renders the inventory as an indented ASCII tree in the style
// of the classic tree command.
type TreeRenderer struct{}

// lineContext is the ancestor state threaded by value into each recursive
// render call: the indentation accumulated so far, and whether the leading
// column of this subtree renders a continuation blank instead of a vertical
// bar (the ancestor was the last sibling).
type lineContext struct {
	prefix       string
	continuation bool
}

// child returns the context one nesting level deeper. The first level's
// leading column is taken by the bar/blank glyph, so the prefix grows by a
// single space there and by a full two-space unit below.
func (ctx lineContext) child(continuation bool) lineContext {
	prefix := ctx.prefix + "  "
	if ctx.prefix == "" {
		prefix = " "
	}
	return lineContext{prefix: prefix, continuation: continuation}
}

// writeLine emits one line of the tree: the leading bar/blank column when an
// ancestor prefix exists, the prefix, the branch glyph (`\-` for the last
// sibling, `+-` otherwise), the text, and a newline. Branchless lines (the
// network header) pass branch=false.
func writeLine(b *strings.Builder, ctx lineContext, isLast, branch bool, text string) {
	hasPrefix := ctx.prefix != ""
	if hasPrefix {
		if ctx.continuation {
			b.WriteByte(' ')
		} else {
			b.WriteByte('|')
		}
	}
	if branch || hasPrefix {
		b.WriteString(ctx.prefix)
		if isLast {
			b.WriteString(`\-`)
		} else {
			b.WriteString("+-")
		}
	}
	b.WriteString(text)
	b.WriteByte('\n')
}

// Render returns the full multi-line tree with trailing whitespace trimmed.
func (r *TreeRenderer) Render(net *inventory.Network) string {
	var b strings.Builder

	writeLine(&b, lineContext{}, false, false, "Network: "+net.Name())

	computers := net.Computers()
	for i, c := range computers {
		r.renderComputer(&b, c, i == len(computers)-1)
	}

	return strings.TrimRight(b.String(), " \n")
}

func (r *TreeRenderer) renderComputer(b *strings.Builder, c *inventory.Computer, isLast bool) {
	writeLine(b, lineContext{}, isLast, true, "Host: "+c.Name())

	// The computer's own last-ness feeds downward as its children's
	// continuation flag: the bar under a non-last host persists, the bar
	// under the last host becomes blank.
	ctx := lineContext{}.child(isLast)

	for _, addr := range c.Addresses() {
		writeLine(b, ctx, false, true, addr.String())
	}

	components := c.Components()
	for i, comp := range components {
		compLast := i == len(components)-1
		if disk, ok := comp.(*inventory.Disk); ok {
			r.renderDisk(b, ctx, disk, compLast)
		} else {
			writeLine(b, ctx, compLast, true, comp.Describe())
		}
	}
}

func (r *TreeRenderer) renderDisk(b *strings.Builder, ctx lineContext, d *inventory.Disk, isLast bool) {
	writeLine(b, ctx, isLast, true, d.Describe())

	pctx := ctx.child(ctx.continuation)
	partitions := d.Partitions()
	for i, p := range partitions {
		text := fmt.Sprintf("[%d]: %d GiB, %s", i, p.SizeGiB, p.Name)
		writeLine(b, pctx, i == len(partitions)-1, true, text)
	}
}
