package render

import "github.com/anikeev/invtree/internal/inventory"

const terrastruct = "https://icons.terrastruct.com"

// componentIcons maps component kinds to icon URLs.
var componentIcons = map[string]string{
	"host":   terrastruct + "/tech%2F022-computer.svg",
	"cpu":    terrastruct + "/tech%2Fcpu.svg",
	"memory": terrastruct + "/tech%2Fram.svg",
	"disk":   terrastruct + "/tech%2Fstorage.svg",
}

// LookupComponentIcon returns the icon URL for a component, or "" when the
// kind has no icon.
func LookupComponentIcon(comp inventory.Component) string {
	return componentIcons[elementKind(comp)]
}

// LookupHostIcon returns the icon URL used for host nodes.
func LookupHostIcon() string {
	return componentIcons["host"]
}

// elementKind maps a component to its theme/icon key.
func elementKind(comp inventory.Component) string {
	switch comp.(type) {
	case *inventory.CPU:
		return "cpu"
	case *inventory.Memory:
		return "memory"
	case *inventory.Disk:
		return "disk"
	default:
		return ""
	}
}
