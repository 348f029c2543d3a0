package render

// Theme defines colors for the element kinds of a D2 inventory diagram.
type Theme struct {
	Name   string
	Colors map[string]ThemeColor
}

// ThemeColor defines fill and stroke colors for an element kind.
type ThemeColor struct {
	Fill   string
	Stroke string
	Font   string
}

var themes = map[string]*Theme{
	"default": {
		Name: "default",
		Colors: map[string]ThemeColor{
			"network":   {Fill: "#EFF6FF", Stroke: "#2563EB", Font: "#1E40AF"},
			"host":      {Fill: "#F9FAFB", Stroke: "#6B7280", Font: "#374151"},
			"address":   {Fill: "#FEF9C3", Stroke: "#CA8A04", Font: "#854D0E"},
			"cpu":       {Fill: "#FEE2E2", Stroke: "#DC2626", Font: "#991B1B"},
			"memory":    {Fill: "#DCFCE7", Stroke: "#16A34A", Font: "#166534"},
			"disk":      {Fill: "#EDE9FE", Stroke: "#7C3AED", Font: "#5B21B6"},
			"partition": {Fill: "#F3F4F6", Stroke: "#9CA3AF", Font: "#4B5563"},
		},
	},
	"dark": {
		Name: "dark",
		Colors: map[string]ThemeColor{
			"network":   {Fill: "#1E3A5F", Stroke: "#3B82F6", Font: "#93C5FD"},
			"host":      {Fill: "#1F2937", Stroke: "#9CA3AF", Font: "#D1D5DB"},
			"address":   {Fill: "#422006", Stroke: "#EAB308", Font: "#FDE047"},
			"cpu":       {Fill: "#450A0A", Stroke: "#EF4444", Font: "#FCA5A5"},
			"memory":    {Fill: "#052E16", Stroke: "#22C55E", Font: "#86EFAC"},
			"disk":      {Fill: "#2E1065", Stroke: "#A78BFA", Font: "#C4B5FD"},
			"partition": {Fill: "#111827", Stroke: "#6B7280", Font: "#9CA3AF"},
		},
	},
	"monochrome": {
		Name: "monochrome",
		Colors: map[string]ThemeColor{
			"network":   {Fill: "#F9FAFB", Stroke: "#374151", Font: "#111827"},
			"host":      {Fill: "#F3F4F6", Stroke: "#6B7280", Font: "#374151"},
			"address":   {Fill: "#F9FAFB", Stroke: "#9CA3AF", Font: "#4B5563"},
			"cpu":       {Fill: "#E5E7EB", Stroke: "#4B5563", Font: "#1F2937"},
			"memory":    {Fill: "#E5E7EB", Stroke: "#6B7280", Font: "#374151"},
			"disk":      {Fill: "#D1D5DB", Stroke: "#374151", Font: "#111827"},
			"partition": {Fill: "#F3F4F6", Stroke: "#9CA3AF", Font: "#6B7280"},
		},
	},
}

// ThemeNames returns all available theme names.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// GetTheme returns the named theme or the default.
func GetTheme(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// ColorForElement returns the theme color for a named element kind.
func (t *Theme) ColorForElement(name string) ThemeColor {
	if c, ok := t.Colors[name]; ok {
		return c
	}
	return ThemeColor{Fill: "#F9FAFB", Stroke: "#D1D5DB", Font: "#111827"}
}
