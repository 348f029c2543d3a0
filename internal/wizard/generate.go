package wizard

import (
	"bytes"
	"text/template"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	// Inventory identity
	Network string

	// Sources to enable
	EnableManifest bool
	EnableCompose  bool

	// Manifest settings
	ManifestFiles []string

	// Compose settings
	ComposeFiles []ComposeFileEntry

	// Output settings
	Format       string // tree, d2
	Theme        string
	AutoRender   bool
	RenderFormat string // svg, png
}

// ComposeFileEntry is a compose file plus the host suffix for its services.
type ComposeFileEntry struct {
	Path string
	Host string
}

const configTemplate = `# invtree configuration

network: {{ .Network }}
format: {{ .Format }}
theme: {{ .Theme }}

sources:
{{- if .EnableManifest }}
  manifest:
    files:
{{- range .ManifestFiles }}
      - {{ . }}
{{- end }}
{{- end }}

{{- if .EnableCompose }}
  compose:
    files:
{{- range .ComposeFiles }}
      - path: {{ .Path }}
{{- if .Host }}
        host: {{ .Host }}
{{- end }}
{{- end }}
{{- end }}

render:
  auto_render: {{ if .AutoRender }}true{{ else }}false{{ end }}
  format: {{ .RenderFormat }}
`

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	// Set defaults
	if answers.Network == "" {
		answers.Network = "network"
	}
	if answers.Format == "" {
		answers.Format = "tree"
	}
	if answers.Theme == "" {
		answers.Theme = "default"
	}
	if answers.RenderFormat == "" {
		answers.RenderFormat = "svg"
	}

	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
