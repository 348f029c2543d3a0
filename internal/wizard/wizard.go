package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		Network:      "network",
		Format:       "tree",
		Theme:        "default",
		RenderFormat: "svg",
	}

	// Build detection summary
	var hints []string
	if len(detection.ManifestFiles) > 0 {
		hints = append(hints, fmt.Sprintf("Inventory manifests found: %s", strings.Join(detection.ManifestFiles, ", ")))
	}
	if len(detection.ComposeFiles) > 0 {
		hints = append(hints, fmt.Sprintf("Compose files found: %s", strings.Join(detection.ComposeFiles, ", ")))
	}
	if detection.D2Available {
		hints = append(hints, "d2 binary detected (diagram auto-render available)")
	}

	// Pre-select detected sources
	var preSelected []string
	if len(detection.ManifestFiles) > 0 {
		preSelected = append(preSelected, "manifest")
	}
	if len(detection.ComposeFiles) > 0 {
		preSelected = append(preSelected, "compose")
	}

	// Step 1: identity and source selection
	var selectedSources []string

	desc := "Select the sources to build your inventory from."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	sourceForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Network name").
				Description("Shown as the root of the rendered tree").
				Value(&answers.Network),
			huh.NewMultiSelect[string]().
				Title("Which sources do you want to enable?").
				Description(desc).
				Options(
					huh.NewOption("Inventory Manifest", "manifest").Selected(contains(preSelected, "manifest")),
					huh.NewOption("Docker Compose", "compose").Selected(contains(preSelected, "compose")),
				).
				Value(&selectedSources),
		),
	)

	if err := sourceForm.Run(); err != nil {
		return nil, err
	}

	answers.EnableManifest = contains(selectedSources, "manifest")
	answers.EnableCompose = contains(selectedSources, "compose")

	// Step 2: source-specific config
	var groups []*huh.Group

	if answers.EnableManifest {
		manifestPath := "./inventory.yml"
		if len(detection.ManifestFiles) > 0 {
			manifestPath = detection.ManifestFiles[0]
		}

		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Manifest path").
				Description("YAML or JSONC inventory manifest").
				Value(&manifestPath),
		))

		defer func() {
			if manifestPath != "" {
				answers.ManifestFiles = append(answers.ManifestFiles, manifestPath)
			}
		}()
	}

	if answers.EnableCompose {
		var composePath string
		var composeHost string
		if len(detection.ComposeFiles) > 0 {
			composePath = detection.ComposeFiles[0]
		}

		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Compose file path").
				Value(&composePath),
			huh.NewInput().
				Title("Host suffix for these services (optional)").
				Description("e.g. misis.ru turns service db into db.misis.ru").
				Value(&composeHost),
		))

		defer func() {
			if composePath != "" {
				answers.ComposeFiles = append(answers.ComposeFiles, ComposeFileEntry{
					Path: composePath, Host: composeHost,
				})
			}
		}()
	}

	// Step 3: output options
	outputGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Output format").
			Options(
				huh.NewOption("ASCII tree", "tree"),
				huh.NewOption("D2 diagram", "d2"),
			).
			Value(&answers.Format),
		huh.NewSelect[string]().
			Title("Theme (D2 output)").
			Options(
				huh.NewOption("Default", "default"),
				huh.NewOption("Dark", "dark"),
				huh.NewOption("Monochrome", "monochrome"),
			).
			Value(&answers.Theme),
	)
	groups = append(groups, outputGroup)

	if detection.D2Available {
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title("Auto-render D2 output to SVG?").
				Value(&answers.AutoRender),
		))
	}

	if len(groups) > 0 {
		form := huh.NewForm(groups...)
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return answers, nil
}

func contains(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
