package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anikeev/invtree/internal/collector"
	"github.com/anikeev/invtree/internal/config"
	"github.com/anikeev/invtree/internal/inventory"
	"github.com/anikeev/invtree/internal/render"
	"github.com/anikeev/invtree/internal/ui"
	"github.com/spf13/cobra"
)

var (
	networkName   string
	outputFile    string
	outputFormat  string
	themeName     string
	manifestFiles []string
	composeFiles  []string
	autoRender    bool
	renderFormat  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Build the inventory and render it",
	Long: `Collect the inventory from all configured sources, then render it as an
ASCII tree (default) or a D2 diagram.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&networkName, "network", "n", "", "network display name")
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path (default: stdout)")
	renderCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: tree, d2")
	renderCmd.Flags().StringVar(&themeName, "theme", "", "color theme for d2: default, dark, monochrome")
	renderCmd.Flags().StringSliceVar(&manifestFiles, "manifest", nil, "inventory manifest files (YAML or JSONC)")
	renderCmd.Flags().StringSliceVar(&composeFiles, "compose-file", nil, "compose files (format: path:host)")
	renderCmd.Flags().BoolVar(&autoRender, "render", false, "auto-render d2 output to an image (requires d2)")
	renderCmd.Flags().StringVar(&renderFormat, "render-format", "", "image format for --render: svg, png (default: svg)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'invtree init' to create a config file"))
		return err
	}

	applyFlagOverrides(cfg)

	fmt.Fprintln(os.Stderr, ui.Bold("Collecting inventory..."))

	net, results, err := collector.Collect(cfg)

	for _, r := range results {
		if r.Skipped {
			ui.SourceSkipped(r.Name)
		} else if r.Err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError(r.Name+" failed", r.Err.Error(), ""))
		} else {
			ui.SourceDone(r.Name, r.Detail)
		}
	}

	if err != nil {
		return err
	}

	output := render.New(cfg.Format, cfg.Theme).Render(net)

	if cfg.Output == "" {
		fmt.Println(output)
		return nil
	}

	if err := os.WriteFile(cfg.Output, []byte(output), 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write output", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Generated %s (%d hosts, %d components)", cfg.Output, len(net.Computers()), countComponents(net)))

	// Auto-render if requested; only d2 output can be turned into an image
	if cfg.Render.AutoRender && cfg.Format == "d2" {
		if err := autoRenderD2(cfg.Output, cfg.Render.Format); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Auto-render failed", err.Error(), "install d2: https://d2lang.com/tour/install"))
		}
	}

	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if networkName != "" {
		cfg.Network = networkName
	}
	if outputFile != "" {
		cfg.Output = outputFile
	}
	if outputFormat != "" {
		cfg.Format = outputFormat
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if autoRender {
		cfg.Render.AutoRender = true
	}
	if renderFormat != "" {
		cfg.Render.Format = renderFormat
	}

	if cfg.RawSources == nil {
		cfg.RawSources = map[string]any{}
	}

	// Sources run off the raw config sections, so flag values merge there.
	if len(manifestFiles) > 0 {
		section, _ := cfg.RawSources["manifest"].(map[string]any)
		if section == nil {
			section = map[string]any{}
		}
		files, _ := section["files"].([]any)
		for _, f := range manifestFiles {
			files = append(files, f)
		}
		section["files"] = files
		cfg.RawSources["manifest"] = section
	}

	if len(composeFiles) > 0 {
		section, _ := cfg.RawSources["compose"].(map[string]any)
		if section == nil {
			section = map[string]any{}
		}
		files, _ := section["files"].([]any)
		for _, pair := range composeFiles {
			parts := splitColonPair(pair)
			files = append(files, map[string]any{
				"path": parts[0],
				"host": parts[1],
			})
		}
		section["files"] = files
		cfg.RawSources["compose"] = section
	}
}

// splitColonPair splits "path:host" on the last colon, so paths containing
// colons keep working.
func splitColonPair(s string) [2]string {
	if i := strings.LastIndex(s, ":"); i >= 0 {
		return [2]string{s[:i], s[i+1:]}
	}
	return [2]string{s, ""}
}

func countComponents(net *inventory.Network) int {
	count := 0
	for _, c := range net.Computers() {
		count += len(c.Components())
	}
	return count
}

func autoRenderD2(d2File, format string) error {
	if format == "" {
		format = "svg"
	}

	d2Path, err := findExecutable("d2")
	if err != nil {
		return fmt.Errorf("d2 not found in PATH")
	}

	outFile := strings.TrimSuffix(d2File, ".d2") + "." + format

	cmd := execCommand(d2Path, d2File, outFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("d2 render failed: %w", err)
	}

	ui.Success(fmt.Sprintf("Rendered %s", outFile))
	return nil
}
