package config

import "github.com/spf13/viper"

type Config struct {
	Network    string       `mapstructure:"network"` // display name of the inventory network
	Output     string       `mapstructure:"output"`  // output file path, "" means stdout
	Format     string       `mapstructure:"format"`  // tree, d2
	Theme      string       `mapstructure:"theme"`
	Sources    Sources      `mapstructure:"sources"`
	Render     RenderConfig `mapstructure:"render"`
	RawSources map[string]any
}

type Sources struct {
	Manifest ManifestSource `mapstructure:"manifest"`
	Compose  ComposeSource  `mapstructure:"compose"`
}

// ManifestSource points at declarative inventory manifests (YAML, or JSON
// with comments).
type ManifestSource struct {
	Files []string `mapstructure:"files"`
}

type ComposeSource struct {
	Files []ComposeFile `mapstructure:"files"`
}

// ComposeFile maps a docker-compose file to the host its services run on.
type ComposeFile struct {
	Path string `mapstructure:"path"`
	Host string `mapstructure:"host"`
}

type RenderConfig struct {
	AutoRender bool   `mapstructure:"auto_render"` // render d2 output to an image via the d2 binary
	Format     string `mapstructure:"format"`      // svg, png
}

func Load() (*Config, error) {
	cfg := &Config{
		Network: "network",
		Format:  "tree",
		Theme:   "default",
	}
	cfg.Render.Format = "svg"

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Populate RawSources for the registry-based orchestrator
	cfg.RawSources = viper.GetStringMap("sources")

	return cfg, nil
}
