package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anikeev/invtree/internal/inventory"
	"github.com/anikeev/invtree/internal/util"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(func() RegisteredCollector { return &ManifestCollector{} })
}

// ManifestCollector reads declarative inventory manifests. Manifests are
// YAML by default; .json and .jsonc files are accepted as JSON with
// comments.
type ManifestCollector struct {
	Files []string
}

// manifestDoc mirrors the manifest file layout. Component entries are a
// tagged union keyed by "type" so insertion order survives decoding.
type manifestDoc struct {
	Hosts []manifestHost `yaml:"hosts"`
}

type manifestHost struct {
	Name       string              `yaml:"name"`
	Addresses  []string            `yaml:"addresses"`
	Components []manifestComponent `yaml:"components"`
}

type manifestComponent struct {
	Type       string              `yaml:"type"` // cpu, memory, disk
	Cores      int                 `yaml:"cores"`
	MHz        int                 `yaml:"mhz"`
	Size       int                 `yaml:"size"` // MiB for memory, GiB for disk
	Kind       string              `yaml:"kind"` // ssd, hdd
	Partitions []manifestPartition `yaml:"partitions"`
}

type manifestPartition struct {
	Size int    `yaml:"size"`
	Name string `yaml:"name"`
}

func (mc *ManifestCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "manifest",
		DisplayName: "Inventory Manifest",
		Description: "Reads hosts and components from YAML or JSONC manifests",
		ConfigKey:   "manifest",
		DetectHint:  "inventory.yml",
	}
}

func (mc *ManifestCollector) Enabled(sources map[string]any) bool {
	section, ok := sources["manifest"].(map[string]any)
	if !ok {
		return false
	}
	if files, ok := section["files"].([]any); ok && len(files) > 0 {
		return true
	}
	return false
}

func (mc *ManifestCollector) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if filesRaw, ok := section["files"].([]any); ok {
		for _, item := range filesRaw {
			if path, ok := item.(string); ok {
				mc.Files = append(mc.Files, path)
			}
		}
	}
	return nil
}

func (mc *ManifestCollector) Validate() []ValidationError {
	var errs []ValidationError
	for i, f := range mc.Files {
		path := util.ExpandPath(f)
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, ValidationError{
				Field:      fmt.Sprintf("sources.manifest.files[%d]", i),
				Message:    fmt.Sprintf("file not found: %s", f),
				Suggestion: "check the path or remove this entry",
			})
		}
	}
	return errs
}

func (mc *ManifestCollector) Collect(net *inventory.Network) error {
	for _, f := range mc.Files {
		path := util.ExpandPath(f)
		if err := mc.parseManifest(net, path); err != nil {
			return fmt.Errorf("parsing manifest %s: %w", f, err)
		}
	}
	return nil
}

func (mc *ManifestCollector) parseManifest(net *inventory.Network, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// JSONC manifests are stripped to plain JSON, which the YAML decoder
	// accepts as-is.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("yaml parse: %w", err)
	}

	for _, host := range doc.Hosts {
		if host.Name == "" {
			return fmt.Errorf("host entry without a name")
		}
		c := ensureComputer(net, host.Name)

		for _, addr := range host.Addresses {
			if err := c.AddAddress(addr); err != nil {
				return fmt.Errorf("host %s: %w", host.Name, err)
			}
		}

		for _, entry := range host.Components {
			comp, err := buildComponent(entry)
			if err != nil {
				return fmt.Errorf("host %s: %w", host.Name, err)
			}
			c.AddComponent(comp)
		}
	}

	return nil
}

func buildComponent(entry manifestComponent) (inventory.Component, error) {
	switch strings.ToLower(entry.Type) {
	case "cpu":
		return inventory.NewCPU(entry.Cores, entry.MHz), nil
	case "memory":
		return inventory.NewMemory(entry.Size), nil
	case "disk":
		kind, err := parseStorageKind(entry.Kind)
		if err != nil {
			return nil, err
		}
		disk, err := inventory.NewDisk(kind, entry.Size)
		if err != nil {
			return nil, err
		}
		for _, p := range entry.Partitions {
			if err := disk.AddPartition(p.Size, p.Name); err != nil {
				return nil, fmt.Errorf("disk partition %q: %w", p.Name, err)
			}
		}
		return disk, nil
	default:
		return nil, fmt.Errorf("unknown component type %q", entry.Type)
	}
}

func parseStorageKind(kind string) (inventory.StorageKind, error) {
	switch strings.ToLower(kind) {
	case "ssd":
		return inventory.SSD, nil
	case "hdd", "magnetic":
		return inventory.Magnetic, nil
	default:
		return 0, fmt.Errorf("unknown disk kind %q (use ssd or hdd)", kind)
	}
}
