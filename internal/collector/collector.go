// Package collector builds the inventory network from declarative sources.
// Sources register themselves through the registry; the orchestrator runs
// every enabled source against one shared network.
package collector

import (
	"github.com/anikeev/invtree/internal/config"
	"github.com/anikeev/invtree/internal/inventory"
)

// CollectResult holds the result of a single collector run.
type CollectResult struct {
	Name    string
	Skipped bool
	Detail  string
	Err     error
}

// Collect runs all registered collectors and returns the assembled network.
func Collect(cfg *config.Config) (*inventory.Network, []CollectResult, error) {
	net := inventory.NewNetwork(cfg.Network)
	rawSources := cfg.RawSources

	var results []CollectResult

	for _, c := range All() {
		meta := c.Metadata()

		if !c.Enabled(rawSources) {
			results = append(results, CollectResult{Name: meta.DisplayName, Skipped: true})
			continue
		}

		// Extract this collector's config section
		section, _ := rawSources[meta.ConfigKey].(map[string]any)
		if err := c.Configure(section); err != nil {
			cerr := &CollectorError{Collector: meta.DisplayName, Err: err}
			results = append(results, CollectResult{Name: meta.DisplayName, Err: cerr})
			return nil, results, cerr
		}

		if err := c.Collect(net); err != nil {
			cerr := &CollectorError{Collector: meta.DisplayName, Err: err}
			results = append(results, CollectResult{Name: meta.DisplayName, Err: cerr})
			return nil, results, cerr
		}

		results = append(results, CollectResult{Name: meta.DisplayName})
	}

	return net, results, nil
}

// ensureComputer returns the named computer, creating and appending it when
// it does not exist yet. Sources that describe the same host contribute to
// one entry.
func ensureComputer(net *inventory.Network, name string) *inventory.Computer {
	if c := net.FindComputer(name); c != nil {
		return c
	}
	c := inventory.NewComputer(name)
	net.AddComputer(c)
	return c
}
