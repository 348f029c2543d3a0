package collector

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/anikeev/invtree/internal/config"
	"github.com/anikeev/invtree/internal/inventory"
	"github.com/anikeev/invtree/internal/util"
	"github.com/compose-spec/compose-go/v2/cli"
	composetypes "github.com/compose-spec/compose-go/v2/types"
	yamlv3 "gopkg.in/yaml.v3"
)

func init() {
	Register(func() RegisteredCollector { return &ComposeCollector{} })
}

// defaultClockMHz is assumed for CPU components derived from compose
// resource limits; compose files carry core quotas but no clock speed.
const defaultClockMHz = 2400

// ComposeCollector maps docker-compose services to inventory hosts. Each
// service becomes a computer; CPU and memory components come from
// deploy.resources.limits, addresses from static ipv4_address assignments.
type ComposeCollector struct {
	Files []config.ComposeFile
}

func (cc *ComposeCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "compose",
		DisplayName: "Docker Compose",
		Description: "Derives hosts and components from docker-compose files",
		ConfigKey:   "compose",
		DetectHint:  "docker-compose.yml",
	}
}

func (cc *ComposeCollector) Enabled(sources map[string]any) bool {
	section, ok := sources["compose"].(map[string]any)
	if !ok {
		return false
	}
	if files, ok := section["files"].([]any); ok && len(files) > 0 {
		return true
	}
	return false
}

func (cc *ComposeCollector) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if filesRaw, ok := section["files"].([]any); ok {
		for _, item := range filesRaw {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			cf := config.ComposeFile{}
			if v, ok := m["path"].(string); ok {
				cf.Path = v
			}
			if v, ok := m["host"].(string); ok {
				cf.Host = v
			}
			cc.Files = append(cc.Files, cf)
		}
	}
	return nil
}

func (cc *ComposeCollector) Validate() []ValidationError {
	var errs []ValidationError
	for i, f := range cc.Files {
		path := util.ExpandPath(f.Path)
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, ValidationError{
				Field:      fmt.Sprintf("sources.compose.files[%d]", i),
				Message:    fmt.Sprintf("file not found: %s", f.Path),
				Suggestion: "check the path or remove this entry",
			})
		}
	}
	return errs
}

func (cc *ComposeCollector) Collect(net *inventory.Network) error {
	for _, f := range cc.Files {
		path := util.ExpandPath(f.Path)
		if err := cc.parseComposeFile(net, path, f.Host); err != nil {
			return fmt.Errorf("parsing compose file %s: %w", f.Path, err)
		}
	}
	return nil
}

func (cc *ComposeCollector) parseComposeFile(net *inventory.Network, path, host string) error {
	ctx := context.Background()

	opts, err := cli.NewProjectOptions(
		[]string{path},
		cli.WithDotEnv,
		cli.WithInterpolation(false),
	)
	if err != nil {
		return fmt.Errorf("project options: %w", err)
	}

	project, err := cli.ProjectFromOptions(ctx, opts)
	if err != nil {
		// Fallback: try manual YAML parse
		return cc.parseFallback(net, path, host)
	}

	return cc.projectToHosts(net, project, host)
}

func (cc *ComposeCollector) projectToHosts(net *inventory.Network, project *composetypes.Project, host string) error {
	// Compose services decode into a map; sort names so the inventory
	// order is stable.
	names := make([]string, 0, len(project.Services))
	for name := range project.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		svc := project.Services[name]
		c := ensureComputer(net, hostName(name, host))

		for _, addr := range serviceAddresses(svc) {
			if err := c.AddAddress(addr); err != nil {
				return fmt.Errorf("service %s: %w", name, err)
			}
		}

		cores, memMiB := serviceLimits(svc)
		if cores > 0 {
			c.AddComponent(inventory.NewCPU(cores, defaultClockMHz))
		}
		if memMiB > 0 {
			c.AddComponent(inventory.NewMemory(memMiB))
		}
	}

	return nil
}

// serviceAddresses returns the statically assigned IPv4 addresses of a
// service in deterministic (network name) order.
func serviceAddresses(svc composetypes.ServiceConfig) []string {
	netNames := make([]string, 0, len(svc.Networks))
	for name := range svc.Networks {
		netNames = append(netNames, name)
	}
	sort.Strings(netNames)

	var addrs []string
	for _, name := range netNames {
		netCfg := svc.Networks[name]
		if netCfg != nil && netCfg.Ipv4Address != "" {
			addrs = append(addrs, netCfg.Ipv4Address)
		}
	}
	return addrs
}

func serviceLimits(svc composetypes.ServiceConfig) (cores, memMiB int) {
	if svc.Deploy == nil || svc.Deploy.Resources.Limits == nil {
		return 0, 0
	}
	limits := svc.Deploy.Resources.Limits
	if limits.NanoCPUs > 0 {
		cores = int(math.Ceil(float64(limits.NanoCPUs)))
	}
	if limits.MemoryBytes > 0 {
		memMiB = int(int64(limits.MemoryBytes) / (1024 * 1024))
	}
	return cores, memMiB
}

// parseFallback uses raw YAML parsing when compose-go rejects the file.
func (cc *ComposeCollector) parseFallback(net *inventory.Network, path, host string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]any
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("yaml parse: %w", err)
	}

	servicesMap, ok := raw["services"].(map[string]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(servicesMap))
	for name := range servicesMap {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		svcMap, ok := servicesMap[name].(map[string]any)
		if !ok {
			continue
		}
		c := ensureComputer(net, hostName(name, host))

		for _, addr := range rawAddresses(svcMap["networks"]) {
			if err := c.AddAddress(addr); err != nil {
				return fmt.Errorf("service %s: %w", name, err)
			}
		}

		cores, memMiB := rawLimits(svcMap["deploy"])
		if cores > 0 {
			c.AddComponent(inventory.NewCPU(cores, defaultClockMHz))
		}
		if memMiB > 0 {
			c.AddComponent(inventory.NewMemory(memMiB))
		}
	}

	return nil
}

// hostName derives the computer name for a compose service. A configured
// host acts as the domain suffix, e.g. service "db" on host "misis.ru"
// becomes "db.misis.ru".
func hostName(service, host string) string {
	if host == "" {
		return service
	}
	return service + "." + host
}

func rawAddresses(networksRaw any) []string {
	netsMap, ok := networksRaw.(map[string]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(netsMap))
	for name := range netsMap {
		names = append(names, name)
	}
	sort.Strings(names)

	var addrs []string
	for _, name := range names {
		netMap, ok := netsMap[name].(map[string]any)
		if !ok {
			continue
		}
		if addr, ok := netMap["ipv4_address"].(string); ok && addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

func rawLimits(deployRaw any) (cores, memMiB int) {
	deployMap, ok := deployRaw.(map[string]any)
	if !ok {
		return 0, 0
	}
	resources, ok := deployMap["resources"].(map[string]any)
	if !ok {
		return 0, 0
	}
	limits, ok := resources["limits"].(map[string]any)
	if !ok {
		return 0, 0
	}

	if cpus := fmt.Sprintf("%v", limits["cpus"]); cpus != "<nil>" {
		if quota, err := strconv.ParseFloat(strings.Trim(cpus, `"`), 64); err == nil && quota > 0 {
			cores = int(math.Ceil(quota))
		}
	}
	if mem, ok := limits["memory"].(string); ok {
		if bytes := parseMemoryBytes(mem); bytes > 0 {
			memMiB = int(bytes / (1024 * 1024))
		}
	}
	return cores, memMiB
}

// parseMemoryBytes parses compose memory strings like "512M" or "2G".
func parseMemoryBytes(s string) int64 {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0
	}

	s = strings.TrimSuffix(s, "B")
	multiplier := int64(1)
	switch {
	case strings.HasSuffix(s, "G"):
		multiplier = 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "G")
	case strings.HasSuffix(s, "M"):
		multiplier = 1024 * 1024
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		multiplier = 1024
		s = strings.TrimSuffix(s, "K")
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return value * multiplier
}
