package wizard

import (
	"os"
	"os/exec"
	"path/filepath"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	D2Available   bool     // the d2 binary is on PATH
	ManifestFiles []string // inventory manifests found
	ComposeFiles  []string // compose files found
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error)  { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

// Detect scans the environment for known inventory sources.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	// The d2 binary enables auto-rendering of diagram output
	if _, err := d.LookPath("d2"); err == nil {
		result.D2Available = true
	}

	// Look for inventory manifests
	manifestPatterns := []string{
		"inventory.yml",
		"inventory.yaml",
		"inventory.jsonc",
		"inventory.json",
		"hosts.yml",
	}
	for _, pattern := range manifestPatterns {
		if _, err := d.Stat(pattern); err == nil {
			result.ManifestFiles = append(result.ManifestFiles, pattern)
		}
	}

	// Look for Docker Compose files
	composePatterns := []string{
		"docker-compose.yml",
		"docker-compose.yaml",
		"compose.yml",
		"compose.yaml",
	}
	for _, pattern := range composePatterns {
		if _, err := d.Stat(pattern); err == nil {
			result.ComposeFiles = append(result.ComposeFiles, pattern)
		}
	}

	return result
}
