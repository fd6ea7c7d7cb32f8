package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"webadmin-core/internal/config/resolver"
)

// YAMLSource loads raw configuration from YAML files
type YAMLSource struct {
	paths []string
}

// NewYAMLSource creates a new YAMLSource with the specified file paths.
// Files are merged in order, with later files overriding earlier ones;
// non-existent files are skipped silently.
func NewYAMLSource(paths ...string) *YAMLSource {
	return &YAMLSource{paths: paths}
}

// Name returns the source name
func (s *YAMLSource) Name() string {
	return "yaml"
}

// Priority returns the source priority
func (s *YAMLSource) Priority() int {
	return PriorityYAML
}

// LoadInto merges YAML files into the raw configuration
func (s *YAMLSource) LoadInto(raw resolver.Raw) error {
	for _, path := range s.paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file %q: %w", path, err)
		}

		var parsed map[string]any
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("failed to parse YAML file %q: %w", path, err)
		}

		mergeRaw(raw, parsed)
	}

	return nil
}

// mergeRaw deep-merges src into dst, recursing into nested sections so
// a file can override single keys without clobbering whole sections
func mergeRaw(dst resolver.Raw, src map[string]any) {
	for key, value := range src {
		srcSec, srcIsMap := value.(map[string]any)
		dstSec, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeRaw(dstSec, srcSec)
			continue
		}
		dst[key] = value
	}
}
