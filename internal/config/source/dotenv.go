package source

import (
	"os"
	"path/filepath"
	"strings"

	"webadmin-core/internal/config/resolver"
	"webadmin-core/internal/log"
)

// DotEnvSource loads .env files into the process environment so the
// env source picks their values up. Variables already present in the
// environment are never overridden.
type DotEnvSource struct {
	dirs   []string
	appEnv string
}

// NewDotEnvSource creates a new DotEnvSource searching the given
// directories
func NewDotEnvSource(dirs []string, appEnv string) *DotEnvSource {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	return &DotEnvSource{dirs: dirs, appEnv: appEnv}
}

// Name returns the source name
func (s *DotEnvSource) Name() string {
	return "dotenv"
}

// Priority returns the source priority
func (s *DotEnvSource) Priority() int {
	return PriorityDotEnv
}

// LoadInto loads .env files into the process environment. The raw map
// is untouched here; the higher-priority env source reads the values.
func (s *DotEnvSource) LoadInto(raw resolver.Raw) error {
	files := []string{".env", ".env.local"}
	if s.appEnv != "" {
		files = append(files, ".env."+s.appEnv, ".env."+s.appEnv+".local")
	}

	for _, dir := range s.dirs {
		for _, file := range files {
			path := filepath.Join(dir, file)
			if err := s.loadEnvFile(path); err != nil {
				log.Debugf("skipping env file %s: %v", path, err)
			}
		}
	}

	return nil
}

func (s *DotEnvSource) loadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}

		// Real environment variables win over .env files
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				log.Warnf("failed to set %s from %s: %v", key, path, err)
			}
		}
	}

	log.Debugf("loaded env file: %s", path)
	return nil
}

// parseEnvLine parses a KEY=value line, stripping surrounding quotes
func parseEnvLine(line string) (key, value string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	if key == "" {
		return "", "", false
	}
	return key, value, true
}
