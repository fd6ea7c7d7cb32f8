// Package config provides the admin configuration lifecycle: sources
// are merged into a raw map, the resolver produces an immutable
// AdminConfig, and reloads publish a new instance wholesale so
// concurrent readers never observe a partially-updated configuration.
package config

import (
	"sort"
	"sync"

	"webadmin-core/internal/config/resolver"
	"webadmin-core/internal/config/schema"
	"webadmin-core/internal/config/source"
	"webadmin-core/internal/config/validator"
	"webadmin-core/internal/log"
)

// ManagerOptions contains configuration manager options
type ManagerOptions struct {
	// ConfigFile is the path to a YAML configuration file (optional)
	ConfigFile string

	// EnvPrefix overrides the environment variable prefix
	// (default: WEB_ADMIN)
	EnvPrefix string

	// EnableDotEnv enables .env file loading
	EnableDotEnv bool

	// AppEnv selects environment-specific .env files
	// (e.g. production loads .env.production)
	AppEnv string
}

// Manager owns the resolved configuration snapshot
type Manager struct {
	opts ManagerOptions

	mu  sync.RWMutex
	cfg *schema.AdminConfig

	onChangeMu sync.Mutex
	onChange   []func(*schema.AdminConfig)
}

// NewManager creates a configuration Manager. Call Load before Get.
func NewManager(opts ManagerOptions) *Manager {
	if opts.EnvPrefix == "" {
		opts.EnvPrefix = source.DefaultEnvPrefix
	}
	return &Manager{opts: opts}
}

// Load merges all sources in priority order, resolves the result and
// publishes it as the current snapshot. Resolution never fails; only a
// source-level I/O or parse problem produces an error, in which case
// the previous snapshot (if any) stays in place.
func (m *Manager) Load() error {
	sources := []source.Source{
		source.NewYAMLSource(m.opts.ConfigFile),
		source.NewEnvSource(m.opts.EnvPrefix),
	}
	if m.opts.EnableDotEnv {
		sources = append(sources, source.NewDotEnvSource(nil, m.opts.AppEnv))
	}
	sort.Sort(source.ByPriority(sources))

	raw := make(resolver.Raw)
	for _, s := range sources {
		if err := s.LoadInto(raw); err != nil {
			log.WithError(err).Errorf("config source %s failed", s.Name())
			return err
		}
	}

	cfg := resolver.Resolve(raw)

	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()

	if cfg.Permissive() {
		log.Warn("local bypass is enabled with empty host and ip allowlists and no trusted proxy; every request will be treated as locally trusted")
	}
	log.WithFields(map[string]interface{}{
		"enabled":   cfg.Enabled,
		"auth_mode": cfg.AuthMode,
		"port":      cfg.Port,
	}).Info("admin configuration loaded")

	return nil
}

// Reload re-runs Load and notifies onChange subscribers with the new
// snapshot. The swap is atomic: readers hold either the old or the new
// AdminConfig, never a mix.
func (m *Manager) Reload() error {
	if err := m.Load(); err != nil {
		return err
	}

	cfg := m.Get()
	m.onChangeMu.Lock()
	callbacks := make([]func(*schema.AdminConfig), len(m.onChange))
	copy(callbacks, m.onChange)
	m.onChangeMu.Unlock()

	for _, fn := range callbacks {
		fn(cfg)
	}
	return nil
}

// Get returns the current configuration snapshot. The returned value
// must be treated as immutable.
func (m *Manager) Get() *schema.AdminConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// OnChange registers a callback invoked after each successful Reload
func (m *Manager) OnChange(fn func(*schema.AdminConfig)) {
	m.onChangeMu.Lock()
	defer m.onChangeMu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// Validate checks the current snapshot for the fields its auth mode
// requires
func (m *Manager) Validate() validator.Result {
	return validator.Validate(m.Get())
}
