// Package schema defines the resolved admin configuration types
package schema

// AuthMode selects how the admin console authenticates operators
type AuthMode string

const (
	// AuthModeLocal uses the local session authenticator
	AuthModeLocal AuthMode = "local"
	// AuthModeOAuth uses the Discord OAuth flow
	AuthModeOAuth AuthMode = "oauth"
)

// AdminConfig is the fully resolved admin-surface configuration.
// It is immutable once produced; a reload publishes a new instance
// wholesale and never mutates a live one.
type AdminConfig struct {
	Enabled         bool   `yaml:"enabled" json:"enabled"`
	BaseURL         string `yaml:"base_url" json:"base_url"`
	Port            int    `yaml:"port" json:"port"`
	SessionTTLHours int    `yaml:"session_ttl_hours" json:"session_ttl_hours"`

	// TrustProxy marks deployments behind a reverse proxy, where
	// client-supplied host/IP signals are not usable for bypass decisions
	TrustProxy bool     `yaml:"trust_proxy" json:"trust_proxy"`
	AuthMode   AuthMode `yaml:"auth_mode" json:"auth_mode"`

	SessionSecret        Secret `yaml:"session_secret" json:"session_secret"`
	OAuthClientID        string `yaml:"oauth_client_id" json:"oauth_client_id"`
	OAuthClientSecret    Secret `yaml:"oauth_client_secret" json:"oauth_client_secret"`
	OAuthRedirectURI     string `yaml:"oauth_redirect_uri" json:"oauth_redirect_uri"`
	OAuthScopes          string `yaml:"oauth_scopes" json:"oauth_scopes"`
	BotInviteRedirectURI string `yaml:"bot_invite_redirect_uri" json:"bot_invite_redirect_uri"`

	SecurityStrict bool `yaml:"security_strict" json:"security_strict"`

	AuthRateLimitWindowMs     int `yaml:"auth_rate_limit_window_ms" json:"auth_rate_limit_window_ms"`
	AuthRateLimitMax          int `yaml:"auth_rate_limit_max" json:"auth_rate_limit_max"`
	MutationRateLimitWindowMs int `yaml:"mutation_rate_limit_window_ms" json:"mutation_rate_limit_window_ms"`
	MutationRateLimitMax      int `yaml:"mutation_rate_limit_max" json:"mutation_rate_limit_max"`

	// LocalAllowedHosts and LocalAllowedIPs restrict the local bypass;
	// an empty list means no restriction on that dimension
	LocalAllowedHosts []string `yaml:"local_allowed_hosts" json:"local_allowed_hosts"`
	LocalAllowedIPs   []string `yaml:"local_allowed_ips" json:"local_allowed_ips"`

	AllowedRoleIDs []string `yaml:"allowed_role_ids" json:"allowed_role_ids"`
}

// Permissive reports whether the local bypass is enabled with no host
// or IP restriction and no proxy in front, i.e. every request reaching
// the gate is treated as locally trusted. Hosts should warn operators
// when this is the effective configuration.
func (c *AdminConfig) Permissive() bool {
	return c.Enabled && !c.TrustProxy &&
		len(c.LocalAllowedHosts) == 0 && len(c.LocalAllowedIPs) == 0
}
