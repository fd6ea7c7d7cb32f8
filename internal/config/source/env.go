package source

import (
	"os"

	"webadmin-core/internal/config/resolver"
)

// DefaultEnvPrefix is the prefix for admin environment variables
const DefaultEnvPrefix = "WEB_ADMIN"

// envKeys maps environment variable suffixes to raw admin config keys.
// Values are stored as strings; the resolver handles coercion.
var envKeys = map[string]string{
	"ENABLED":                       "enabled",
	"BASE_URL":                      "baseUrl",
	"PORT":                          "port",
	"SESSION_TTL_HOURS":             "sessionTtlHours",
	"TRUST_PROXY":                   "trustProxy",
	"AUTH_MODE":                     "authMode",
	"SESSION_SECRET":                "sessionSecret",
	"DISCORD_CLIENT_ID":             "oauthClientId",
	"DISCORD_CLIENT_SECRET":         "oauthClientSecret",
	"DISCORD_REDIRECT_URI":          "oauthRedirectUri",
	"OAUTH_SCOPES":                  "oauthScopes",
	"BOT_INVITE_REDIRECT_URI":       "botInviteRedirectUri",
	"SECURITY_STRICT":               "securityStrict",
	"AUTH_RATE_LIMIT_WINDOW_MS":     "authRateLimitWindowMs",
	"AUTH_RATE_LIMIT_MAX":           "authRateLimitMax",
	"MUTATION_RATE_LIMIT_WINDOW_MS": "mutationRateLimitWindowMs",
	"MUTATION_RATE_LIMIT_MAX":       "mutationRateLimitMax",
	"LOCAL_ALLOWED_HOSTS":           "localAllowedHosts",
	"LOCAL_ALLOWED_IPS":             "localAllowedIps",
	"ALLOWED_ROLE_IDS":              "allowedRoleIds",
}

// EnvSource loads raw configuration from environment variables
type EnvSource struct {
	prefix string
}

// NewEnvSource creates a new EnvSource with the specified prefix
func NewEnvSource(prefix string) *EnvSource {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	return &EnvSource{prefix: prefix}
}

// Name returns the source name
func (s *EnvSource) Name() string {
	return "env"
}

// Priority returns the source priority
func (s *EnvSource) Priority() int {
	return PriorityEnv
}

// LoadInto merges environment variables into the raw configuration
func (s *EnvSource) LoadInto(raw resolver.Raw) error {
	for suffix, key := range envKeys {
		if v := os.Getenv(s.prefix + "_" + suffix); v != "" {
			setKey(raw, "admin", key, v)
		}
	}

	// Legacy command-UI role list, consulted by the resolver only when
	// the admin-specific variable is unset
	if v := os.Getenv("COMMAND_UI_ALLOWED_ROLE_IDS"); v != "" {
		setKey(raw, "commandUi", "allowedRoleIds", v)
	}

	return nil
}
