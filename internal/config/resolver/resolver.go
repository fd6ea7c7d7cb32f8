// Package resolver turns a raw, loosely-typed configuration map into a
// fully resolved AdminConfig. Resolution never fails: malformed values
// degrade to their documented fallback, because crashing at startup on
// a config typo is worse than a safe default.
package resolver

import (
	"math"
	"strconv"
	"strings"

	"webadmin-core/internal/config/schema"
)

// Raw is the untyped nested configuration structure assembled by the
// configuration sources (environment, .env files, YAML)
type Raw = map[string]any

// Defaults applied when a field is absent or unparseable
const (
	DefaultPort             = 3000
	DefaultSessionTTLHours  = 24
	DefaultAuthWindowMs     = 60000
	DefaultAuthMax          = 10
	DefaultMutationWindowMs = 60000
	DefaultMutationMax      = 60
	DefaultOAuthScopes      = "identify guilds"
)

// DefaultLocalHosts is the host allowlist applied when none is configured
func DefaultLocalHosts() []string {
	return []string{"localhost", "127.0.0.1", "::1"}
}

// Bool coerces a raw value into a bool. Accepted inputs are boolean
// literals and the case-insensitive strings "true"/"false"; anything
// else, including absence, yields the fallback.
func Bool(raw any, fallback bool) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return fallback
}

// Int coerces a raw value into an integer. Strings are parsed base-10;
// non-numeric input yields the fallback.
func Int(raw any, fallback int) int {
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

// String coerces a raw value into a string; non-string input yields the
// fallback
func String(raw any, fallback string) string {
	if v, ok := raw.(string); ok {
		return v
	}
	return fallback
}

// StringList coerces a raw value into a list of trimmed, non-empty
// strings. It accepts either a sequence or a single comma-separated
// string. When nothing usable remains the fallback is returned
// verbatim, so "explicitly empty" and "not configured" are only
// distinguishable by the caller supplying a non-empty fallback.
func StringList(raw any, fallback []string) []string {
	var entries []string

	switch v := raw.(type) {
	case []string:
		entries = appendTrimmed(nil, v...)
	case []any:
		for _, item := range v {
			if s, ok := scalarString(item); ok {
				entries = appendTrimmed(entries, s)
			}
		}
	case string:
		entries = appendTrimmed(nil, strings.Split(v, ",")...)
	}

	if len(entries) == 0 {
		return fallback
	}
	return entries
}

func appendTrimmed(dst []string, values ...string) []string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			dst = append(dst, t)
		}
	}
	return dst
}

// scalarString renders a scalar raw value as a string. YAML parses
// unquoted role IDs as integers, so numeric scalars are accepted.
func scalarString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10), true
		}
	}
	return "", false
}

// BaseURL strips all trailing slashes; empty or non-string input yields
// an empty string
func BaseURL(raw any) string {
	v, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimRight(strings.TrimSpace(v), "/")
}

// Mode resolves the authentication mode. Only an exact (trimmed,
// lower-cased) "oauth" selects OAuth; every other input coerces to
// local.
func Mode(raw any) schema.AuthMode {
	if v, ok := raw.(string); ok {
		if strings.ToLower(strings.TrimSpace(v)) == string(schema.AuthModeOAuth) {
			return schema.AuthModeOAuth
		}
	}
	return schema.AuthModeLocal
}

// Resolve builds a complete AdminConfig from the raw configuration map.
// It is a pure function: no I/O, no side effects, and the same input
// always yields the same output. It never fails.
func Resolve(raw Raw) *schema.AdminConfig {
	admin := section(raw, "admin")
	legacy := section(raw, "commandUi")

	cfg := &schema.AdminConfig{
		Enabled:         Bool(admin["enabled"], false),
		BaseURL:         BaseURL(admin["baseUrl"]),
		Port:            Int(admin["port"], DefaultPort),
		SessionTTLHours: Int(admin["sessionTtlHours"], DefaultSessionTTLHours),
		TrustProxy:      Bool(admin["trustProxy"], false),
		AuthMode:        Mode(admin["authMode"]),

		SessionSecret:        schema.Secret(String(admin["sessionSecret"], "")),
		OAuthClientID:        String(admin["oauthClientId"], ""),
		OAuthClientSecret:    schema.Secret(String(admin["oauthClientSecret"], "")),
		OAuthRedirectURI:     String(admin["oauthRedirectUri"], ""),
		OAuthScopes:          String(admin["oauthScopes"], DefaultOAuthScopes),
		BotInviteRedirectURI: String(admin["botInviteRedirectUri"], ""),

		SecurityStrict: Bool(admin["securityStrict"], false),

		AuthRateLimitWindowMs:     Int(admin["authRateLimitWindowMs"], DefaultAuthWindowMs),
		AuthRateLimitMax:          Int(admin["authRateLimitMax"], DefaultAuthMax),
		MutationRateLimitWindowMs: Int(admin["mutationRateLimitWindowMs"], DefaultMutationWindowMs),
		MutationRateLimitMax:      Int(admin["mutationRateLimitMax"], DefaultMutationMax),

		LocalAllowedHosts: StringList(admin["localAllowedHosts"], DefaultLocalHosts()),
		LocalAllowedIPs:   StringList(admin["localAllowedIps"], []string{}),
	}

	// Ordered two-source lookup: the admin-specific field wins, the
	// legacy commandUi field fills in when it is not set
	roles := StringList(admin["allowedRoleIds"], nil)
	if roles == nil {
		roles = StringList(legacy["allowedRoleIds"], []string{})
	}
	cfg.AllowedRoleIDs = roles

	return cfg
}

// section returns a nested map by key; a missing or mistyped section
// behaves like an empty one
func section(raw Raw, key string) Raw {
	if raw == nil {
		return nil
	}
	m, _ := raw[key].(map[string]any)
	return m
}
