// Package validator checks a resolved AdminConfig for completeness.
// Resolution itself never fails; validation reports what is missing and
// leaves the decision to abort startup to the caller.
package validator

import (
	"fmt"
	"strings"

	"webadmin-core/internal/config/schema"
)

// Stable identifiers for required OAuth fields, suitable for direct
// display to an operator
const (
	FieldSessionSecret = "WEB_ADMIN_SESSION_SECRET"
	FieldClientID      = "WEB_ADMIN_DISCORD_CLIENT_ID"
	FieldClientSecret  = "WEB_ADMIN_DISCORD_CLIENT_SECRET"
	FieldRedirectURI   = "WEB_ADMIN_DISCORD_REDIRECT_URI"
)

// Result is the outcome of validating an AdminConfig
type Result struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

// Error returns a formatted message for an invalid result, empty
// otherwise
func (r Result) Error() string {
	if r.Valid {
		return ""
	}
	return fmt.Sprintf("admin configuration is missing required fields: %s",
		strings.Join(r.Missing, ", "))
}

// Validate checks that every field required by the configured auth mode
// is present. In local mode the configuration is always valid. The
// config is never mutated.
func Validate(cfg *schema.AdminConfig) Result {
	result := Result{Valid: true, Missing: []string{}}
	if cfg == nil || cfg.AuthMode != schema.AuthModeOAuth {
		return result
	}

	if cfg.SessionSecret.IsEmpty() {
		result.Missing = append(result.Missing, FieldSessionSecret)
	}
	if cfg.OAuthClientID == "" {
		result.Missing = append(result.Missing, FieldClientID)
	}
	if cfg.OAuthClientSecret.IsEmpty() {
		result.Missing = append(result.Missing, FieldClientSecret)
	}
	if cfg.OAuthRedirectURI == "" {
		result.Missing = append(result.Missing, FieldRedirectURI)
	}

	result.Valid = len(result.Missing) == 0
	return result
}
