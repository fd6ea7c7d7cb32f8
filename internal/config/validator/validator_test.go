package validator

import (
	"reflect"
	"strings"
	"testing"

	"webadmin-core/internal/config/schema"
)

func oauthConfig() *schema.AdminConfig {
	return &schema.AdminConfig{
		AuthMode:          schema.AuthModeOAuth,
		SessionSecret:     schema.Secret("session-secret"),
		OAuthClientID:     "client-id",
		OAuthClientSecret: schema.Secret("client-secret"),
		OAuthRedirectURI:  "https://example.com/callback",
	}
}

func TestValidate_LocalModeAlwaysValid(t *testing.T) {
	cfg := &schema.AdminConfig{AuthMode: schema.AuthModeLocal}

	result := Validate(cfg)
	if !result.Valid {
		t.Error("local mode should always be valid")
	}
	if len(result.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", result.Missing)
	}
}

func TestValidate_NilConfig(t *testing.T) {
	result := Validate(nil)
	if !result.Valid {
		t.Error("nil config should be valid")
	}
}

func TestValidate_OAuthComplete(t *testing.T) {
	result := Validate(oauthConfig())
	if !result.Valid {
		t.Errorf("complete oauth config should be valid, missing: %v", result.Missing)
	}
}

func TestValidate_OAuthMissingClientID(t *testing.T) {
	cfg := oauthConfig()
	cfg.OAuthClientID = ""

	result := Validate(cfg)
	if result.Valid {
		t.Error("config with empty client id should be invalid")
	}
	want := []string{FieldClientID}
	if !reflect.DeepEqual(result.Missing, want) {
		t.Errorf("Missing = %v, want %v", result.Missing, want)
	}
}

func TestValidate_OAuthAllMissing(t *testing.T) {
	cfg := &schema.AdminConfig{AuthMode: schema.AuthModeOAuth}

	result := Validate(cfg)
	if result.Valid {
		t.Error("empty oauth config should be invalid")
	}
	want := []string{FieldSessionSecret, FieldClientID, FieldClientSecret, FieldRedirectURI}
	if !reflect.DeepEqual(result.Missing, want) {
		t.Errorf("Missing = %v, want %v", result.Missing, want)
	}
}

func TestResult_Error(t *testing.T) {
	valid := Result{Valid: true, Missing: []string{}}
	if valid.Error() != "" {
		t.Error("valid result should have empty error string")
	}

	invalid := Result{Valid: false, Missing: []string{FieldClientID}}
	msg := invalid.Error()
	if msg == "" {
		t.Error("invalid result should have a non-empty error string")
	}
	if !strings.Contains(msg, FieldClientID) {
		t.Errorf("error %q should name the missing field", msg)
	}
}
