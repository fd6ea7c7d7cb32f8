package source

import (
	"os"
	"testing"

	"webadmin-core/internal/config/resolver"
)

func TestEnvSource_Name(t *testing.T) {
	s := NewEnvSource("WEB_ADMIN")
	if s.Name() != "env" {
		t.Errorf("Name() = %q, want %q", s.Name(), "env")
	}
}

func TestEnvSource_Priority(t *testing.T) {
	s := NewEnvSource("WEB_ADMIN")
	if s.Priority() != PriorityEnv {
		t.Errorf("Priority() = %d, want %d", s.Priority(), PriorityEnv)
	}
}

func TestEnvSource_LoadInto(t *testing.T) {
	t.Setenv("WEB_ADMIN_ENABLED", "true")
	t.Setenv("WEB_ADMIN_PORT", "3001")
	t.Setenv("WEB_ADMIN_LOCAL_ALLOWED_HOSTS", "localhost,::1")
	t.Setenv("WEB_ADMIN_DISCORD_CLIENT_ID", "client-id")

	raw := make(resolver.Raw)
	s := NewEnvSource("WEB_ADMIN")
	if err := s.LoadInto(raw); err != nil {
		t.Fatalf("LoadInto() error = %v", err)
	}

	admin, ok := raw["admin"].(map[string]any)
	if !ok {
		t.Fatal("admin section missing from raw config")
	}
	if admin["enabled"] != "true" {
		t.Errorf("enabled = %v, want %q", admin["enabled"], "true")
	}
	if admin["port"] != "3001" {
		t.Errorf("port = %v, want %q", admin["port"], "3001")
	}
	if admin["localAllowedHosts"] != "localhost,::1" {
		t.Errorf("localAllowedHosts = %v", admin["localAllowedHosts"])
	}
	if admin["oauthClientId"] != "client-id" {
		t.Errorf("oauthClientId = %v", admin["oauthClientId"])
	}
}

func TestEnvSource_UnsetVariablesLeaveRawUntouched(t *testing.T) {
	os.Unsetenv("WEB_ADMIN_ENABLED")

	raw := make(resolver.Raw)
	s := NewEnvSource("WEB_ADMIN")
	if err := s.LoadInto(raw); err != nil {
		t.Fatalf("LoadInto() error = %v", err)
	}

	if admin, ok := raw["admin"].(map[string]any); ok {
		if _, present := admin["enabled"]; present {
			t.Error("enabled should not be set when the variable is unset")
		}
	}
}

func TestEnvSource_LegacyRoleIDs(t *testing.T) {
	t.Setenv("COMMAND_UI_ALLOWED_ROLE_IDS", "123,456")

	raw := make(resolver.Raw)
	s := NewEnvSource("WEB_ADMIN")
	if err := s.LoadInto(raw); err != nil {
		t.Fatalf("LoadInto() error = %v", err)
	}

	legacy, ok := raw["commandUi"].(map[string]any)
	if !ok {
		t.Fatal("commandUi section missing from raw config")
	}
	if legacy["allowedRoleIds"] != "123,456" {
		t.Errorf("allowedRoleIds = %v, want %q", legacy["allowedRoleIds"], "123,456")
	}
}

func TestEnvSource_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_PORT", "9999")

	raw := make(resolver.Raw)
	s := NewEnvSource("MYAPP")
	if err := s.LoadInto(raw); err != nil {
		t.Fatalf("LoadInto() error = %v", err)
	}

	admin, ok := raw["admin"].(map[string]any)
	if !ok {
		t.Fatal("admin section missing from raw config")
	}
	if admin["port"] != "9999" {
		t.Errorf("port = %v, want %q", admin["port"], "9999")
	}
}
