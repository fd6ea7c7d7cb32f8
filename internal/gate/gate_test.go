package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"webadmin-core/internal/config/schema"
)

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain host", "localhost", "localhost"},
		{"host with port", "localhost:3001", "localhost"},
		{"mixed case with port", "Example.COM:8080", "example.com"},
		{"padded", "  localhost  ", "localhost"},
		{"ipv6 bracketed with port", "[::1]:3001", "::1"},
		{"ipv6 bracketed without port", "[::1]", "::1"},
		{"ipv6 full literal", "[2001:db8::1]:443", "2001:db8::1"},
		{"ipv4 with port", "127.0.0.1:3001", "127.0.0.1"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHost(tt.in))
		})
	}
}

func TestNormalizeIP(t *testing.T) {
	assert.Equal(t, "::1", NormalizeIP(" ::1 "))
	assert.Equal(t, "2001:db8::a", NormalizeIP("2001:DB8::A"))
	assert.Equal(t, "", NormalizeIP(""))
}

func enabledConfig() *schema.AdminConfig {
	return &schema.AdminConfig{
		Enabled:           true,
		LocalAllowedHosts: []string{"localhost", "127.0.0.1", "::1"},
		LocalAllowedIPs:   []string{},
	}
}

func TestEvaluate_DisabledDominatesEverything(t *testing.T) {
	cfg := enabledConfig()
	cfg.Enabled = false
	cfg.LocalAllowedHosts = nil
	cfg.LocalAllowedIPs = nil

	decision := Evaluate(Request{HostHeader: "localhost", RemoteAddr: "127.0.0.1"}, cfg)

	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonDisabled, decision.Reason)
}

func TestEvaluate_NilConfigDenies(t *testing.T) {
	decision := Evaluate(Request{HostHeader: "localhost"}, nil)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonDisabled, decision.Reason)
}

func TestEvaluate_TrustProxyOverridesEmptyAllowlists(t *testing.T) {
	cfg := &schema.AdminConfig{Enabled: true, TrustProxy: true}

	for _, req := range []Request{
		{HostHeader: "localhost", RemoteAddr: "127.0.0.1"},
		{HostHeader: "evil.example.com", RemoteAddr: "203.0.113.9"},
		{},
	} {
		decision := Evaluate(req, cfg)
		assert.False(t, decision.Allowed)
		assert.Contains(t, decision.Reason, "trust proxy")
	}
}

func TestEvaluate_HostAllowlist(t *testing.T) {
	cfg := &schema.AdminConfig{
		Enabled:           true,
		LocalAllowedHosts: []string{"localhost"},
	}

	allowed := Evaluate(Request{HostHeader: "localhost:3001", RemoteAddr: "203.0.113.9"}, cfg)
	assert.True(t, allowed.Allowed, "any remote ip passes when the ip allowlist is empty")
	assert.Equal(t, ReasonAllowed, allowed.Reason)

	denied := Evaluate(Request{HostHeader: "example.com", RemoteAddr: "127.0.0.1"}, cfg)
	assert.False(t, denied.Allowed)
	assert.Contains(t, denied.Reason, "example.com")
	assert.Contains(t, denied.Reason, "not allowlisted")
}

func TestEvaluate_IPAllowlist(t *testing.T) {
	cfg := &schema.AdminConfig{
		Enabled:         true,
		LocalAllowedIPs: []string{"127.0.0.1", "::1"},
	}

	allowed := Evaluate(Request{HostHeader: "anything.example.com", RemoteAddr: "::1"}, cfg)
	assert.True(t, allowed.Allowed, "any host passes when the host allowlist is empty")

	denied := Evaluate(Request{HostHeader: "localhost", RemoteAddr: "203.0.113.9"}, cfg)
	assert.False(t, denied.Allowed)
	assert.Contains(t, denied.Reason, "203.0.113.9")
	assert.Contains(t, denied.Reason, "remote ip")
}

func TestEvaluate_HostRuleBeforeIPRule(t *testing.T) {
	cfg := &schema.AdminConfig{
		Enabled:           true,
		LocalAllowedHosts: []string{"localhost"},
		LocalAllowedIPs:   []string{"127.0.0.1"},
	}

	// Both rules would deny; the host rule fires first
	decision := Evaluate(Request{HostHeader: "example.com", RemoteAddr: "203.0.113.9"}, cfg)
	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "host")
}

func TestEvaluate_EmptyAllowlistsAllowEverything(t *testing.T) {
	cfg := &schema.AdminConfig{Enabled: true}

	decision := Evaluate(Request{HostHeader: "anything", RemoteAddr: "203.0.113.9"}, cfg)
	assert.True(t, decision.Allowed)
	assert.Equal(t, ReasonAllowed, decision.Reason)
}

func TestEvaluate_NormalizedSignalsInDecision(t *testing.T) {
	cfg := enabledConfig()

	decision := Evaluate(Request{HostHeader: "[::1]:3001", RemoteAddr: " ::1 "}, cfg)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "::1", decision.Host)
	assert.Equal(t, "::1", decision.RemoteIP)
}

func TestEvaluate_IPv6BracketMatchesAllowlist(t *testing.T) {
	cfg := &schema.AdminConfig{
		Enabled:           true,
		LocalAllowedHosts: []string{"::1"},
	}

	decision := Evaluate(Request{HostHeader: "[::1]:3001"}, cfg)
	assert.True(t, decision.Allowed)
}
