// Package gate decides whether an inbound request may bypass full
// authentication because it verifiably originates from a trusted local
// network path.
//
// The decision is an ordered, fail-closed rule chain over one request's
// host/IP signals and the resolved admin configuration. Evaluation is a
// pure function with no shared state, safe for unlimited concurrent
// use.
package gate

import (
	"fmt"
	"strings"

	"webadmin-core/internal/config/schema"
)

// Stable audit reasons for deny/allow outcomes. They are intended for
// audit and debug logging only and must never be shown to an
// unauthenticated caller, since they reveal allowlist structure.
const (
	ReasonDisabled   = "local bypass is disabled"
	ReasonTrustProxy = "trust proxy is enabled"
	ReasonAllowed    = "request matched local bypass host/ip allowlists"
)

// Request carries the per-request signals the gate evaluates: the Host
// header value and the transport-level remote address of the
// connection, before any proxy adjustment.
type Request struct {
	HostHeader string
	RemoteAddr string
}

// Decision is the outcome of one evaluation. It is owned solely by the
// caller and never cached or shared.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Reason   string `json:"reason"`
	Host     string `json:"host"`
	RemoteIP string `json:"remote_ip"`
}

// NormalizeHost lowers and trims a Host header value and strips any
// port suffix. An IPv6 literal wrapped in brackets, with an optional
// trailing port, yields the bare literal. Empty input yields "".
func NormalizeHost(host string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return ""
	}
	if strings.HasPrefix(h, "[") {
		if end := strings.Index(h, "]"); end >= 0 {
			return h[1:end]
		}
	}
	if i := strings.Index(h, ":"); i >= 0 {
		return h[:i]
	}
	return h
}

// NormalizeIP lowers and trims a remote address; empty input yields ""
func NormalizeIP(remoteAddr string) string {
	return strings.ToLower(strings.TrimSpace(remoteAddr))
}

// Evaluate applies the bypass rule chain to one request. The first
// matching deny rule determines the outcome; only when no deny rule
// matches is the request allowed.
//
// Rule order matters: trust-proxy denial precedes the allowlists, so a
// proxied deployment can never be opened up by a permissive (or empty)
// allowlist; client-supplied signals are simply not trustworthy there.
// An empty allowlist means no restriction on that dimension, not "deny
// everything".
func Evaluate(req Request, cfg *schema.AdminConfig) Decision {
	host := NormalizeHost(req.HostHeader)
	remoteIP := NormalizeIP(req.RemoteAddr)

	deny := func(reason string) Decision {
		return Decision{Allowed: false, Reason: reason, Host: host, RemoteIP: remoteIP}
	}

	if cfg == nil || !cfg.Enabled {
		return deny(ReasonDisabled)
	}
	if cfg.TrustProxy {
		return deny(ReasonTrustProxy)
	}
	if len(cfg.LocalAllowedHosts) > 0 && !contains(cfg.LocalAllowedHosts, host) {
		return deny(fmt.Sprintf("host %q is not allowlisted", host))
	}
	if len(cfg.LocalAllowedIPs) > 0 && !contains(cfg.LocalAllowedIPs, remoteIP) {
		return deny(fmt.Sprintf("remote ip %q is not allowlisted", remoteIP))
	}

	return Decision{Allowed: true, Reason: ReasonAllowed, Host: host, RemoteIP: remoteIP}
}

// contains performs exact-string matching on normalized values; no
// wildcard or CIDR matching is done
func contains(list []string, value string) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}
