package httpservice

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"webadmin-core/internal/config/schema"
	"webadmin-core/internal/gate"
	"webadmin-core/internal/log"
)

// ResponseData is the uniform JSON response envelope
type ResponseData struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Authenticator is the standard authentication collaborator consulted
// when the local bypass gate denies a request. Session and OAuth
// handling live behind this interface; the gate never sees them.
type Authenticator interface {
	// Authenticate returns nil when the request carries valid
	// credentials
	Authenticate(r *http.Request) error
}

// AuthenticatorFunc adapts a function to the Authenticator interface
type AuthenticatorFunc func(r *http.Request) error

// Authenticate calls the wrapped function
func (f AuthenticatorFunc) Authenticate(r *http.Request) error {
	return f(r)
}

// loggingMiddleware records method, path and duration per request
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debugf("HTTP: %s %s - %s", r.Method, r.RequestURI, time.Since(start))
	})
}

// authMiddleware consults the local bypass gate first and falls through
// to the standard authenticator on deny. Gate decisions are logged for
// audit; the deny reason is never written to the response, since it
// reveals allowlist structure to unauthenticated callers.
func authMiddleware(cfg func() *schema.AdminConfig, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := gate.Evaluate(gateRequest(r), cfg())
			if decision.Allowed {
				log.WithFields(map[string]interface{}{
					"host":      decision.Host,
					"remote_ip": decision.RemoteIP,
				}).Debug("request allowed via local bypass")
				next.ServeHTTP(w, r)
				return
			}

			log.WithFields(map[string]interface{}{
				"host":      decision.Host,
				"remote_ip": decision.RemoteIP,
				"reason":    decision.Reason,
			}).Debug("local bypass denied, falling through to authentication")

			if auth == nil {
				respondError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if err := auth.Authenticate(r); err != nil {
				respondError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// gateRequest extracts the gate's input signals from an HTTP request:
// the Host header as received and the transport-level remote address
// with its port stripped
func gateRequest(r *http.Request) gate.Request {
	return gate.Request{
		HostHeader: r.Host,
		RemoteAddr: remoteIP(r.RemoteAddr),
	}
}

// remoteIP strips the port from a host:port remote address; a bare
// address is passed through untouched
func remoteIP(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// respondJSON writes a JSON success envelope
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ResponseData{
		Success: statusCode >= 200 && statusCode < 300,
		Data:    data,
	}
	json.NewEncoder(w).Encode(response)
}

// respondError writes a JSON error envelope
func respondError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ResponseData{
		Success: false,
		Error:   message,
	}
	json.NewEncoder(w).Encode(response)
}
