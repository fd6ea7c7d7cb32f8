package httpservice

import (
	"net/http"

	"webadmin-core/internal/gate"
	"webadmin-core/internal/log"
)

// statusResponse is the public shape of GET /api/admin/status
type statusResponse struct {
	Enabled    bool   `json:"enabled"`
	AuthMode   string `json:"auth_mode"`
	TrustProxy bool   `json:"trust_proxy"`
	Permissive bool   `json:"permissive"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	cfg := s.manager.Get()
	respondJSON(w, http.StatusOK, statusResponse{
		Enabled:    cfg.Enabled,
		AuthMode:   string(cfg.AuthMode),
		TrustProxy: cfg.TrustProxy,
		Permissive: cfg.Permissive(),
	})
}

// handleConfig returns the resolved configuration. Secrets are masked
// by their marshaller, never exposed raw.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.manager.Get())
}

// handleGatePreview evaluates the bypass rule chain against
// operator-supplied host/ip signals without touching the live request's
// own signals. Useful when debugging an allowlist.
func (s *Server) handleGatePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	decision := gate.Evaluate(gate.Request{
		HostHeader: q.Get("host"),
		RemoteAddr: q.Get("ip"),
	}, s.manager.Get())
	respondJSON(w, http.StatusOK, decision)
}

// handleReload re-resolves configuration from all sources and swaps the
// snapshot atomically
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.Reload(); err != nil {
		log.WithError(err).Error("configuration reload failed")
		respondError(w, http.StatusInternalServerError, "reload failed")
		return
	}

	result := s.manager.Validate()
	if !result.Valid {
		// The new snapshot is live regardless; report what is missing
		// so the operator can fix it
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"reloaded": true,
			"valid":    false,
			"missing":  result.Missing,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"valid":    true,
	})
}
