package api

import (
	"net/http"

	"github.com/seenimoa/finscope/internal/config"
)

// handleGetConfig returns the running configuration with credentials masked.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    redactConfig(s.cfg),
	})
}

// handleGetSecrets returns the status of every credential.
func (s *Server) handleGetSecrets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    config.CheckSecrets(s.cfg),
	})
}

// redactConfig returns a copy of cfg safe to expose over HTTP.
func redactConfig(cfg *config.Config) config.Config {
	out := *cfg
	for _, st := range config.CheckSecrets(cfg) {
		if st.Name == "Database URL" {
			out.Store.DatabaseURL = st.Masked
		}
	}
	return out
}
