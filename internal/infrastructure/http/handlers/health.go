package handlers

import "net/http"

// HealthHandler serves /api/health. The store is in-process memory, so there
// is nothing external to probe; reachability is the whole check.
type HealthHandler struct{}

// NewHealthHandler creates the health handler.
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
