package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mubarek-tria/CIEt/internal/application/dashboard"
)

// DashboardHandler handles /api/dashboard. Admin-only (gated in the router).
type DashboardHandler struct {
	summarize *dashboard.Summarize
	log       zerolog.Logger
}

// NewDashboardHandler creates the dashboard handler.
func NewDashboardHandler(summarize *dashboard.Summarize, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{summarize: summarize, log: log}
}

// Summary handles GET /api/dashboard/summary.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.summarize.Execute(r.Context())
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
