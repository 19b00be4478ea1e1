package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mubarek-tria/CIEt/internal/application/activity"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/http/middleware"
)

// ActivityHandler handles /api/activities.
type ActivityHandler struct {
	report   *activity.ReportActivity
	list     *activity.ListActivities
	validate *validator.Validate
	log      zerolog.Logger
}

// NewActivityHandler creates the activity handler.
func NewActivityHandler(report *activity.ReportActivity, list *activity.ListActivities, log zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{report: report, list: list, validate: validator.New(), log: log}
}

// Create handles POST /api/activities.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProjectID    string   `json:"projectId" validate:"max=64"`
		CaregiverID  string   `json:"caregiverId" validate:"max=64"`
		Title        string   `json:"title" validate:"max=255"`
		Description  string   `json:"description" validate:"max=4096"`
		EvidenceURLs []string `json:"evidenceUrls" validate:"dive,max=2048"`
		AmountSpent  float64  `json:"amountSpent"`
		Status       string   `json:"status" validate:"max=64"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	a, err := h.report.Execute(r.Context(), activity.ReportActivityInput{
		ProjectID:    body.ProjectID,
		CaregiverID:  body.CaregiverID,
		Title:        body.Title,
		Description:  body.Description,
		EvidenceURLs: body.EvidenceURLs,
		AmountSpent:  body.AmountSpent,
		Status:       body.Status,
	})
	middleware.RecordEntityWrite("activity", err == nil)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	h.log.Info().Str("activity_id", a.ID).Str("project_id", a.ProjectID).Msg("activity reported")
	writeJSON(w, http.StatusCreated, a)
}

// List handles GET /api/activities?projectId=&caregiverId=.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.list.Execute(r.Context(), activity.ListActivitiesInput{
		ProjectID:   r.URL.Query().Get("projectId"),
		CaregiverID: r.URL.Query().Get("caregiverId"),
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
