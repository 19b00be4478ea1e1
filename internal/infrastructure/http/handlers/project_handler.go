package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mubarek-tria/CIEt/internal/application/project"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/http/middleware"
)

// ProjectHandler handles /api/projects. Creation and status toggling are
// admin-only; listing is open to all staff roles (gated in the router).
type ProjectHandler struct {
	create    *project.CreateProject
	list      *project.ListProjects
	setStatus *project.SetProjectStatus
	validate  *validator.Validate
	log       zerolog.Logger
}

// NewProjectHandler creates the project handler.
func NewProjectHandler(create *project.CreateProject, list *project.ListProjects, setStatus *project.SetProjectStatus, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		create:    create,
		list:      list,
		setStatus: setStatus,
		validate:  validator.New(),
		log:       log,
	}
}

// Create handles POST /api/projects. Returns the full record including the
// generated credentials; callers own not re-exposing them.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name         string      `json:"name" validate:"max=255"`
		Code         string      `json:"code" validate:"max=64"`
		Program      string      `json:"program" validate:"max=255"`
		Address      addressBody `json:"address"`
		DirectorName string      `json:"directorName" validate:"max=255"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	p, err := h.create.Execute(r.Context(), project.CreateProjectInput{
		Name:         body.Name,
		Code:         body.Code,
		Program:      body.Program,
		Address:      project.AddressInput(body.Address),
		DirectorName: body.DirectorName,
	})
	middleware.RecordEntityWrite("project", err == nil)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	h.log.Info().Str("project_id", p.ID).Str("code", p.Code).Msg("project created")
	writeJSON(w, http.StatusCreated, p)
}

// List handles GET /api/projects?active=true|false.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.list.Execute(r.Context(), project.ListProjectsInput{
		ActiveFilter: r.URL.Query().Get("active"),
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SetStatus handles PATCH /api/projects/:id/status. The active field is
// coerced to a boolean; an absent body deactivates.
func (h *ProjectHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body struct {
		Active interface{} `json:"active"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	p, err := h.setStatus.Execute(r.Context(), project.SetProjectStatusInput{
		ID:     id,
		Active: truthy(body.Active),
	})
	middleware.RecordEntityWrite("project_status", err == nil)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": p.ID, "active": p.Active})
}
