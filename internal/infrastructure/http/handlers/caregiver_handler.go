package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mubarek-tria/CIEt/internal/application/caregiver"
	"github.com/mubarek-tria/CIEt/internal/application/project"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/http/middleware"
)

// CaregiverHandler handles /api/caregivers.
type CaregiverHandler struct {
	enroll   *caregiver.EnrollCaregiver
	list     *caregiver.ListCaregivers
	validate *validator.Validate
	log      zerolog.Logger
}

// NewCaregiverHandler creates the caregiver handler.
func NewCaregiverHandler(enroll *caregiver.EnrollCaregiver, list *caregiver.ListCaregivers, log zerolog.Logger) *CaregiverHandler {
	return &CaregiverHandler{enroll: enroll, list: list, validate: validator.New(), log: log}
}

// Create handles POST /api/caregivers.
func (h *CaregiverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FullName           string      `json:"fullName" validate:"max=255"`
		Gender             string      `json:"gender" validate:"max=32"`
		DOB                string      `json:"dob" validate:"max=64"`
		ChildName          string      `json:"childName" validate:"max=255"`
		ChildProjectNumber string      `json:"childProjectNumber" validate:"max=64"`
		Address            addressBody `json:"address"`
		Contact            contactBody `json:"contact"`
		PhotoURL           string      `json:"photoUrl" validate:"max=2048"`
		ProjectID          string      `json:"projectId" validate:"max=64"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	c, err := h.enroll.Execute(r.Context(), caregiver.EnrollCaregiverInput{
		FullName:           body.FullName,
		Gender:             body.Gender,
		DOB:                body.DOB,
		ChildName:          body.ChildName,
		ChildProjectNumber: body.ChildProjectNumber,
		Address:            project.AddressInput(body.Address),
		Contact:            caregiver.ContactInput(body.Contact),
		PhotoURL:           body.PhotoURL,
		ProjectID:          body.ProjectID,
	})
	middleware.RecordEntityWrite("caregiver", err == nil)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	h.log.Info().Str("caregiver_id", c.ID).Str("project_id", c.ProjectID).Msg("caregiver enrolled")
	writeJSON(w, http.StatusCreated, c)
}

// List handles GET /api/caregivers?projectId=.
func (h *CaregiverHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.list.Execute(r.Context(), caregiver.ListCaregiversInput{
		ProjectID: r.URL.Query().Get("projectId"),
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
