package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mubarek-tria/CIEt/internal/application/fund"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/http/middleware"
)

// FundHandler handles /api/funds.
type FundHandler struct {
	allocate *fund.AllocateFund
	list     *fund.ListFunds
	validate *validator.Validate
	log      zerolog.Logger
}

// NewFundHandler creates the fund handler.
func NewFundHandler(allocate *fund.AllocateFund, list *fund.ListFunds, log zerolog.Logger) *FundHandler {
	return &FundHandler{allocate: allocate, list: list, validate: validator.New(), log: log}
}

// Create handles POST /api/funds.
func (h *FundHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProjectID   string  `json:"projectId" validate:"max=64"`
		CaregiverID string  `json:"caregiverId" validate:"max=64"`
		Amount      float64 `json:"amount"`
		Currency    string  `json:"currency" validate:"max=8"`
		Purpose     string  `json:"purpose" validate:"max=512"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	f, err := h.allocate.Execute(r.Context(), fund.AllocateFundInput{
		ProjectID:   body.ProjectID,
		CaregiverID: body.CaregiverID,
		Amount:      body.Amount,
		Currency:    body.Currency,
		Purpose:     body.Purpose,
	})
	middleware.RecordEntityWrite("fund", err == nil)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	h.log.Info().Str("fund_id", f.ID).Str("project_id", f.ProjectID).Float64("amount", f.Amount).Msg("fund allocated")
	writeJSON(w, http.StatusCreated, f)
}

// List handles GET /api/funds?projectId=&caregiverId=.
func (h *FundHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.list.Execute(r.Context(), fund.ListFundsInput{
		ProjectID:   r.URL.Query().Get("projectId"),
		CaregiverID: r.URL.Query().Get("caregiverId"),
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
