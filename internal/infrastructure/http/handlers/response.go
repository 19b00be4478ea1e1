package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	domerrors "github.com/mubarek-tria/CIEt/internal/domain/errors"
)

// writeErr sends JSON { "error": message, "code": errCode }. If errCode is empty, a default is used from code.
func writeErr(w http.ResponseWriter, code int, errCode string, message string) {
	if errCode == "" {
		errCode = defaultErrCode(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}

func defaultErrCode(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	default:
		return ErrCodeInternal
	}
}

// writeDomainErr maps a domain sentinel to its HTTP status. Anything outside
// the taxonomy is logged and surfaced as a 500.
func writeDomainErr(w http.ResponseWriter, log zerolog.Logger, err error) {
	switch {
	case domerrors.IsValidation(err):
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	case domerrors.IsNotFound(err):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, domerrors.ErrProjectInactive):
		writeErr(w, http.StatusForbidden, ErrCodeForbidden, err.Error())
	case errors.Is(err, domerrors.ErrProjectCodeExists):
		writeErr(w, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		log.Error().Err(err).Msg("unexpected service error")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
