package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidCSV.Code, parseErr.Error())
		return
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, getStatusCode(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "INVALID_CSV", "BAD_REQUEST":
		return http.StatusBadRequest
	case "UNPAIRED_ASSIGNMENTS":
		return http.StatusUnprocessableEntity
	case "PAYLOAD_TOO_LARGE":
		return http.StatusRequestEntityTooLarge
	case "NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
