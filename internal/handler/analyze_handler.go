package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

const (
	sessionCookieName = "session_id"
	uploadFieldName   = "file"
)

// Analyze принимает CSV через multipart/form-data и возвращает общую историю лучшей пары
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.uploadMaxBytes {
		h.handleError(w, r, domain.ErrPayloadTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxBytes)

	if err := r.ParseMultipartForm(h.uploadMaxBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.handleError(w, r, domain.ErrPayloadTooLarge)
			return
		}
		h.handleError(w, r, domain.NewBadRequestError("multipart form with a csv file is required"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile(uploadFieldName)
	if err != nil {
		h.handleError(w, r, domain.NewBadRequestError("form field \"file\" is required"))
		return
	}
	defer file.Close()

	sessionID := sessionFromCookie(r)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result, err := h.overlapService.Analyze(r.Context(), sessionID, file)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, domainResultToHTTP(result))
}

// GetResult отдает последний результат сессии из query-параметра или cookie
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get(sessionCookieName)
	if sessionID == "" {
		sessionID = sessionFromCookie(r)
	}
	if sessionID == "" {
		h.handleError(w, r, domain.NewBadRequestError("session_id parameter is required"))
		return
	}

	result, err := h.overlapService.GetResult(r.Context(), sessionID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainResultToHTTP(result))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func sessionFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return cookie.Value
}
