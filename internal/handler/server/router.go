package server

import (
	"net/http"

	"github.com/bagdasarian/employees-pair/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /analyze", h.Analyze)
	mux.HandleFunc("GET /result", h.GetResult)
	mux.HandleFunc("GET /health", h.Health)
}
