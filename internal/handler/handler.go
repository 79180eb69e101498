package handler

import "github.com/bagdasarian/employees-pair/internal/service"

const defaultUploadMaxBytes = 10 << 20

type Handler struct {
	overlapService service.OverlapService
	uploadMaxBytes int64
}

func NewHandler(overlapService service.OverlapService, uploadMaxBytes int64) *Handler {
	if uploadMaxBytes <= 0 {
		uploadMaxBytes = defaultUploadMaxBytes
	}
	return &Handler{
		overlapService: overlapService,
		uploadMaxBytes: uploadMaxBytes,
	}
}
