package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"lifeTracker/internal/logger"
	"lifeTracker/internal/service"
)

// handleBusinessError maps a service.BusinessError onto an HTTP answer.
// Returns false when the error is not a business error so the caller
// can fall through to a 500.
func handleBusinessError(w http.ResponseWriter, err error) bool {
	var businessErr *service.BusinessError
	if !errors.As(err, &businessErr) {
		return false
	}

	statusCode := mapBusinessErrorToHTTP(businessErr.Code)

	logger.Warn("HTTP: business error",
		zap.String("error_code", businessErr.Code),
		zap.Int("http_status", statusCode))

	responseWithJSON(w, statusCode,
		toPayload("error", businessErr.Code),
		toPayload("message", businessErr.Message),
		toPayload("details", businessErr.Details),
	)
	return true
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "VALIDATION_ERROR":
		return http.StatusBadRequest
	case "VERSION_CONFLICT":
		return http.StatusConflict
	case "TASK_DELETED":
		return http.StatusGone
	default:
		return http.StatusBadRequest
	}
}

func serviceError(w http.ResponseWriter, err error, operation string) {
	if handleBusinessError(w, err) {
		return
	}
	logger.Error("HTTP: service error", err, zap.String("operation", operation))
	responseWithError(w, http.StatusInternalServerError, err.Error())
}
