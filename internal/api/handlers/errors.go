package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-deploy-dashboard/internal/dashboard"
	"ai-deploy-dashboard/internal/inference"
	"ai-deploy-dashboard/internal/logging"
	"ai-deploy-dashboard/internal/preview"
)

type ErrorResponse struct {
	Error string `json:"error" example:"detection request failed with status 500"`
}

// statusFor maps a page or upload error onto an HTTP status.
func statusFor(err error) int {
	var statusErr *inference.StatusError
	switch {
	case errors.Is(err, dashboard.ErrNoImage), errors.Is(err, dashboard.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, preview.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, preview.ErrEmptyImage), errors.Is(err, preview.ErrUnsupportedImage):
		return http.StatusBadRequest
	case errors.As(err, &statusErr), errors.Is(err, inference.ErrNoEndpoint):
		return http.StatusBadGateway
	case errors.Is(err, dashboard.ErrNoOverlay):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func respondError(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		logging.Error(c).Err(err).Int("status", status).Msg("Request failed")
	} else {
		logging.Warn(c).Err(err).Int("status", status).Msg("Request rejected")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
