package handlers

import (
	"errors"
	"net/http"

	"umrah/internal/domain"
	"umrah/internal/http/middleware"
	"umrah/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Store failures are
// logged and answered with a generic message.
func RespondDomainError(c *gin.Context, err error) {
	var (
		ve domain.ValidationError
		ie domain.IntegrityError
		te domain.TransitionError
	)
	switch {
	case errors.As(err, &ve):
		var details any
		if ve.Field != "" {
			details = gin.H{"field": ve.Field}
		}
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), details)
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, "forbidden", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.As(err, &ie):
		respondError(c, http.StatusConflict, "integrity_violation", ie.Error(), nil)
	case errors.As(err, &te):
		respondError(c, http.StatusConflict, "invalid_transition", te.Error(), gin.H{"from": te.From, "to": te.To})
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		respondError(c, http.StatusInternalServerError, "internal_error", "terjadi kesalahan", nil)
	}
}
