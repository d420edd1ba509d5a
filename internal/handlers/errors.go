package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/manual_journal_service/internal/apperrors"
	"github.com/SscSPs/manual_journal_service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// invalidRequestKind tags request binding failures, which never reach the services.
const invalidRequestKind = "INVALID_REQUEST"

// ErrorItem is one element of an error response.
type ErrorItem struct {
	Type    string `json:"type"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// FieldError describes one failed binding rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// respondWithError maps err onto a status code and the errors envelope.
func respondWithError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperrors.ErrConflict):
			status = http.StatusConflict
		}
		logger.Warn("Manual journal request rejected", slog.String("type", string(svcErr.Kind)), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(status, ErrorResponse{Errors: []ErrorItem{{
			Type:    string(svcErr.Kind),
			Code:    svcErr.Kind.Code(),
			Message: svcErr.Message,
			Data:    svcErr.Payload,
		}}})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid manual journal request", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Errors: []ErrorItem{{
			Type:    invalidRequestKind,
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}}})
	case errors.Is(err, apperrors.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Errors: []ErrorItem{{
			Type: string(apperrors.KindNotFound),
			Code: apperrors.KindNotFound.Code(),
		}}})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Errors: []ErrorItem{{
			Type:    "INTERNAL_ERROR",
			Code:    http.StatusInternalServerError,
			Message: fallbackMsg,
		}}})
	}
}

// respondWithBindError reports request binding failures, listing field rules when available.
func respondWithBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))

	item := ErrorItem{Type: invalidRequestKind, Code: http.StatusBadRequest, Message: "Invalid request format"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = FieldError{Field: fe.Namespace(), Rule: fe.Tag(), Param: fe.Param()}
		}
		item.Data = fields
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Errors: []ErrorItem{item}})
}
