package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/middleware"
	"github.com/SscSPs/grn_tracker/internal/platform/validation"
	"github.com/SscSPs/grn_tracker/internal/utils/pagination"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func respondOK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: data, Message: message})
}

func respondCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, dto.Response{Success: true, Data: data, Message: message})
}

func respondList(c *gin.Context, data any, meta pagination.Meta) {
	c.JSON(http.StatusOK, dto.ListResponse{Success: true, Data: data, Pagination: meta})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Success: status < http.StatusBadRequest, Message: message})
}

// respondBindError reports a request that failed binding or tag validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Request binding failed", slog.String("error", err.Error()))
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondMessage(c, http.StatusBadRequest, "Validation failed: "+validation.Describe(verrs))
		return
	}
	respondMessage(c, http.StatusBadRequest, "Invalid request format")
}

// respondError maps service errors onto status codes. resource names the entity in messages.
func respondError(c *gin.Context, err error, resource string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		respondMessage(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		respondMessage(c, http.StatusConflict, resource+" already exists")
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting state", slog.String("error", err.Error()))
		respondMessage(c, http.StatusConflict, resource+" is still referenced by other records")
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondMessage(c, http.StatusUnauthorized, "Unauthorized")
	default:
		logger.Error("Request failed", slog.String("error", err.Error()), slog.String("resource", resource))
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

// requireUserID returns the authenticated user id, responding 401 when it is absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		respondMessage(c, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

func sendWorkbook(c *gin.Context, content []byte, fileName string) {
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, content)
}
