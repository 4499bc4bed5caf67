package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"checkout/internal/dto"
	apperrors "checkout/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	TraceHeader = "X-Trace-Id"

	// MaxBodyBytes caps every JSON request body.
	MaxBodyBytes = 1 << 20

	msgInternal = "Internal server error"
)

// Trace tags the response with a fresh trace id and returns a logger carrying it.
func Trace(w http.ResponseWriter, logger *zap.Logger) *zap.Logger {
	traceID := uuid.New().String()
	w.Header().Set(TraceHeader, traceID)
	return logger.With(zap.String("traceId", traceID))
}

// DecodeJSON decodes the request body into dst. A malformed or oversized body is
// reported as a validation error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperrors.NewValidationError("request body too large", apperrors.ValidationDetail{
				Field:   "body",
				Message: fmt.Sprintf("request body must not exceed %d bytes", MaxBodyBytes),
			})
		}
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
	}

	return nil
}

func JSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// Error maps err to a status code. Anything that is not a validation or not-found error
// is logged and reported to the caller with a generic message.
func Error(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		logger.Warn("request rejected", zap.String("reason", ve.Message), zap.Any("details", ve.Details))
		JSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: ve.Message, Details: ve.Details}, logger)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		logger.Info("resource not found", zap.String("reason", nfe.Message))
		JSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"}, logger)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	JSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal}, logger)
}
