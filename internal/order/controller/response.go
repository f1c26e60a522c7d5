package controller

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"orderdesk/internal/dto"
	apperrors "orderdesk/internal/errors"
)

const maxBodyBytes = 1 << 16

type responder struct {
	logger   *zap.Logger
	validate *validator.Validate
}

func newResponder(logger *zap.Logger) responder {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return responder{logger: logger, validate: v}
}

// decode reads a JSON body into dst and runs struct validation. It returns
// a ValidationError describing every problem found.
func (rs responder) decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
	}

	if err := rs.validate.Struct(dst); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperrors.NewValidationError(err.Error())
		}
		details := make([]apperrors.ValidationDetail, 0, len(ve))
		for _, fe := range ve {
			details = append(details, apperrors.ValidationDetail{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

func (rs responder) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		rs.writeErrorResponse(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, ve.Details)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		rs.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", nfe.Message, nil)
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		rs.writeErrorResponse(w, traceID, http.StatusConflict, ce.Code, ce.Message, nil)
		return
	}

	if de, ok := apperrors.IsDeadlockError(err); ok {
		rs.writeErrorResponse(w, traceID, http.StatusConflict, "DEADLOCK", de.Message, nil)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	rs.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
}

func (rs responder) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code, message string, details []apperrors.ValidationDetail) {
	rs.writeJSON(w, statusCode, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (rs responder) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rs.logger.Error("failed to encode response", zap.Error(err))
	}
}
