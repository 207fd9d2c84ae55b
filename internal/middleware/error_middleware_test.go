package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campushub/eventhub/internal/app/models/dto"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"validation", apperrors.NewValidationError("name", "Name must be at least 2 characters"), http.StatusUnprocessableEntity},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"session expired", apperrors.ErrSessionExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"student id exists", apperrors.ErrStudentIDAlreadyExists, http.StatusConflict},
		{"already registered", apperrors.ErrAlreadyRegistered, http.StatusConflict},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"event not found", apperrors.ErrEventNotFound, http.StatusNotFound},
		{"registration not found", apperrors.ErrRegistrationNotFound, http.StatusNotFound},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleAPIError(c, tt.err)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if resp.Success {
				t.Fatal("success must be false on errors")
			}
			if resp.Error == nil || resp.Error.Message == "" {
				t.Fatal("expected an error detail")
			}
		})
	}
}

func TestHandleAPIErrorCarriesValidationField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, apperrors.NewValidationError("email", "Enter a valid email address"))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Error.Field != "email" {
		t.Fatalf("field = %q, want email", resp.Error.Field)
	}
	if resp.Error.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("code = %q, want %q", resp.Error.Code, dto.ErrorCodeValidationFailed)
	}
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, errors.New("pq: secret table missing"))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Error.Message != "Internal server error" {
		t.Fatalf("message = %q, internals must not leak", resp.Error.Message)
	}
}
