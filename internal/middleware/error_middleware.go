package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/eventhub/internal/app/models/dto"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Every failure path
// in the API funnels through here so the taxonomy stays in one place:
// 400 bad request, 401 unauthorized, 403 forbidden, 404 not found,
// 409 conflict, 422 validation, 500 otherwise.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeBadRequest, err.Error())

	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Field != "" {
			detail = detail.WithField(custom.Field)
		}
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")

	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrSessionExpired),
		errors.Is(err, apperrors.ErrSessionInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Admin access required")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "An account with this email already exists")

	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "This Student ID is already registered")

	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Already registered for this event")

	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())

	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")

	case errors.Is(err, apperrors.ErrEventNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Event not found")

	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Registration not found")

	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	default:
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
