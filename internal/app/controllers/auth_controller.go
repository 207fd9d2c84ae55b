// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/eventhub/internal/app/models/dto"
	"github.com/campushub/eventhub/internal/app/services"
	"github.com/campushub/eventhub/internal/middleware"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
	"github.com/campushub/eventhub/internal/pkg/auth"
)

// CookieSettings describes how the session cookie is written
type CookieSettings struct {
	Name   string
	Secure bool
}

// AuthController handles signup, login, logout and the current-user lookup
type AuthController struct {
	authService *services.AuthService
	sessions    *auth.SessionService
	cookie      CookieSettings
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, sessions *auth.SessionService, cookie CookieSettings, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
		logger:      logger,
	}
}

// setSessionCookie writes the signed session payload. HTTP-only and
// SameSite=Lax; lifetime matches the payload's own expiry.
func (c *AuthController) setSessionCookie(ctx *gin.Context, token string, lifetime time.Duration) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, token, int(lifetime.Seconds()), "/", "", c.cookie.Secure, true)
}

// clearSessionCookie invalidates the session cookie immediately
func (c *AuthController) clearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, "", -1, "/", "", c.cookie.Secure, true)
}

// Signup handles account creation
// @Summary Create a new account
// @Description Creates a student or admin account. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Account information"
// @Success 201 {object} dto.AuthResponse "Account created"
// @Failure 400 {object} dto.ErrorResponse "Malformed JSON"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Email or student ID already registered"
// @Router /api/auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup payload")
		status, detail := dto.HandleBindingError(err)
		ctx.JSON(status, dto.NewErrorResponse(detail))
		return
	}

	user, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Signup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "Account created successfully",
		User:    dto.NewUserResponse(user),
	})
}

// Login handles credential verification and session issuance
// @Summary Log in
// @Description Verifies credentials and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Malformed JSON"
// @Failure 422 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login payload")
		status, detail := dto.HandleBindingError(err)
		ctx.JSON(status, dto.NewErrorResponse(detail))
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, err := c.sessions.Issue(user)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to issue session")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token, c.sessions.Lifetime())

	c.logger.Info().Str("email", user.Email).Msg("User logged in")

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    dto.NewUserResponse(user),
	})
}

// Logout clears the session
// @Summary Log out
// @Description Clears the session cookie. Always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse "Logged out"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Me returns the current user, re-validated against the store
// @Summary Current user
// @Description Returns the user backing the active session. Clears the session if that user no longer exists.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 404 {object} dto.ErrorResponse "Stale session"
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	user, err := c.authService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Session points at a vanished user; drop it
			c.clearSessionCookie(ctx)
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}
