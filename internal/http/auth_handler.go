package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/i18n"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Admin login
// @Description  Exchanges the administrator credentials for a bearer token used by the truck class management endpoints.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Admin account not configured"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fields := map[string]interface{}{"username": req.Username}
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			middleware.AuditLogError(c, model.ActionLogin, "Failed login attempt", err, fields)
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
		case errors.Is(err, service.ErrAdminNotConfigured):
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyAdminNotConfigured, err)
		default:
			middleware.AuditLogError(c, model.ActionLogin, "Login internal error", err, fields)
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	c.Set(middleware.ContextKeyActor, req.Username)
	middleware.AuditLog(c, model.ActionLogin, "Admin logged in", nil)

	builder.SuccessOK(token)
}
