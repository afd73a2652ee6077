package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/fuel-service/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(authService)}
}

// Register registers POST /auth/login.
func (r *AuthRoutes) Register(api *gin.RouterGroup, _ *RouterConfig) {
	api.POST("/auth/login", r.handler.Login)
}
