package http

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers one feature's routes on the API group.
type RouteRegistrar interface {
	Register(api *gin.RouterGroup, cfg *RouterConfig)
}
