package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fuel-service/internal/circuitbreaker"
	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/i18n"
	"github.com/guttosm/fuel-service/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and, if the handler wrote nothing,
// answers with a translated error body. An open circuit breaker maps to 503.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		status, code, key := http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError
		if errors.Is(err.Err, circuitbreaker.ErrCircuitOpen) {
			status, code, key = http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyServiceUnavailable
		}
		c.JSON(status, dto.NewError(code, i18n.T(c, key)).WithRequestID(requestID))
	}
}
