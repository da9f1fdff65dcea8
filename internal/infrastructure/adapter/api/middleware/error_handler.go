package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler converts a panic anywhere below it into a 500 with the
// standard error body, so a malformed computation can never take the
// whole server down with it
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Recovered from panic while serving request", map[string]any{
					"panic":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
