package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfalcao/payagent/internal/domain/dto"
	"github.com/mfalcao/payagent/internal/logger"
)

// ErrorHandler is a safety net for errors attached to the gin context that
// no handler translated into a response.
var ErrorHandler gin.HandlerFunc = func(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError logs the error and aborts the request with a standardized
// JSON error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	logger.L().Warn().Err(err).Int("status", status).Msg(message)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
