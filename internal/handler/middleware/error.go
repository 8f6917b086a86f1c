package middleware

import (
	"log/slog"
	"net/http"

	"lab-reservation/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}

// ErrorHandler renders errors that handlers recorded with c.Error without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		if last == nil {
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Status(status)
				c.Writer.WriteHeaderNow()
				return
			}
			c.JSON(http.StatusInternalServerError, internalError())
			return
		}

		if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}

		status := httperr.StatusFor(last.Err)
		if status == http.StatusInternalServerError {
			slog.Error("unhandled request error",
				"error", last.Err.Error(),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c))
			c.JSON(status, internalError())
			return
		}
		resp := httperr.Response{Status: status}
		resp.Error.Message = last.Err.Error()
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic",
					"error", r,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}
