package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/campus/internal/locale"
	"github.com/joshua-takyi/campus/internal/metrics"
	"github.com/joshua-takyi/campus/internal/models"
)

const RequestIDKey = "request_id"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get(RequestIDKey)

		level := slog.LevelInfo
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "HTTP Request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", c.ClientIP(),
			"lang", c.GetString(locale.ContextKey),
		)
	}
}

// ErrorHandler logs errors attached with c.Error. Handlers normally write
// their own response; a generic 500 is only sent when nothing was written.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := c.GetString(RequestIDKey)

		logger.Error("Request error",
			"request_id", requestID,
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		if c.Writer.Written() {
			return
		}
		lang := locale.Parse(c.GetString(locale.ContextKey), locale.Turkish)
		resp := models.MessageResponse(locale.Message(lang, locale.InternalError))
		resp.RequestID = requestID
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// Recovery turns a panic into an error on the context, so ErrorHandler logs
// it, and answers with the generic localized 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		if c.Writer.Written() {
			c.Abort()
			return
		}
		lang := locale.Parse(c.GetString(locale.ContextKey), locale.Turkish)
		resp := models.MessageResponse(locale.Message(lang, locale.InternalError))
		resp.RequestID = c.GetString(RequestIDKey)
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}

// Language resolves the response language from Accept-Language and stores it
// under locale.ContextKey.
func Language(fallback locale.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := locale.Negotiate(c.GetHeader("Accept-Language"), fallback)
		c.Set(locale.ContextKey, string(lang))
		c.Header("Content-Language", string(lang))
		c.Next()
	}
}

// Metrics records request counts and latency per matched route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
