package http

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"

	ctxRequestID = "request_id"
	ctxToken     = "token"
	ctxUser      = "user"
)

// RequestID reuses the caller's X-Request-Id or generates one, and echoes it
// back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxRequestID, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// AccessLog writes one record per request once the response is complete.
func AccessLog(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(ctxRequestID),
		}
		if c.Writer.Status() >= 500 {
			logger.Warn(c.Request.Context(), "request failed", args...)
			return
		}
		logger.Info(c.Request.Context(), "request completed", args...)
	}
}

// Recovery turns a panic into a 500 with the generic message.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "panic recovered",
			"panic", fmt.Sprint(recovered),
			"request_id", c.GetString(ctxRequestID))
		if !c.Writer.Written() {
			c.AbortWithStatusJSON(StatusFor(common.KindInternal), gin.H{"error": common.MessageOf(common.ErrorInternal)})
			return
		}
		c.Abort()
	})
}

// ErrorTranslator is the single place that turns errors attached with
// c.Error into a response. The last error wins; nothing is written when a
// handler already responded.
func ErrorTranslator(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		kind := common.KindOf(err)
		if kind == common.KindInternal {
			logger.Error(c.Request.Context(), "request error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"request_id", c.GetString(ctxRequestID))
		}

		c.AbortWithStatusJSON(StatusFor(kind), gin.H{"error": common.MessageOf(err)})
	}
}

// TokenExtractor stores the bearer token of the request, if any. A missing
// or foreign Authorization header is not an error here.
func TokenExtractor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, ok := bearerToken(c.GetHeader(common.AuthorizationHeaderName)); ok {
			c.Set(ctxToken, tok)
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	prefix := common.BearerPrefix
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}

// RequireIdentity resolves the extracted token to a user and aborts the
// request when that is not possible.
func RequireIdentity(authn Authenticator, missing error) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := c.GetString(ctxToken)
		if tok == "" {
			_ = c.Error(missing)
			c.Abort()
			return
		}

		user, err := authn.Authenticate(c.Request.Context(), tok)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ctxUser, user)
		c.Next()
	}
}

// identity returns the user attached by RequireIdentity, or nil.
func identity(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
