package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/retail-hub/accounts/internal/logging"
	"github.com/retail-hub/accounts/internal/server/auth"
)

const (
	requestIDHeader = "X-Request-Id"

	// ctxKeyUserID is the gin context key under which AuthRequired stores the
	// authenticated subject.
	ctxKeyUserID = "userID"
)

// RequestID tags every request with an identifier, honoring one supplied by
// the caller so ids can be traced across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// AccessLog logs one structured line per request after it completes.
func AccessLog(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"request_id", c.GetString("requestID"),
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
			log.Error(c.Request.Context(), "request", args...)
			return
		}
		log.Info(c.Request.Context(), "request", args...)
	}
}

// AuthRequired authenticates the request from the Authorization header
// (Bearer scheme) or, failing that, from the session cookie. On success the
// subject id is stored under ctxKeyUserID; any failure yields the same 401
// problem body.
func AuthRequired(secretKey []byte, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && cookieName != "" {
			if v, err := c.Cookie(cookieName); err == nil {
				token = v
			}
		}
		if token == "" {
			unauthorizedProblem(c)
			return
		}

		subject, err := auth.SubjectFromToken(token, secretKey)
		if err != nil {
			unauthorizedProblem(c)
			return
		}

		c.Set(ctxKeyUserID, subject)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// userID returns the authenticated subject set by AuthRequired.
func userID(c *gin.Context) string {
	return c.GetString(ctxKeyUserID)
}

// NotFoundHandler is the fallback for unmatched routes, keeping the problem
// shape consistent across the whole surface.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		abortProblem(c, Problem{
			Type:   problemNotFound,
			Title:  "Not found",
			Status: http.StatusNotFound,
			Detail: "no route for " + c.Request.Method + " " + c.Request.URL.Path,
		})
	}
}
