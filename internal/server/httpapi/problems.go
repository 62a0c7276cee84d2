// Package httpapi is the HTTP transport of the accounts service: route
// registration, middleware, and the problem-details error surface.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retail-hub/accounts/internal/common"
)

// Problem type URIs. The URIs are identifiers, not links; clients match on
// them to branch on error categories.
const (
	problemValidation   = "https://api.retail-hub.com/problems/validation"
	problemUnauthorized = "https://api.retail-hub.com/problems/unauthorized"
	problemConflict     = "https://api.retail-hub.com/problems/conflict"
	problemNotFound     = "https://api.retail-hub.com/problems/not-found"
	problemServerError  = "https://api.retail-hub.com/problems/server-error"
)

// Problem is an RFC 7807 problem-details body. Every non-2xx response of the
// service uses this shape.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func abortProblem(c *gin.Context, p Problem) {
	c.Header("Content-Type", "application/problem+json")
	c.AbortWithStatusJSON(p.Status, p)
}

func validationProblem(c *gin.Context, detail string) {
	abortProblem(c, Problem{
		Type:   problemValidation,
		Title:  "Invalid request",
		Status: http.StatusBadRequest,
		Detail: detail,
	})
}

// unauthorizedProblem is intentionally detail-free: every authentication
// failure produces the same body, so responses never reveal whether an
// account exists or why a token was rejected.
func unauthorizedProblem(c *gin.Context) {
	abortProblem(c, Problem{
		Type:   problemUnauthorized,
		Title:  "Authentication required",
		Status: http.StatusUnauthorized,
	})
}

func conflictProblem(c *gin.Context, detail string) {
	abortProblem(c, Problem{
		Type:   problemConflict,
		Title:  "Conflict",
		Status: http.StatusConflict,
		Detail: detail,
	})
}

func notFoundProblem(c *gin.Context) {
	abortProblem(c, Problem{
		Type:   problemNotFound,
		Title:  "Not found",
		Status: http.StatusNotFound,
	})
}

func serverErrorProblem(c *gin.Context) {
	abortProblem(c, Problem{
		Type:   problemServerError,
		Title:  "Internal server error",
		Status: http.StatusInternalServerError,
	})
}

// writeServiceError maps the service-layer sentinels onto problem responses.
// Anything unrecognized is a server error; the detail stays out of the body.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		validationProblem(c, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		unauthorizedProblem(c)
	case errors.Is(err, common.ErrorAlreadyExists):
		conflictProblem(c, "username or email is already taken")
	case errors.Is(err, common.ErrorNotFound):
		notFoundProblem(c)
	default:
		// Surface the cause to the access log, never to the client.
		_ = c.Error(err)
		serverErrorProblem(c)
	}
}
