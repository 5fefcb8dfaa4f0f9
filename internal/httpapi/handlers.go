// Package httpapi holds the Gin handlers. Keep these thin: parse/validate
// input, call store/report/ai, map errors to status codes.
package httpapi

import (
	"errors"
	"net/http"

	"auditforce/internal/ai"
	"auditforce/internal/auth"
	"auditforce/internal/store"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
type Handlers struct {
	Store     *store.Store
	Auth      *auth.Manager
	Revoker   auth.Revoker
	Assistant *ai.Assistant
}

// writeStoreError maps store sentinels to HTTP status codes.
func writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrGridNotFound):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "grid not found"})
	case errors.Is(err, store.ErrEmailInUse):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "email already in use"})
	case errors.Is(err, store.ErrGridInUse):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "grid is referenced by audits"})
	case errors.Is(err, store.ErrInvalidPlanLink):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "plan must link a finding or an indicator"})
	case errors.Is(err, store.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid argument"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badJSON(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
}

// currentUser resolves the authenticated user from the request identity.
func (h Handlers) currentUser(c *gin.Context) (store.User, bool) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return store.User{}, false
	}
	u, ok := h.Store.GetUser(uid)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return store.User{}, false
	}
	return u, true
}
