package httpapi

import (
	"net/http"
	"time"

	"auditforce/internal/auth"
	"auditforce/pkg/logger"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates credentials against the store and issues a token pair.
// Success also flips the user's presence to Online.
func (h Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if req.Email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	u, err := h.Store.Authenticate(req.Email, req.Password)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	pair, err := h.Auth.IssuePair(time.Now(), u.ID, u.Role)
	if err != nil {
		logger.FromGin(c).Error("token issuance failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          u,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh exchanges a refresh token for a fresh pair. The role is re-read
// from the store so role changes take effect on rotation.
func (h Handlers) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		badJSON(c)
		return
	}

	claims, err := h.Auth.Verify(req.RefreshToken, auth.TokenTypeRefresh, time.Now())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	u, ok := h.Store.GetUser(claims.UserID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	pair, err := h.Auth.IssuePair(time.Now(), u.ID, u.Role)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

// Logout revokes the presented access token and flips presence to Offline.
func (h Handlers) Logout(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	if jti := c.GetString("token_id"); jti != "" {
		if err := h.Revoker.Revoke(c.Request.Context(), jti, h.Auth.AccessTTL()); err != nil {
			logger.FromGin(c).Error("token revoke failed", "err", err)
		}
	}
	h.Store.Logout(u.ID)
	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user's record.
func (h Handlers) Me(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, u)
}
