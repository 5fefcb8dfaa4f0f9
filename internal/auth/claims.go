package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"auditforce/internal/store"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the only supported JWT claims shape for this service.
// Role is carried on access tokens only; authorization decisions happen in
// internal/rbac, never during parsing.
type Claims struct {
	jwt.RegisteredClaims

	UserID    string         `json:"user_id"`
	Role      store.UserRole `json:"role"`
	TokenType TokenType      `json:"token_type"`
}
