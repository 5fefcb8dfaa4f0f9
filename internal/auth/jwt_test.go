package auth

import (
	"context"
	"testing"
	"time"

	"auditforce/internal/config"
	"auditforce/internal/store"
)

func TestIssueAndVerifyAccessToken(t *testing.T) {
	m, err := NewManager(config.AuthConfig{
		JWTSecret:       "secret",
		JWTIssuer:       "issuer",
		JWTAudience:     "aud",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}

	now := time.Unix(1700000000, 0).UTC()
	pair, err := m.IssuePair(now, "user-1", store.RoleAuditor)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token strings")
	}

	claims, err := m.Verify(pair.AccessToken, TokenTypeAccess, now.Add(1*time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != store.RoleAuditor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("access token must carry a jti for revocation")
	}
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	m, _ := NewManager(config.AuthConfig{JWTSecret: "secret", AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour})
	p, err := m.IssuePair(time.Now(), "u", store.RoleEmployee)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify(p.RefreshToken, TokenTypeAccess, time.Now()); err == nil {
		t.Fatalf("expected token_type mismatch")
	}
}

func TestMemoryRevokerExpires(t *testing.T) {
	r := NewMemoryRevoker()
	now := time.Unix(1700000000, 0).UTC()
	r.clock = func() time.Time { return now }

	if err := r.Revoke(context.Background(), "jti-1", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	if ok, _ := r.IsRevoked(context.Background(), "jti-1"); !ok {
		t.Fatalf("expected token to be revoked")
	}
	if ok, _ := r.IsRevoked(context.Background(), "jti-2"); ok {
		t.Fatalf("unknown token must not be revoked")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := r.IsRevoked(context.Background(), "jti-1"); ok {
		t.Fatalf("revocation must lapse with the token TTL")
	}
}
