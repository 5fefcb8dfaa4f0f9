package auth

import (
	"context"
	"errors"

	"auditforce/internal/store"
)

type ctxKey int

const (
	ctxUserID ctxKey = iota
	ctxRole
)

func WithIdentity(ctx context.Context, userID string, role store.UserRole) context.Context {
	ctx = context.WithValue(ctx, ctxUserID, userID)
	ctx = context.WithValue(ctx, ctxRole, role)
	return ctx
}

func UserID(ctx context.Context) (string, error) {
	v := ctx.Value(ctxUserID)
	if s, ok := v.(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("user_id not in context")
}

func Role(ctx context.Context) (store.UserRole, error) {
	v := ctx.Value(ctxRole)
	if r, ok := v.(store.UserRole); ok && r != "" {
		return r, nil
	}
	return "", errors.New("role not in context")
}
