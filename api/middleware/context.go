package middleware

import (
	"context"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

type contextKey string

const (
	ctxUserID   contextKey = "user_id"
	ctxUserName contextKey = "user_name"
	ctxRole     contextKey = "actor_role"
)

func UserIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxUserID).(int64); ok {
		return v
	}
	return 0
}

func UserNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserName).(string); ok {
		return v
	}
	return ""
}

func RoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(string); ok {
		return v
	}
	return ""
}

// ActorFromContext rebuilds the acting user from the token claims seeded by
// Auth. The record carries only identity fields, not a loaded row.
func ActorFromContext(ctx context.Context) models.User {
	return models.User{
		ID:   UserIDFromContext(ctx),
		Name: UserNameFromContext(ctx),
		Role: enums.UserRole(RoleFromContext(ctx)),
	}
}

// WithActor injects identity values into the context.
func WithActor(ctx context.Context, userID int64, name, role string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, userID)
	ctx = context.WithValue(ctx, ctxUserName, name)
	return context.WithValue(ctx, ctxRole, role)
}
