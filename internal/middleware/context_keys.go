package middleware

import (
	"context"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type for values this package stores in a context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey     = contextKey("logger")
	actingUserCtxKey = contextKey("actingUser")
)

// WithActingUser returns a copy of ctx carrying user.
func WithActingUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, actingUserCtxKey, user)
}

// GetActingUserFromCtx retrieves the acting user stored by ActingUserMiddleware.
func GetActingUserFromCtx(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(actingUserCtxKey).(domain.User)
	return user, ok
}

// GetActingUserFromContext retrieves the acting user from the Gin request.
func GetActingUserFromContext(c *gin.Context) (domain.User, bool) {
	return GetActingUserFromCtx(c.Request.Context())
}
