package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// UserIDHeader selects the session user from the directory.
	UserIDHeader = "X-User-ID"
	// RoleHeader overrides the session user's role (the role switcher).
	RoleHeader = "X-Portal-Role"
)

// UserResolver looks up a session user by id.
type UserResolver interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// ActingUserMiddleware resolves the user every request acts as and stores it
// in the request context. Without an X-User-ID header defaultUserID is used.
// When allowRoleSwitch is set any X-Portal-Role value replaces the role;
// values outside the hierarchy are kept as-is and rank lowest.
func ActingUserMiddleware(users UserResolver, defaultUserID string, allowRoleSwitch bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = defaultUserID
		}
		if userID == "" {
			logger.Warn("No acting user for request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
			return
		}

		user, err := users.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Unknown acting user", slog.String("user_id", userID))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
				return
			}
			logger.Error("Failed to resolve acting user", slog.String("user_id", userID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			return
		}

		acting := *user
		if role := strings.TrimSpace(c.GetHeader(RoleHeader)); allowRoleSwitch && role != "" {
			acting = acting.WithRole(domain.Role(role))
			if !acting.Role.IsValid() {
				logger.Warn("Role switcher set an unknown role", slog.String("role", role))
			}
		}

		enriched := logger.With(
			slog.String("user_id", acting.UserID),
			slog.String("role", string(acting.Role)),
		)
		ctx := WithActingUser(c.Request.Context(), acting)
		c.Request = c.Request.WithContext(WithLogger(ctx, enriched))

		c.Next()
	}
}
