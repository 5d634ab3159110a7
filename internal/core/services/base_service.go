package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/SscSPs/corp_portal/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock func() time.Time
}

// ServiceOption is a functional option shared by the portal services
type ServiceOption func(*BaseService)

// WithClock replaces the wall clock used for timestamps
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{clock: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time from the configured clock
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize records a policy decision and turns a denial into ErrForbidden.
func (s *BaseService) Authorize(ctx context.Context, actor domain.User, action string, allowed bool, keyvals ...any) error {
	metrics.RecordDecision(action, allowed)
	if allowed {
		return nil
	}
	args := make([]any, 0, len(keyvals)+3)
	args = append(args,
		slog.String("action", action),
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.Role)),
	)
	args = append(args, keyvals...)
	s.LogDebug(ctx, "Policy denied action", args...)
	return fmt.Errorf("%w: %s not allowed for role %q", apperrors.ErrForbidden, action, actor.Role)
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
