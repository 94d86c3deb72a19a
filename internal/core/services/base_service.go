package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/middleware"
	"github.com/SscSPs/grn_tracker/internal/utils/pagination"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// BaseService provides common functionality for all services
type BaseService struct {
	now             func() time.Time
	defaultPageSize int
	maxPageSize     int
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{
		now:             time.Now,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithClock replaces the time source used for audit stamps and GRN number periods.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPageSizes sets the default and maximum list page sizes.
func WithPageSizes(def, max int) ServiceOption {
	return func(s *BaseService) {
		if def > 0 {
			s.defaultPageSize = def
		}
		if max > 0 {
			s.maxPageSize = max
		}
	}
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	return s.now().UTC()
}

// PageParams normalizes the page and limit of a list query.
func (s *BaseService) PageParams(q dto.ListQuery) pagination.Params {
	return pagination.Normalize(q.Page, q.Limit, s.defaultPageSize, s.maxPageSize)
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
