// Package context carries request-scoped values between the delivery layer
// and the usecases: request id, the request logger and the active author.
package context

import (
	"context"
	"log/slog"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// KeyActiveAuthor holds the author resolved from x-access-token.
	KeyActiveAuthor ContextKey = "active_author"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context, generating one when absent.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when no request ID is stored.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns nil when no request-scoped logger is stored.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetActiveAuthor stores the authenticated author for the rest of the request.
func SetActiveAuthor(c echo.Context, author *entity.Author) {
	c.Set(string(KeyActiveAuthor), author)
}

// WithActiveAuthor returns a new context carrying the authenticated author.
func WithActiveAuthor(ctx context.Context, author *entity.Author) context.Context {
	return context.WithValue(ctx, KeyActiveAuthor, author)
}

// ActiveAuthorFromContext returns the author stored by WithActiveAuthor.
func ActiveAuthorFromContext(ctx context.Context) (*entity.Author, bool) {
	author, ok := ctx.Value(KeyActiveAuthor).(*entity.Author)

	return author, ok && author != nil
}

// GetActiveAuthor returns the author stored by the auth middleware.
func GetActiveAuthor(c echo.Context) (*entity.Author, bool) {
	author, ok := c.Get(string(KeyActiveAuthor)).(*entity.Author)

	return author, ok && author != nil
}
