package middleware

import (
	"log/slog"
	"strings"

	"blog/internal/delivery/api/response"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HeaderAccessToken carries the access token on protected routes.
const HeaderAccessToken = "x-access-token"

// AuthMiddleware gates routes on a valid access token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

func NewAuthMiddleware(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, logger: logger}
}

// Authenticate rejects requests without a usable x-access-token before the
// handler runs. On success the author is available through GetActiveAuthor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := strings.TrimSpace(c.Request().Header.Get(HeaderAccessToken))
		if token == "" {
			return response.HandleAppError(c, domainerrors.ErrAuthRequired)
		}

		ctx := c.Request().Context()
		author, err := m.authUC.Authenticate(ctx, token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Int64("author_id", author.ID))
		ctx = deliverycontext.WithActiveAuthor(ctx, author)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))
		deliverycontext.SetActiveAuthor(c, author)

		return next(c)
	}
}

// GetActiveAuthor returns the author resolved by Authenticate.
func GetActiveAuthor(c echo.Context) (*entity.Author, bool) {
	return deliverycontext.GetActiveAuthor(c)
}
