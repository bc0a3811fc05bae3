// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// basicChallenge is sent with every failed login.
const basicChallenge = `Basic realm="You must be logged in."`

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Login exchanges Basic credentials for an access token. Missing, unknown and
// wrong credentials all get the same 401 challenge.
func (h *AuthHandler) Login(c echo.Context) error {
	name, password, ok := c.Request().BasicAuth()
	if !ok || name == "" || password == "" {
		return h.challenge(c)
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Name:     name,
		Password: password,
	})
	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		return h.challenge(c)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Body{
		"token":      out.Token,
		"expires_at": out.ExpiresAt,
	})
}

func (h *AuthHandler) challenge(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, basicChallenge)

	return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
}
