package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/response"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthorHandlerParams holds dependencies for AuthorHandler, injected by Fx.
type AuthorHandlerParams struct {
	fx.In

	AuthorUC usecase.AuthorUsecase
	Logger   *slog.Logger
}

// AuthorHandler holds dependencies for author-related handlers
type AuthorHandler struct {
	authorUC usecase.AuthorUsecase
	logger   *slog.Logger
}

func NewAuthorHandler(params AuthorHandlerParams) *AuthorHandler {
	return &AuthorHandler{
		authorUC: params.AuthorUC,
		logger:   params.Logger,
	}
}

// CreateAuthorRequest checks presence only, as the post requests do.
type CreateAuthorRequest struct {
	Name     *string `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// UpdateAuthorRequest carries no password: it cannot be changed here.
type UpdateAuthorRequest struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
}

func (h *AuthorHandler) ListAuthors(c echo.Context) error {
	authors, err := h.authorUC.ListAuthors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Body{"authors": entity.AuthorViews(authors)})
}

func (h *AuthorHandler) GetAuthor(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	author, err := h.authorUC.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Body{"author": author.View()})
}

func (h *AuthorHandler) CreateAuthor(c echo.Context) error {
	actor, ok := middleware.GetActiveAuthor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthRequired)
	}

	var req CreateAuthorRequest
	if ok, err := bindAndValidate(c, &req, "author"); !ok {
		return err
	}

	author, err := h.authorUC.CreateAuthor(c.Request().Context(), actor, usecase.CreateAuthorInput{
		Name:     *req.Name,
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.Body{
		"message":   "New author created",
		"author_id": author.ID,
	})
}

func (h *AuthorHandler) UpdateAuthor(c echo.Context) error {
	actor, ok := middleware.GetActiveAuthor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthRequired)
	}

	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req UpdateAuthorRequest
	if ok, err := bindAndValidate(c, &req, "author"); !ok {
		return err
	}

	err := h.authorUC.UpdateAuthor(c.Request().Context(), actor, id, usecase.UpdateAuthorInput{
		Name:  *req.Name,
		Email: *req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Author updated")
}

func (h *AuthorHandler) DeleteAuthor(c echo.Context) error {
	actor, ok := middleware.GetActiveAuthor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthRequired)
	}

	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.authorUC.DeleteAuthor(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Author deleted")
}
