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

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler holds dependencies for post-related handlers
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest is the body of POST /posts. Fields are pointers so that
// only presence is checked: "" and 0 are accepted values.
type CreatePostRequest struct {
	Title    *string `json:"title" validate:"required"`
	AuthorID *int64  `json:"author_id" validate:"required"`
}

// UpdatePostRequest is the body of PUT /posts/:id.
type UpdatePostRequest struct {
	Title *string `json:"title" validate:"required"`
}

func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postUC.ListPosts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Body{"posts": entity.PostViews(posts)})
}

// GetPost answers under the "posts" key, like the list endpoint.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	post, err := h.postUC.GetPost(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Body{"posts": post.View()})
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	author, ok := middleware.GetActiveAuthor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthRequired)
	}

	var req CreatePostRequest
	if ok, err := bindAndValidate(c, &req, "post"); !ok {
		return err
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), author, usecase.CreatePostInput{
		Title:    *req.Title,
		AuthorID: *req.AuthorID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.Body{
		"message": "New post created",
		"post_id": post.ID,
	})
}

func (h *PostHandler) UpdatePost(c echo.Context) error {
	author, ok := middleware.GetActiveAuthor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthRequired)
	}

	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req UpdatePostRequest
	if ok, err := bindAndValidate(c, &req, "post"); !ok {
		return err
	}

	if err := h.postUC.UpdatePost(c.Request().Context(), author, id, usecase.UpdatePostInput{Title: *req.Title}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Post updated")
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	author, ok := middleware.GetActiveAuthor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthRequired)
	}

	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.postUC.DeletePost(c.Request().Context(), author, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Post deleted")
}
