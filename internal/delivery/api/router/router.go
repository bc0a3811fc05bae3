// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthorHandler  *handler.AuthorHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authorHandler  *handler.AuthorHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authorHandler:  params.AuthorHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/login", r.authHandler.Login)

	// Everything below requires x-access-token.
	posts := e.Group("/posts", r.authMiddleware.Authenticate)
	{
		posts.GET("", r.postHandler.ListPosts)
		posts.POST("", r.postHandler.CreatePost)
		posts.GET("/:id", r.postHandler.GetPost)
		posts.PUT("/:id", r.postHandler.UpdatePost)
		posts.DELETE("/:id", r.postHandler.DeletePost)
	}

	authors := e.Group("/authors", r.authMiddleware.Authenticate)
	{
		authors.GET("", r.authorHandler.ListAuthors)
		authors.POST("", r.authorHandler.CreateAuthor)
		authors.GET("/:id", r.authorHandler.GetAuthor)
		authors.PUT("/:id", r.authorHandler.UpdateAuthor)
		authors.DELETE("/:id", r.authorHandler.DeleteAuthor)
	}
}
