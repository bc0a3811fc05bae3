package handler

import (
	"net/http"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	mockUsecase "blog/internal/mocks/usecase"
	"blog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPostHandler(t *testing.T) (*PostHandler, *mockUsecase.MockPostUsecase) {
	postUC := mockUsecase.NewMockPostUsecase(t)

	return NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: newDiscardLogger()}), postUC
}

func TestPostHandler_ListPosts(t *testing.T) {
	h, postUC := newTestPostHandler(t)
	postUC.EXPECT().ListPosts(mock.Anything).Return([]*entity.Post{{ID: 1, Title: "Hello", AuthorID: 1}}, nil)

	c, rec := newTestContext(http.MethodGet, "/posts", "", "")
	require.NoError(t, h.ListPosts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"posts":[{"post_id":1,"title":"Hello","author_id":1}],"meta":{"request_id":"req-test"}}`, rec.Body.String())
}

func TestPostHandler_ListPosts_Empty(t *testing.T) {
	h, postUC := newTestPostHandler(t)
	postUC.EXPECT().ListPosts(mock.Anything).Return(nil, nil)

	c, rec := newTestContext(http.MethodGet, "/posts", "", "")
	require.NoError(t, h.ListPosts(c))

	assert.Contains(t, rec.Body.String(), `"posts":[]`)
}

func TestPostHandler_GetPost(t *testing.T) {
	t.Run("found uses posts key", func(t *testing.T) {
		h, postUC := newTestPostHandler(t)
		postUC.EXPECT().GetPost(mock.Anything, int64(3)).Return(&entity.Post{ID: 3, Title: "Hello", AuthorID: 1}, nil)

		c, rec := newTestContext(http.MethodGet, "/posts/3", "", "3")
		require.NoError(t, h.GetPost(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"posts":{"post_id":3,"title":"Hello","author_id":1},"meta":{"request_id":"req-test"}}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		h, postUC := newTestPostHandler(t)
		postUC.EXPECT().GetPost(mock.Anything, int64(3)).Return(nil, domainerrors.ErrPostNotFound)

		c, rec := newTestContext(http.MethodGet, "/posts/3", "", "3")
		require.NoError(t, h.GetPost(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Post not found"`)
	})

	t.Run("non-integer id", func(t *testing.T) {
		h, _ := newTestPostHandler(t)

		c, rec := newTestContext(http.MethodGet, "/posts/abc", "", "abc")
		require.NoError(t, h.GetPost(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"INVALID_ID"`)
	})
}

func TestPostHandler_CreatePost(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, postUC := newTestPostHandler(t)
		postUC.EXPECT().
			CreatePost(mock.Anything, testAuthor, usecase.CreatePostInput{Title: "Hello", AuthorID: 1}).
			Return(&entity.Post{ID: 5, Title: "Hello", AuthorID: 1}, nil)

		c, rec := newTestContext(http.MethodPost, "/posts", `{"title":"Hello","author_id":1}`, "")
		require.NoError(t, h.CreatePost(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"New post created","post_id":5,"meta":{"request_id":"req-test"}}`, rec.Body.String())
	})

	t.Run("missing author_id", func(t *testing.T) {
		h, _ := newTestPostHandler(t)

		c, rec := newTestContext(http.MethodPost, "/posts", `{"title":"Hello"}`, "")
		require.NoError(t, h.CreatePost(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"VALIDATION_FAILED"`)
		assert.Contains(t, rec.Body.String(), "author_id is required")
	})

	t.Run("empty title counts as present", func(t *testing.T) {
		h, postUC := newTestPostHandler(t)
		postUC.EXPECT().
			CreatePost(mock.Anything, testAuthor, usecase.CreatePostInput{Title: "", AuthorID: 0}).
			Return(&entity.Post{ID: 6}, nil)

		c, rec := newTestContext(http.MethodPost, "/posts", `{"title":"","author_id":0}`, "")
		require.NoError(t, h.CreatePost(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("null title is missing", func(t *testing.T) {
		h, _ := newTestPostHandler(t)

		c, rec := newTestContext(http.MethodPost, "/posts", `{"title":null,"author_id":1}`, "")
		require.NoError(t, h.CreatePost(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "title is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTestPostHandler(t)

		c, rec := newTestContext(http.MethodPost, "/posts", `{"title":`, "")
		require.NoError(t, h.CreatePost(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"INVALID_INPUT"`)
	})
}

func TestPostHandler_UpdatePost(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		h, postUC := newTestPostHandler(t)
		postUC.EXPECT().UpdatePost(mock.Anything, testAuthor, int64(5), usecase.UpdatePostInput{Title: "New"}).Return(nil)

		c, rec := newTestContext(http.MethodPut, "/posts/5", `{"title":"New"}`, "5")
		require.NoError(t, h.UpdatePost(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Post updated"`)
	})

	t.Run("empty title", func(t *testing.T) {
		h, postUC := newTestPostHandler(t)
		postUC.EXPECT().UpdatePost(mock.Anything, testAuthor, int64(5), usecase.UpdatePostInput{Title: ""}).Return(nil)

		c, rec := newTestContext(http.MethodPut, "/posts/5", `{"title":""}`, "5")
		require.NoError(t, h.UpdatePost(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		h, _ := newTestPostHandler(t)

		c, rec := newTestContext(http.MethodPut, "/posts/5", `{}`, "5")
		require.NoError(t, h.UpdatePost(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostHandler_DeletePost(t *testing.T) {
	h, postUC := newTestPostHandler(t)
	postUC.EXPECT().DeletePost(mock.Anything, testAuthor, int64(5)).Return(nil).Once()
	postUC.EXPECT().DeletePost(mock.Anything, testAuthor, int64(5)).Return(domainerrors.ErrPostNotFound).Once()

	c, rec := newTestContext(http.MethodDelete, "/posts/5", "", "5")
	require.NoError(t, h.DeletePost(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodDelete, "/posts/5", "", "5")
	require.NoError(t, h.DeletePost(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
