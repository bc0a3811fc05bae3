package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"blog/config"
	apimiddleware "blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router"
	"blog/internal/delivery/api/router/handler"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/infra/auth"
	"blog/internal/infra/pubsub"
	"blog/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "scenario-secret"

// memoryStore is an in-memory AuthorRepository and PostRepository.
type memoryStore struct {
	mu           sync.Mutex
	nextAuthorID int64
	nextPostID   int64
	authors      map[int64]entity.Author
	posts        map[int64]entity.Post
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		authors: map[int64]entity.Author{},
		posts:   map[int64]entity.Post{},
	}
}

type memoryAuthors struct{ *memoryStore }

type memoryPosts struct{ *memoryStore }

func (s memoryAuthors) FindByID(_ context.Context, id int64) (*entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.authors[id]
	if !ok {
		return nil, repository.ErrAuthorNotFound
	}

	return &a, nil
}

func (s memoryAuthors) FindByName(_ context.Context, name string) (*entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.authors {
		if a.Name == name {
			return &a, nil
		}
	}

	return nil, repository.ErrAuthorNotFound
}

func (s memoryAuthors) FindAll(_ context.Context) ([]*entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Author, 0, len(s.authors))
	for id := int64(1); id <= s.nextAuthorID; id++ {
		if a, ok := s.authors[id]; ok {
			out = append(out, &a)
		}
	}

	return out, nil
}

func (s memoryAuthors) Create(_ context.Context, author *entity.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAuthorID++
	author.ID = s.nextAuthorID
	s.authors[author.ID] = *author

	return nil
}

func (s memoryAuthors) UpdateProfile(_ context.Context, id int64, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.authors[id]
	if !ok {
		return repository.ErrAuthorNotFound
	}
	a.Name, a.Email = name, email
	s.authors[id] = a

	return nil
}

func (s memoryAuthors) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[id]; !ok {
		return repository.ErrAuthorNotFound
	}
	delete(s.authors, id)

	return nil
}

func (s memoryPosts) FindByID(_ context.Context, id int64) (*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}

	return &p, nil
}

func (s memoryPosts) FindAll(_ context.Context) ([]*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Post, 0, len(s.posts))
	for id := int64(1); id <= s.nextPostID; id++ {
		if p, ok := s.posts[id]; ok {
			out = append(out, &p)
		}
	}

	return out, nil
}

func (s memoryPosts) Create(_ context.Context, post *entity.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPostID++
	post.ID = s.nextPostID
	s.posts[post.ID] = *post

	return nil
}

func (s memoryPosts) UpdateTitle(_ context.Context, id int64, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return repository.ErrPostNotFound
	}
	p.Title = title
	s.posts[id] = p

	return nil
}

func (s memoryPosts) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(s.posts, id)

	return nil
}

type testApp struct {
	e     *echo.Echo
	store *memoryStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = testSecret

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newMemoryStore()
	authors := memoryAuthors{store}
	posts := memoryPosts{store}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	matcher := auth.NewPlaintextMatcher()
	publisher := pubsub.NewNoopPublisher(logger)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		AuthorRepo:   authors,
		Matcher:      matcher,
		TokenService: tokenService,
		Logger:       logger,
	})
	authorUC := impl.NewAuthorService(impl.AuthorServiceParams{
		AuthorRepo: authors,
		Matcher:    matcher,
		Publisher:  publisher,
		Logger:     logger,
	})
	postUC := impl.NewPostService(impl.PostServiceParams{
		PostRepo:  posts,
		Publisher: publisher,
		Logger:    logger,
	})

	e := newEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		AuthorHandler:  handler.NewAuthorHandler(handler.AuthorHandlerParams{AuthorUC: authorUC, Logger: logger}),
		PostHandler:    handler.NewPostHandler(handler.PostHandlerParams{PostUC: postUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(authUC, logger),
	})

	// The first author has to exist before anyone can log in.
	require.NoError(t, authors.Create(context.Background(), &entity.Author{Name: "admin", Email: "admin@blog", Password: "root", Admin: true}))

	return &testApp{e: e, store: store}
}

func (a *testApp) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(apimiddleware.HeaderAccessToken, token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func (a *testApp) login(t *testing.T, name, password string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.SetBasicAuth(name, password)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func (a *testApp) token(t *testing.T, name, password string) string {
	t.Helper()

	rec := a.login(t, name, password)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	return body.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestScenario_CreateAuthorLoginAndList(t *testing.T) {
	app := newTestApp(t)
	admin := app.token(t, "admin", "root")

	rec := app.do(http.MethodPost, "/authors", admin, `{"name":"nando","password":"asdfgqwert","email":"n@n.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	nandoID := int64(decode(t, rec)["author_id"].(float64))

	token := app.token(t, "nando", "asdfgqwert")

	// The token decodes back to nando's id.
	claims := &service.Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, nandoID, claims.AuthorID)

	rec = app.do(http.MethodGet, "/authors", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `{"author_id":`+strconv.FormatInt(nandoID, 10)+`,"name":"nando","email":"n@n.com"}`)
	assert.NotContains(t, rec.Body.String(), "asdfgqwert")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestScenario_PostLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := app.token(t, "admin", "root")

	rec := app.do(http.MethodPost, "/posts", token, `{"title":"Hello","author_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	path := "/posts/" + strconv.FormatInt(int64(decode(t, rec)["post_id"].(float64)), 10)

	rec = app.do(http.MethodGet, path, token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	post := decode(t, rec)["posts"].(map[string]any)
	assert.Equal(t, "Hello", post["title"])
	assert.EqualValues(t, 1, post["author_id"])

	rec = app.do(http.MethodDelete, path, token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodGet, path, token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Post not found", decode(t, rec)["message"])

	for range 2 {
		rec = app.do(http.MethodDelete, path, token, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestScenario_EveryProtectedRouteNeedsToken(t *testing.T) {
	app := newTestApp(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/posts"},
		{http.MethodGet, "/posts/1"},
		{http.MethodPost, "/posts"},
		{http.MethodPut, "/posts/1"},
		{http.MethodDelete, "/posts/1"},
		{http.MethodGet, "/authors"},
		{http.MethodGet, "/authors/1"},
		{http.MethodPost, "/authors"},
		{http.MethodPut, "/authors/1"},
		{http.MethodDelete, "/authors/1"},
	}

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		AuthorID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			rec := app.do(r.method, r.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"AUTH_REQUIRED"`)

			rec = app.do(r.method, r.path, forged, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"INVALID_TOKEN"`)
		})
	}
}

func TestScenario_TokenOfDeletedAuthorIsRejected(t *testing.T) {
	app := newTestApp(t)
	admin := app.token(t, "admin", "root")

	rec := app.do(http.MethodPost, "/authors", admin, `{"name":"temp","password":"pw","email":"t@t.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	tempID := strconv.FormatInt(int64(decode(t, rec)["author_id"].(float64)), 10)
	temp := app.token(t, "temp", "pw")

	require.Equal(t, http.StatusOK, app.do(http.MethodDelete, "/authors/"+tempID, admin, "").Code)

	rec = app.do(http.MethodGet, "/posts", temp, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INVALID_TOKEN"`)
}

func TestScenario_DeletingAuthorKeepsPosts(t *testing.T) {
	app := newTestApp(t)
	admin := app.token(t, "admin", "root")

	rec := app.do(http.MethodPost, "/authors", admin, `{"name":"writer","password":"pw","email":"w@w.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	writerID := strconv.FormatInt(int64(decode(t, rec)["author_id"].(float64)), 10)

	rec = app.do(http.MethodPost, "/posts", admin, `{"title":"Kept","author_id":`+writerID+`}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Equal(t, http.StatusOK, app.do(http.MethodDelete, "/authors/"+writerID, admin, "").Code)

	rec = app.do(http.MethodGet, "/posts", admin, "")
	assert.Contains(t, rec.Body.String(), `"title":"Kept"`)
}

func TestScenario_LoginFailuresLookAlike(t *testing.T) {
	app := newTestApp(t)

	wrong := app.login(t, "admin", "nope")
	unknown := app.login(t, "nobody", "nope")

	for _, rec := range []*httptest.ResponseRecorder{wrong, unknown} {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, `Basic realm="You must be logged in."`, rec.Header().Get(echo.HeaderWWWAuthenticate))
	}

	wrongBody, unknownBody := decode(t, wrong), decode(t, unknown)
	delete(wrongBody, "meta")
	delete(unknownBody, "meta")
	assert.Equal(t, wrongBody, unknownBody)
}

func TestScenario_HealthIsPublic(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
