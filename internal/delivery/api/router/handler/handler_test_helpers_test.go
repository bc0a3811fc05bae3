package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"blog/internal/delivery/api/validator"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testAuthor = &entity.Author{ID: 1, Name: "nando", Email: "n@n.com"}

// newTestContext builds an authenticated echo context. id is set as the :id
// path parameter when non-empty.
func newTestContext(method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	deliverycontext.SetRequestID(c, "req-test")
	deliverycontext.SetActiveAuthor(c, testAuthor)

	return c, rec
}
