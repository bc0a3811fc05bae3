package impl

import (
	"io"
	"log/slog"
	"time"

	"blog/internal/domain/entity"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

func testActor() *entity.Author {
	return &entity.Author{ID: 1, Name: "nando", Email: "n@n.com"}
}
