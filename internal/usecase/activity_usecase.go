package usecase

import (
	"context"

	"blog/internal/domain/service"
)

// ActivityUsecase records delivered content events in the activity log.
type ActivityUsecase interface {
	// RecordContentEvent stores the event under messageID. Recording the same
	// messageID twice is not an error.
	RecordContentEvent(ctx context.Context, messageID string, event *service.ContentEvent) error
}
