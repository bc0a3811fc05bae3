package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	"blog/internal/domain/service"
)

// contentEvents publishes change notifications after a committed write.
// Publish failures are logged and swallowed.
type contentEvents struct {
	publisher service.EventPublisher
	now       func() time.Time
}

func (ev contentEvents) publish(ctx context.Context, logger *slog.Logger, eventType service.ContentEventType, entityID int64, actor *entity.Author) {
	if ev.publisher == nil {
		return
	}

	event := &service.ContentEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: ev.now().UTC(),
	}
	if actor != nil {
		event.ActorID = actor.ID
	}

	if err := ev.publisher.PublishContentEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish content event",
			slog.String("event_type", string(eventType)),
			slog.Int64("entity_id", entityID),
			slog.Any("error", err),
		)
	}
}
