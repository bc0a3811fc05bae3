package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/errors"
	"blog/internal/usecase"

	"go.uber.org/fx"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
	now          func() time.Time
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *activityService) RecordContentEvent(ctx context.Context, messageID string, event *service.ContentEvent) error {
	if event == nil || !event.Type.Valid() {
		return domainerrors.ErrUnknownEventType
	}
	if strings.TrimSpace(messageID) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("message id is required")
	}

	activity := &entity.Activity{
		MessageID:  messageID,
		EventType:  string(event.Type),
		EntityID:   event.EntityID,
		ActorID:    event.ActorID,
		RequestID:  event.RequestID,
		OccurredAt: event.OccurredAt,
		ReceivedAt: srv.now().UTC(),
	}
	if activity.OccurredAt.IsZero() {
		activity.OccurredAt = activity.ReceivedAt
	}

	recorded, err := srv.activityRepo.Record(ctx, activity)
	if err != nil {
		return errors.Wrap(err, "failed to record activity")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if !recorded {
		logger.Info("Content event already recorded, skipping",
			slog.String("message_id", messageID),
		)

		return nil
	}

	logger.Info("Content event recorded",
		slog.Int64("activity_id", activity.ID),
		slog.String("event_type", activity.EventType),
		slog.Int64("entity_id", activity.EntityID),
		slog.Int64("actor_id", activity.ActorID),
	)

	return nil
}
