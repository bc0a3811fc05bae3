package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Record relies on the unique message_id index to drop redeliveries.
func (repo *activityRepository) Record(ctx context.Context, activity *entity.Activity) (bool, error) {
	activityM := fromActivityDomain(activity)
	activityM.ID = 0

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoNothing: true,
		}).
		Create(activityM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record activity")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	activity.ID = activityM.ID

	return true, nil
}

func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:         data.ID,
		MessageID:  data.MessageID,
		EventType:  data.EventType,
		EntityID:   data.EntityID,
		ActorID:    data.ActorID,
		RequestID:  data.RequestID,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
}
