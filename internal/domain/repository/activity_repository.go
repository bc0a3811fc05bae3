package repository

import (
	"context"

	"blog/internal/domain/entity"
)

// ActivityRepository stores the content activity log written by the event worker.
type ActivityRepository interface {
	// Record inserts the activity and sets its ID. It reports false, with no
	// error, when an activity with the same MessageID was already recorded.
	Record(ctx context.Context, activity *entity.Activity) (bool, error)
}
