package model

import "time"

// ActivityModel is the GORM-specific struct for the 'content_activities' table.
type ActivityModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	MessageID  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	EventType  string    `gorm:"type:varchar(64);not null;index"`
	EntityID   int64     `gorm:"not null"`
	ActorID    int64     `gorm:"not null;index"`
	RequestID  string    `gorm:"type:varchar(255)"`
	OccurredAt time.Time `gorm:"not null"`
	ReceivedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "content_activities"
}
