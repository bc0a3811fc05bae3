package service

import (
	"context"
	"time"
)

// ContentEventType names a change to a post or an author.
type ContentEventType string

const (
	EventPostCreated   ContentEventType = "post.created"
	EventPostUpdated   ContentEventType = "post.updated"
	EventPostDeleted   ContentEventType = "post.deleted"
	EventAuthorCreated ContentEventType = "author.created"
	EventAuthorUpdated ContentEventType = "author.updated"
	EventAuthorDeleted ContentEventType = "author.deleted"
)

// Valid reports whether t is one of the known event types.
func (t ContentEventType) Valid() bool {
	switch t {
	case EventPostCreated, EventPostUpdated, EventPostDeleted,
		EventAuthorCreated, EventAuthorUpdated, EventAuthorDeleted:
		return true
	}

	return false
}

// ContentEvent is published after a write to the store has succeeded.
type ContentEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       ContentEventType `json:"type"`
	EntityID   int64            `json:"entity_id"`
	ActorID    int64            `json:"actor_id"` // Author whose token made the change
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing content events to a message queue
type EventPublisher interface {
	PublishContentEvent(ctx context.Context, event *ContentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
