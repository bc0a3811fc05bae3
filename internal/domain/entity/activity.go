package entity

import "time"

// Activity is one content event as recorded by the event worker.
type Activity struct {
	ID         int64
	MessageID  string // Delivery id of the message; a redelivery is recorded once.
	EventType  string
	EntityID   int64
	ActorID    int64
	RequestID  string
	OccurredAt time.Time
	ReceivedAt time.Time
}
