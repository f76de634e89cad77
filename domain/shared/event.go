package shared

import (
	"fmt"
	"time"
)

// DomainEvent is a fact recorded by an aggregate when its state changes.
type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
	GetAggregateID() string
}

// EventPublisher delivers domain events pulled from an aggregate after a
// successful save. Publishing is synchronous and best-effort; there is no
// outbox or relay in this system.
type EventPublisher interface {
	Publish(event DomainEvent) error
}

// BaseEvent carries the fields common to all domain events.
// Subdomain events embed it and add their own payload.
type BaseEvent struct {
	Name        string    `json:"name"`
	AggregateID string    `json:"aggregate_id"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewBaseEvent creates the common part of a domain event.
func NewBaseEvent(name, aggregateID string) BaseEvent {
	return BaseEvent{
		Name:        name,
		AggregateID: aggregateID,
		Timestamp:   time.Now(),
	}
}

func (e BaseEvent) EventName() string      { return e.Name }
func (e BaseEvent) OccurredOn() time.Time  { return e.Timestamp }
func (e BaseEvent) GetAggregateID() string { return e.AggregateID }

// ValidateEvent checks the minimal well-formedness of a domain event.
func ValidateEvent(event DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.EventName() == "" {
		return fmt.Errorf("event name cannot be empty")
	}
	if event.GetAggregateID() == "" {
		return fmt.Errorf("aggregate ID cannot be empty")
	}
	if event.OccurredOn().IsZero() {
		return fmt.Errorf("occurred on time cannot be zero")
	}
	return nil
}
