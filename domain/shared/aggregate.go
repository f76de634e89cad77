package shared

// AggregateRoot is the entry point of an aggregate. All modifications to
// entities inside the aggregate go through it, and it records the domain
// events produced by those modifications.
type AggregateRoot interface {
	// ID returns the globally unique identifier of the aggregate root.
	ID() string

	// Version returns the persistence version used for last-write-wins
	// bookkeeping by the storage layer.
	Version() int

	// PullEvents returns and clears the recorded domain events.
	// The caller publishes them after a successful save.
	PullEvents() []DomainEvent
}

// Entity has identity; equality is by ID, not by attribute values.
type Entity interface {
	ID() string
}
