package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event represents a domain event raised by an aggregate.
type Event interface {
	EventType() string
}

// Clock supplies the current time to aggregates so tests can run
// against deterministic timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by wall-clock time.
func SystemClock() Clock { return systemClock{} }

// Base provides identity, optimistic-concurrency version, audit
// timestamps, the soft-delete marker and the pending-event buffer
// shared by all aggregates.
type Base struct {
	ID        uuid.UUID  `json:"id"`
	Version   int        `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	IsDeleted bool       `json:"is_deleted"`

	clock  Clock
	events []Event
}

// NewBase assigns a fresh id and creation timestamp.
func NewBase(clock Clock) Base {
	if clock == nil {
		clock = SystemClock()
	}
	return Base{
		ID:        uuid.New(),
		CreatedAt: clock.Now(),
		clock:     clock,
	}
}

// SetClock replaces the entity's clock, e.g. after loading from
// storage where the clock is not persisted.
func (b *Base) SetClock(clock Clock) {
	b.clock = clock
}

// now falls back to the system clock so rehydrated entities never
// produce zero timestamps.
func (b *Base) now() time.Time {
	if b.clock == nil {
		b.clock = SystemClock()
	}
	return b.clock.Now()
}

// touch records a mutation timestamp.
func (b *Base) touch() {
	now := b.now()
	b.UpdatedAt = &now
}

// MarkDeleted soft-deletes the entity.
func (b *Base) MarkDeleted() {
	now := b.now()
	b.DeletedAt = &now
	b.IsDeleted = true
	b.UpdatedAt = &now
}

// record appends a domain event to the pending buffer.
func (b *Base) record(e Event) {
	b.events = append(b.events, e)
}

// PendingEvents returns a copy of the events raised since the last
// drain, in emission order.
func (b *Base) PendingEvents() []Event {
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// DrainEvents returns the pending events and clears the buffer.
// Callers must drain only after the aggregate has been durably saved,
// and exactly once per save.
func (b *Base) DrainEvents() []Event {
	drained := b.events
	b.events = nil
	return drained
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
