package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins aggregate timestamps for deterministic assertions.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// stubNumbers returns a constant order number.
type stubNumbers struct {
	number string
}

func (s stubNumbers) OrderNumber(time.Time) string { return s.number }

var testTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testClock() Clock { return fixedClock{t: testTime} }

func TestNewBase(t *testing.T) {
	base := NewBase(testClock())

	assert.NotEqual(t, base.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, testTime, base.CreatedAt)
	assert.Equal(t, 0, base.Version)
	assert.Nil(t, base.UpdatedAt)
	assert.False(t, base.IsDeleted)
}

func TestBaseNilClockFallsBack(t *testing.T) {
	base := NewBase(nil)
	assert.False(t, base.CreatedAt.IsZero())

	// A rehydrated entity has no clock; now() must still work.
	var rehydrated Base
	assert.False(t, rehydrated.now().IsZero())
}

func TestMarkDeleted(t *testing.T) {
	base := NewBase(testClock())
	base.MarkDeleted()

	assert.True(t, base.IsDeleted)
	require.NotNil(t, base.DeletedAt)
	assert.Equal(t, testTime, *base.DeletedAt)
	require.NotNil(t, base.UpdatedAt)
}

func TestEventBufferDrainOnce(t *testing.T) {
	base := NewBase(testClock())
	base.record(OrderCompleted{})
	base.record(OrderCancelled{})

	pending := base.PendingEvents()
	require.Len(t, pending, 2)

	// PendingEvents returns a copy, not the buffer.
	pending[0] = nil
	assert.NotNil(t, base.PendingEvents()[0])

	drained := base.DrainEvents()
	require.Len(t, drained, 2)
	assert.Equal(t, "OrderCompleted", drained[0].EventType())
	assert.Equal(t, "OrderCancelled", drained[1].EventType())

	assert.Empty(t, base.DrainEvents())
	assert.Empty(t, base.PendingEvents())
}
