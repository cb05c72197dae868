//go:build unit

package booking_test

import (
	"testing"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_Cancel(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	deadline := 2 * time.Hour

	t.Run("allowed outside the deadline", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildPersisted()
		eventStart := now.Add(3 * time.Hour)

		require.NoError(t, b.Cancel(now, eventStart, deadline))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledAt())
		assert.Equal(t, now, *b.CancelledAt())
	})

	t.Run("blocked inside the deadline", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildPersisted()
		eventStart := now.Add(1 * time.Hour)

		err := b.Cancel(now, eventStart, deadline)

		require.ErrorIs(t, err, booking.ErrCancelWindowClosed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Nil(t, b.CancelledAt())
	})

	t.Run("exactly at the deadline still allowed", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildPersisted()
		eventStart := now.Add(deadline)

		require.NoError(t, b.Cancel(now, eventStart, deadline))
	})

	t.Run("already cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsCancelled().BuildPersisted()

		err := b.Cancel(now, now.Add(24*time.Hour), deadline)

		require.ErrorIs(t, err, booking.ErrAlreadyCancelled)
	})
}

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		assert.True(t, booking.StatusConfirmed.IsValid())
		assert.True(t, booking.StatusCancelled.IsValid())
		assert.False(t, booking.Status("waitlisted").IsValid())
	})

	t.Run("transitions", func(t *testing.T) {
		assert.True(t, booking.StatusConfirmed.CanTransitionTo(booking.StatusCancelled))
		assert.False(t, booking.StatusCancelled.CanTransitionTo(booking.StatusConfirmed))
		assert.False(t, booking.StatusConfirmed.CanTransitionTo(booking.StatusConfirmed))
	})
}

func TestNewBooking(t *testing.T) {
	b := builder.NewBookingBuilder()
	actual := booking.NewBooking(b.OrgID, b.EventID, b.PersonID)

	assert.Equal(t, booking.StatusConfirmed, actual.Status())
	assert.True(t, actual.IsConfirmed())
	assert.Equal(t, b.OrgID, actual.OrgID())
	assert.Equal(t, b.EventID, actual.EventID())
	assert.Equal(t, b.PersonID, actual.PersonID())
	assert.Nil(t, actual.CancelledAt())
}
