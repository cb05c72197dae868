//go:build unit

package schedule_test

import (
	"strings"
	"testing"

	"studiobook/internal/domain/schedule"
	"studiobook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		actual, err := builder.NewEventBuilder().BuildDomain()

		require.NoError(t, err)
		require.NotNil(t, actual)
		assert.Equal(t, "Morning Yoga", actual.Title())
		assert.Equal(t, schedule.KindGroup, actual.Kind())
		assert.Equal(t, int32(10), actual.Capacity())
	})

	testCases := []struct {
		name   string
		mutate func(*builder.EventBuilder)
		errIs  error
	}{
		{
			name:   "empty title",
			mutate: func(b *builder.EventBuilder) { b.Title = "  " },
			errIs:  schedule.ErrEmptyTitle,
		},
		{
			name:   "title too long",
			mutate: func(b *builder.EventBuilder) { b.Title = strings.Repeat("x", 141) },
			errIs:  schedule.ErrTitleTooLong,
		},
		{
			name:   "negative capacity",
			mutate: func(b *builder.EventBuilder) { b.Capacity = -1 },
			errIs:  schedule.ErrNegativeCapacity,
		},
		{
			name:   "zero capacity allowed as resource default marker",
			mutate: func(b *builder.EventBuilder) { b.Capacity = 0 },
		},
		{
			name:   "invalid kind",
			mutate: func(b *builder.EventBuilder) { b.Kind = "workshop" },
			errIs:  schedule.ErrInvalidKind,
		},
		{
			name:   "inverted window",
			mutate: func(b *builder.EventBuilder) { b.WithWindow(11, 10) },
			errIs:  schedule.ErrInvalidTimeSlot,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewEventBuilder().With(tc.mutate).BuildDomain()

			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestEvent_Reschedule(t *testing.T) {
	ev := builder.NewEventBuilder().BuildPersisted()
	newSlot := slot(t, 14, 15)

	require.NoError(t, ev.Reschedule(ev.ResourceID(), newSlot))
	assert.Equal(t, newSlot, ev.Slot())

	err := ev.Reschedule(ev.ResourceID(), schedule.TimeSlot{})
	require.ErrorIs(t, err, schedule.ErrInvalidTimeSlot)
}

func TestEvent_SetCapacity(t *testing.T) {
	ev := builder.NewEventBuilder().BuildPersisted()

	require.NoError(t, ev.SetCapacity(0))
	assert.Equal(t, int32(0), ev.Capacity())

	require.ErrorIs(t, ev.SetCapacity(-5), schedule.ErrNegativeCapacity)
}
