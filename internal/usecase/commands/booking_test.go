//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/schedule"
	"studiobook/internal/infra"
	"studiobook/internal/pkg/clock"
	"studiobook/internal/pkg/config"
	"studiobook/internal/usecase/commands"
	"studiobook/internal/usecase/shared"
	"studiobook/tests/common/builder"
	sharedmock "studiobook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	events   *sharedmock.MockEventRepository
	bookings *sharedmock.MockBookingRepository
	clock    *clock.MockClock
	commands commands.BookingCommands

	orgID   uuid.UUID
	eventID uuid.UUID
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.events = sharedmock.NewMockEventRepository(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.clock = clock.NewMockClock(at(8))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Events().Return(s.events).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()

	s.commands = commands.NewBookingUseCase(s.uow, s.clock, config.BookingConfig{
		CancelDeadline: 2 * time.Hour,
	})

	s.orgID = uuid.New()
	s.eventID = uuid.New()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BookingCommandsTestSuite) snapshot(kind schedule.EventKind, capacity, resourceCapacity int32) booking.EventSnapshot {
	return booking.EventSnapshot{
		ID:               s.eventID,
		Kind:             kind,
		Capacity:         capacity,
		ResourceCapacity: resourceCapacity,
	}
}

func (s *BookingCommandsTestSuite) createRequest() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		EventID:  s.eventID,
		PersonID: uuid.New(),
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("success: admits while seats remain", func() {
		s.SetupTest()
		s.events.EXPECT().LockForAdmission(gomock.Any(), s.orgID, s.eventID).
			Return(s.snapshot(schedule.KindGroup, 2, 20), at(12), nil)
		s.bookings.EXPECT().CountConfirmed(gomock.Any(), s.orgID, s.eventID, nil).
			Return(int64(1), nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil)

		result, err := s.commands.CreateBooking(context.Background(), s.createRequest(), s.orgID)

		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, result.BookingID)
	})

	s.Run("error: full event rejected without persisting", func() {
		s.SetupTest()
		s.events.EXPECT().LockForAdmission(gomock.Any(), s.orgID, s.eventID).
			Return(s.snapshot(schedule.KindGroup, 2, 20), at(12), nil)
		s.bookings.EXPECT().CountConfirmed(gomock.Any(), s.orgID, s.eventID, nil).
			Return(int64(2), nil)
		// No Create expectation: an over-capacity admission must never persist.

		_, err := s.commands.CreateBooking(context.Background(), s.createRequest(), s.orgID)

		s.ErrorIs(err, commands.ErrEventFull)
	})

	s.Run("error: individual events admit exactly one regardless of stored capacity", func() {
		s.SetupTest()
		s.events.EXPECT().LockForAdmission(gomock.Any(), s.orgID, s.eventID).
			Return(s.snapshot(schedule.KindIndividual, 10, 30), at(12), nil)
		s.bookings.EXPECT().CountConfirmed(gomock.Any(), s.orgID, s.eventID, nil).
			Return(int64(1), nil)

		_, err := s.commands.CreateBooking(context.Background(), s.createRequest(), s.orgID)

		s.ErrorIs(err, commands.ErrEventFull)
	})

	s.Run("success: zero event capacity falls back to resource capacity", func() {
		s.SetupTest()
		s.events.EXPECT().LockForAdmission(gomock.Any(), s.orgID, s.eventID).
			Return(s.snapshot(schedule.KindGroup, 0, 8), at(12), nil)
		s.bookings.EXPECT().CountConfirmed(gomock.Any(), s.orgID, s.eventID, nil).
			Return(int64(7), nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil)

		_, err := s.commands.CreateBooking(context.Background(), s.createRequest(), s.orgID)

		s.NoError(err)
	})

	s.Run("error: fallback capacity exhausted", func() {
		s.SetupTest()
		s.events.EXPECT().LockForAdmission(gomock.Any(), s.orgID, s.eventID).
			Return(s.snapshot(schedule.KindGroup, 0, 8), at(12), nil)
		s.bookings.EXPECT().CountConfirmed(gomock.Any(), s.orgID, s.eventID, nil).
			Return(int64(8), nil)

		_, err := s.commands.CreateBooking(context.Background(), s.createRequest(), s.orgID)

		s.ErrorIs(err, commands.ErrEventFull)
	})

	s.Run("error: duplicate person on the same event", func() {
		s.SetupTest()
		s.events.EXPECT().LockForAdmission(gomock.Any(), s.orgID, s.eventID).
			Return(s.snapshot(schedule.KindGroup, 5, 20), at(12), nil)
		s.bookings.EXPECT().CountConfirmed(gomock.Any(), s.orgID, s.eventID, nil).
			Return(int64(0), nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert failed", nil, infra.KindDuplicateKey))

		_, err := s.commands.CreateBooking(context.Background(), s.createRequest(), s.orgID)

		s.ErrorIs(err, commands.ErrDuplicateBooking)
	})

	s.Run("error: missing event", func() {
		s.SetupTest()
		s.events.EXPECT().LockForAdmission(gomock.Any(), s.orgID, s.eventID).
			Return(booking.EventSnapshot{}, time.Time{}, infra.WrapRepoErr("event not found", nil, infra.KindNotFound))

		_, err := s.commands.CreateBooking(context.Background(), s.createRequest(), s.orgID)

		s.ErrorIs(err, commands.ErrEventNotFound)
	})

	s.Run("error: unknown person maps foreign key violation", func() {
		s.SetupTest()
		s.events.EXPECT().LockForAdmission(gomock.Any(), s.orgID, s.eventID).
			Return(s.snapshot(schedule.KindGroup, 5, 20), at(12), nil)
		s.bookings.EXPECT().CountConfirmed(gomock.Any(), s.orgID, s.eventID, nil).
			Return(int64(0), nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert failed", nil, infra.KindForeignKeyViolated))

		_, err := s.commands.CreateBooking(context.Background(), s.createRequest(), s.orgID)

		s.ErrorIs(err, commands.ErrPersonNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	storedBooking := func() *booking.Booking {
		return builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.OrgID = s.orgID
				b.EventID = s.eventID
			}).
			BuildPersisted()
	}
	eventStartingAt := func(hour float64) *schedule.Event {
		return builder.NewEventBuilder().
			WithOrg(s.orgID).WithWindow(hour, hour+1).
			With(func(b *builder.EventBuilder) { b.ID = s.eventID }).
			BuildPersisted()
	}

	s.Run("success: capacity is never consulted on cancellation", func() {
		s.SetupTest()
		b := storedBooking()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), s.orgID, b.ID()).
			Return(b, nil)
		s.events.EXPECT().FindByID(gomock.Any(), s.orgID, s.eventID).
			Return(eventStartingAt(12), nil)
		// No CountConfirmed expectation: freeing a seat needs no admission check.
		s.bookings.EXPECT().SaveStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved *booking.Booking) error {
				s.Equal(booking.StatusCancelled, saved.Status())
				s.NotNil(saved.CancelledAt())
				return nil
			})

		s.NoError(s.commands.CancelBooking(context.Background(), b.ID(), s.orgID))
	})

	s.Run("error: window closed this close to the event", func() {
		s.SetupTest()
		b := storedBooking()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), s.orgID, b.ID()).
			Return(b, nil)
		// Clock reads 08:00; a 09:00 start is inside the 2h deadline.
		s.events.EXPECT().FindByID(gomock.Any(), s.orgID, s.eventID).
			Return(eventStartingAt(9), nil)

		err := s.commands.CancelBooking(context.Background(), b.ID(), s.orgID)

		s.ErrorIs(err, commands.ErrCancelWindowClosed)
	})

	s.Run("error: already cancelled", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) {
				bb.OrgID = s.orgID
				bb.EventID = s.eventID
			}).
			AsCancelled().
			BuildPersisted()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), s.orgID, b.ID()).
			Return(b, nil)
		s.events.EXPECT().FindByID(gomock.Any(), s.orgID, s.eventID).
			Return(eventStartingAt(12), nil)

		err := s.commands.CancelBooking(context.Background(), b.ID(), s.orgID)

		s.ErrorIs(err, commands.ErrAlreadyCancelled)
	})

	s.Run("error: missing booking", func() {
		s.SetupTest()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), s.orgID, gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := s.commands.CancelBooking(context.Background(), uuid.New(), s.orgID)

		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}
