package service

import (
	"context"
	"testing"
	"time"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/philbirt/event-staking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stakingEvent() *domain.Event {
	return &domain.Event{
		ID:       1,
		Owner:    "owner-1",
		Name:     "yakult event",
		Capacity: 2,
		Price:    2,
		StartsAt: time.Unix(1000, 0),
		Duration: 2000 * time.Second,
	}
}

func frozenClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestSettlementService_Reserve_Success(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockEscrowNotifier(t)

	svc := NewSettlementService(reservationRepo, eventRepo, notifier, newTestLogger(t), nil)

	event := stakingEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(event, nil)
	reservationRepo.EXPECT().Reserve(mock.Anything, int64(1), "p1", int64(2)).Return(nil)
	notifier.EXPECT().NotifyReserved(mock.Anything, event, "p1", int64(2)).Return()

	err := svc.Reserve(context.Background(), 1, "p1", 2)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestSettlementService_Reserve_EventNotFound(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewSettlementService(reservationRepo, eventRepo, nil, newTestLogger(t), nil)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(9)).Return(nil, domain.ErrEventNotFound)

	err := svc.Reserve(context.Background(), 9, "p1", 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestSettlementService_Reserve_RepoErrors(t *testing.T) {
	// Precondition failures surface unchanged so the handler can map them.
	for _, wantErr := range []error{
		domain.ErrPriceNotMet,
		domain.ErrAlreadyReserved,
		domain.ErrAlreadyCheckedIn,
		domain.ErrOverbooked,
		domain.ErrInsufficientFunds,
	} {
		t.Run(wantErr.Error(), func(t *testing.T) {
			reservationRepo := mocks.NewMockReservationRepo(t)
			eventRepo := mocks.NewMockEventRepo(t)

			svc := NewSettlementService(reservationRepo, eventRepo, nil, newTestLogger(t), nil)

			eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(stakingEvent(), nil)
			reservationRepo.EXPECT().Reserve(mock.Anything, int64(1), "p1", int64(2)).Return(wantErr)

			err := svc.Reserve(context.Background(), 1, "p1", 2)

			require.Error(t, err)
			assert.ErrorIs(t, err, wantErr)
		})
	}
}

func TestSettlementService_CheckIn_PassesInjectedClock(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockEscrowNotifier(t)

	inWindow := time.Unix(1500, 0)
	svc := NewSettlementService(reservationRepo, eventRepo, notifier, newTestLogger(t), frozenClock(inWindow))

	event := stakingEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(event, nil)
	reservationRepo.EXPECT().CheckIn(mock.Anything, int64(1), "p1", inWindow).Return(int64(2), nil)
	notifier.EXPECT().NotifyCheckedIn(mock.Anything, event, "p1").Return()

	err := svc.CheckIn(context.Background(), 1, "p1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestSettlementService_CheckIn_OutsideWindow(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	early := time.Unix(500, 0)
	svc := NewSettlementService(reservationRepo, eventRepo, nil, newTestLogger(t), frozenClock(early))

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(stakingEvent(), nil)
	reservationRepo.EXPECT().CheckIn(mock.Anything, int64(1), "p1", early).
		Return(int64(0), domain.ErrEventNotInProgress)

	err := svc.CheckIn(context.Background(), 1, "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotInProgress)
}

func TestSettlementService_CheckIn_NoReservation(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	at := time.Unix(1500, 0)
	svc := NewSettlementService(reservationRepo, eventRepo, nil, newTestLogger(t), frozenClock(at))

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(stakingEvent(), nil)
	reservationRepo.EXPECT().CheckIn(mock.Anything, int64(1), "ghost", at).
		Return(int64(0), domain.ErrReservationNotFound)

	err := svc.CheckIn(context.Background(), 1, "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestSettlementService_Sweep_Success(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockEscrowNotifier(t)

	afterEnd := time.Unix(4000, 0)
	svc := NewSettlementService(reservationRepo, eventRepo, notifier, newTestLogger(t), frozenClock(afterEnd))

	event := stakingEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(event, nil)
	reservationRepo.EXPECT().Sweep(mock.Anything, int64(1), "owner-1", afterEnd).Return(int64(4), nil)
	notifier.EXPECT().NotifySwept(mock.Anything, event, int64(4)).Return()

	amount, err := svc.Sweep(context.Background(), 1, "owner-1")

	require.NoError(t, err)
	assert.Equal(t, int64(4), amount)
	time.Sleep(50 * time.Millisecond)
}

func TestSettlementService_Sweep_NotCreator(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	afterEnd := time.Unix(4000, 0)
	svc := NewSettlementService(reservationRepo, eventRepo, nil, newTestLogger(t), frozenClock(afterEnd))

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(stakingEvent(), nil)
	reservationRepo.EXPECT().Sweep(mock.Anything, int64(1), "intruder", afterEnd).
		Return(int64(0), domain.ErrNotCreator)

	_, err := svc.Sweep(context.Background(), 1, "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotCreator)
}

func TestSettlementService_Sweep_NothingToWithdraw(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	afterEnd := time.Unix(4000, 0)
	svc := NewSettlementService(reservationRepo, eventRepo, nil, newTestLogger(t), frozenClock(afterEnd))

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(stakingEvent(), nil)
	reservationRepo.EXPECT().Sweep(mock.Anything, int64(1), "owner-1", afterEnd).
		Return(int64(0), domain.ErrNothingToWithdraw)

	_, err := svc.Sweep(context.Background(), 1, "owner-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNothingToWithdraw)
}

func TestSettlementService_ListByEvent(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)

	svc := NewSettlementService(reservationRepo, nil, nil, newTestLogger(t), nil)

	reservations := []*domain.Reservation{
		{EventID: 1, Participant: "p1", Status: domain.ReservationStaked, Amount: 2},
	}
	reservationRepo.EXPECT().ListByEvent(mock.Anything, int64(1)).Return(reservations, nil)

	result, err := svc.ListByEvent(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
