package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/philbirt/event-staking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Owner:    "owner-1",
		Name:     "yakult event",
		Capacity: 1,
		Price:    1,
		StartsAt: time.Unix(1000, 0),
		Duration: 2000 * time.Second,
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockEscrowNotifier(t)
	svc := NewEventService(repo, notifier, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(1), nil)
	notifier.EXPECT().NotifyEventCreated(mock.Anything, mock.Anything).Return()

	event, err := svc.CreateEvent(context.Background(), validEventInput())

	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
	assert.Equal(t, "owner-1", event.Owner)
	assert.Equal(t, "yakult event", event.Name)
	assert.Zero(t, event.EscrowBalance)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_CreateEvent_ValidationOrder(t *testing.T) {
	// First failing field wins; the repo is never reached.
	svc := NewEventService(nil, nil, newTestLogger(t))

	cases := []struct {
		name    string
		mutate  func(*domain.CreateEventInput)
		wantErr error
	}{
		{"no capacity", func(in *domain.CreateEventInput) { in.Capacity = 0 }, domain.ErrMissingCapacity},
		{"no price", func(in *domain.CreateEventInput) { in.Price = 0 }, domain.ErrMissingPrice},
		{"no start time", func(in *domain.CreateEventInput) { in.StartsAt = time.Time{} }, domain.ErrMissingStartTime},
		{"no duration", func(in *domain.CreateEventInput) { in.Duration = 0 }, domain.ErrMissingDuration},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validEventInput()
			tc.mutate(&in)

			_, err := svc.CreateEvent(context.Background(), in)

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil, newTestLogger(t))

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(0), repoErr)

	_, err := svc.CreateEvent(context.Background(), validEventInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_Metadata_Known(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil, newTestLogger(t))

	repo.EXPECT().Metadata(mock.Anything, int64(1)).
		Return(domain.Metadata{Name: "yakult event", Owner: "owner-1"}, nil)

	meta, err := svc.Metadata(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "yakult event", meta.Name)
	assert.Equal(t, "owner-1", meta.Owner)
}

func TestEventService_Metadata_UnknownIsZero(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil, newTestLogger(t))

	repo.EXPECT().Metadata(mock.Anything, int64(42)).Return(domain.Metadata{}, nil)

	meta, err := svc.Metadata(context.Background(), 42)

	require.NoError(t, err, "metadata lookups never fail on unknown ids")
	assert.Empty(t, meta.Owner, "empty owner is the absence sentinel")
}

func TestEventService_Exists(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil, newTestLogger(t))

	repo.EXPECT().Metadata(mock.Anything, int64(1)).
		Return(domain.Metadata{Name: "yakult event", Owner: "owner-1"}, nil)
	repo.EXPECT().Metadata(mock.Anything, int64(42)).Return(domain.Metadata{}, nil)

	known, err := svc.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, known)

	unknown, err := svc.Exists(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, unknown)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil, newTestLogger(t))

	repo.EXPECT().GetDetails(mock.Anything, int64(7)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil, newTestLogger(t))

	events := []*domain.Event{{ID: 1}, {ID: 2}}
	repo.EXPECT().List(mock.Anything).Return(events, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
