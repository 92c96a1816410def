package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/philbirt/event-staking/internal/monitoring/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestCollector_Tick_PublishesGauges(t *testing.T) {
	stats := mocks.NewMockStatsReader(t)
	log := newTestLogger(t)

	c := NewCollector(stats, 50*time.Millisecond, log)

	stats.EXPECT().Stats(mock.Anything).Return(domain.LedgerStats{
		Events:              2,
		StakedReservations:  3,
		SettledReservations: 1,
		EscrowTotal:         6,
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	c.Start(ctx)

	assert.GreaterOrEqual(t, len(stats.Calls), 1)
}

func TestCollector_Tick_HandlesError(t *testing.T) {
	stats := mocks.NewMockStatsReader(t)
	log := newTestLogger(t)

	c := NewCollector(stats, 50*time.Millisecond, log)

	stats.EXPECT().Stats(mock.Anything).Return(domain.LedgerStats{}, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	c.Start(ctx)

	assert.GreaterOrEqual(t, len(stats.Calls), 1)
}

func TestCollector_StopsOnContextCancel(t *testing.T) {
	stats := mocks.NewMockStatsReader(t)
	log := newTestLogger(t)

	c := NewCollector(stats, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("collector did not stop on context cancel")
	}
}

func TestCollector_MultipleTicks(t *testing.T) {
	stats := mocks.NewMockStatsReader(t)
	log := newTestLogger(t)

	c := NewCollector(stats, 30*time.Millisecond, log)

	stats.EXPECT().Stats(mock.Anything).Return(domain.LedgerStats{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	c.Start(ctx)

	assert.GreaterOrEqual(t, len(stats.Calls), 3)
}
