package monitoring

import (
	"context"
	"time"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type statsReader interface {
	Stats(ctx context.Context) (domain.LedgerStats, error)
}

// Collector periodically publishes ledger gauges. It only reads; all fund
// movement stays inside the synchronous settlement calls.
type Collector struct {
	stats    statsReader
	interval time.Duration
	logger   logger.Logger
}

func NewCollector(stats statsReader, interval time.Duration, logger logger.Logger) *Collector {
	return &Collector{
		stats:    stats,
		interval: interval,
		logger:   logger,
	}
}

func (c *Collector) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info("metrics collector started",
		logger.Duration("interval", c.interval),
	)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("metrics collector stopped")
			return
		case <-ticker.C:
			c.tick(ctx)
		}
	}
}

func (c *Collector) tick(ctx context.Context) {
	stats, err := c.stats.Stats(ctx)
	if err != nil {
		c.logger.Error("failed to collect ledger stats",
			logger.String("error", err.Error()),
		)
		return
	}

	eventsTotal.Set(float64(stats.Events))
	stakedReservations.Set(float64(stats.StakedReservations))
	settledReservations.Set(float64(stats.SettledReservations))
	escrowTotal.Set(float64(stats.EscrowTotal))
}
