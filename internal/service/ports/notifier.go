package ports

import (
	"context"

	"github.com/philbirt/event-staking/internal/domain"
)

type EscrowNotifier interface {
	NotifyEventCreated(ctx context.Context, event *domain.Event)
	NotifyReserved(ctx context.Context, event *domain.Event, participant string, amount int64)
	NotifyCheckedIn(ctx context.Context, event *domain.Event, participant string)
	NotifySwept(ctx context.Context, event *domain.Event, amount int64)
}
