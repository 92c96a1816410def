package ports

import (
	"context"

	"github.com/philbirt/event-staking/internal/domain"
)

type EventRepo interface {
	// Create stores the event and returns the assigned id. Ids start at 1,
	// strictly increase and are never reused, even when a creation fails.
	Create(ctx context.Context, e *domain.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	// Metadata never fails on an unknown id: it returns the zero value and
	// callers probe existence through the empty owner field.
	Metadata(ctx context.Context, id int64) (domain.Metadata, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, id int64) (*domain.EventDetails, error)
	Stats(ctx context.Context) (domain.LedgerStats, error)
}
