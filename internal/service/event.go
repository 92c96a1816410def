package service

import (
	"context"
	"fmt"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/philbirt/event-staking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// EventService is the registry: it creates and looks up event records.
// Records are append-only; capacity, price and the time window are frozen
// at creation.
type EventService struct {
	repo     ports.EventRepo
	notifier ports.EscrowNotifier
	logger   logger.Logger
}

func NewEventService(repo ports.EventRepo, notifier ports.EscrowNotifier, logger logger.Logger) *EventService {
	return &EventService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if err := domain.ValidateNewEvent(input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		Owner:    input.Owner,
		Name:     input.Name,
		Capacity: input.Capacity,
		Price:    input.Price,
		StartsAt: input.StartsAt,
		Duration: input.Duration,
	}

	id, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	event.ID = id

	s.logger.Info("event created",
		logger.Int64("event_id", event.ID),
		logger.String("owner", event.Owner),
		logger.Int("capacity", event.Capacity),
		logger.Int64("price", event.Price),
	)

	go s.notifier.NotifyEventCreated(context.WithoutCancel(ctx), event)

	return event, nil
}

// Metadata is the permissive lookup: an unknown id yields the zero value,
// not an error. Mutating paths go through GetByID, which is strict.
func (s *EventService) Metadata(ctx context.Context, id int64) (domain.Metadata, error) {
	return s.repo.Metadata(ctx, id)
}

// Exists probes the registry through the permissive read: a created event
// always has a non-empty owner.
func (s *EventService) Exists(ctx context.Context, id int64) (bool, error) {
	meta, err := s.repo.Metadata(ctx, id)
	if err != nil {
		return false, err
	}
	return meta.Owner != "", nil
}

func (s *EventService) GetDetails(ctx context.Context, id int64) (*domain.EventDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Stats(ctx context.Context) (domain.LedgerStats, error) {
	return s.repo.Stats(ctx)
}
