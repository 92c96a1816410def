package service

import (
	"context"
	"fmt"
	"time"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/philbirt/event-staking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SettlementService runs the three escrow operations: reserve, check-in and
// sweep. The storage layer applies each one atomically; the service
// orchestrates, logs and notifies. The clock is injected so the window
// gates are deterministic under test.
type SettlementService struct {
	reservationRepo ports.ReservationRepo
	eventRepo       ports.EventRepo
	notifier        ports.EscrowNotifier
	logger          logger.Logger
	now             func() time.Time
}

func NewSettlementService(
	reservationRepo ports.ReservationRepo,
	eventRepo ports.EventRepo,
	notifier ports.EscrowNotifier,
	logger logger.Logger,
	now func() time.Time,
) *SettlementService {
	if now == nil {
		now = time.Now
	}
	return &SettlementService{
		reservationRepo: reservationRepo,
		eventRepo:       eventRepo,
		notifier:        notifier,
		logger:          logger,
		now:             now,
	}
}

// Reserve stakes amount for the participant. The full amount sent is
// escrowed, overpayment included, and tracked per participant so check-in
// later refunds exactly what was staked.
func (s *SettlementService) Reserve(ctx context.Context, eventID int64, participant string, amount int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}

	if err = s.reservationRepo.Reserve(ctx, eventID, participant, amount); err != nil {
		return fmt.Errorf("reserve: %w", err)
	}

	s.logger.Info("slot reserved",
		logger.Int64("event_id", eventID),
		logger.String("participant", participant),
		logger.Int64("amount", amount),
	)

	go s.notifier.NotifyReserved(context.WithoutCancel(ctx), event, participant, amount)

	return nil
}

// CheckIn settles the participant's stake. It only succeeds while the event
// is in progress; the refund is the exact amount this participant staked.
func (s *SettlementService) CheckIn(ctx context.Context, eventID int64, participant string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}

	refund, err := s.reservationRepo.CheckIn(ctx, eventID, participant, s.now())
	if err != nil {
		return fmt.Errorf("check in: %w", err)
	}

	s.logger.Info("participant checked in",
		logger.Int64("event_id", eventID),
		logger.String("participant", participant),
		logger.Int64("refund", refund),
	)

	go s.notifier.NotifyCheckedIn(context.WithoutCancel(ctx), event, participant)

	return nil
}

// Sweep pays the event's remaining escrow out to its owner. Only the owner
// may sweep, only after the window closed, and only while escrow is
// nonzero, so a second sweep fails rather than moving zero.
func (s *SettlementService) Sweep(ctx context.Context, eventID int64, caller string) (int64, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("check event: %w", err)
	}

	amount, err := s.reservationRepo.Sweep(ctx, eventID, caller, s.now())
	if err != nil {
		return 0, fmt.Errorf("sweep: %w", err)
	}

	s.logger.Info("escrow swept",
		logger.Int64("event_id", eventID),
		logger.String("owner", caller),
		logger.Int64("amount", amount),
	)

	go s.notifier.NotifySwept(context.WithoutCancel(ctx), event, amount)

	return amount, nil
}

func (s *SettlementService) Reservation(ctx context.Context, eventID int64, participant string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByEventAndParticipant(ctx, eventID, participant)
}

func (s *SettlementService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByEvent(ctx, eventID)
}

func (s *SettlementService) ListByParticipant(ctx context.Context, participant string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByParticipant(ctx, participant)
}
