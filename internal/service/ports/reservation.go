package ports

import (
	"context"
	"time"

	"github.com/philbirt/event-staking/internal/domain"
)

// ReservationRepo owns the escrow state machine's mutations. Each of the
// three settlement operations is atomic: status, escrow balance and wallet
// movement commit together or not at all, with the wallet credit ordered
// after all bookkeeping.
type ReservationRepo interface {
	// Reserve stakes amount for the participant: debits their wallet,
	// creates a staked reservation and grows the event's escrow balance.
	Reserve(ctx context.Context, eventID int64, participant string, amount int64) error
	// CheckIn settles the participant's reservation at the given instant
	// and returns the refunded stake.
	CheckIn(ctx context.Context, eventID int64, participant string, at time.Time) (int64, error)
	// Sweep drains the event's remaining escrow to the caller (must be the
	// owner) and returns the swept amount.
	Sweep(ctx context.Context, eventID int64, caller string, at time.Time) (int64, error)

	GetByEventAndParticipant(ctx context.Context, eventID int64, participant string) (*domain.Reservation, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Reservation, error)
	ListByParticipant(ctx context.Context, participant string) ([]*domain.Reservation, error)
}
