// Package memory is the in-process storage driver: every port is served
// from owned maps behind one store-wide mutex, the single-global-lock
// variant of the per-event serialization the Postgres driver gets from row
// locks. It backs STORAGE_DRIVER=memory deployments and the scenario tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/philbirt/event-staking/internal/domain"
)

type reservationKey struct {
	eventID     int64
	participant string
}

type Store struct {
	mu           sync.Mutex
	nextEventID  int64
	events       map[int64]*domain.Event
	reservations map[reservationKey]*domain.Reservation
	wallets      map[string]*domain.Wallet
}

func NewStore() *Store {
	return &Store{
		nextEventID:  1,
		events:       make(map[int64]*domain.Event),
		reservations: make(map[reservationKey]*domain.Reservation),
		wallets:      make(map[string]*domain.Wallet),
	}
}

// --- EventRepo ---

func (s *Store) Create(_ context.Context, e *domain.Event) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextEventID
	s.nextEventID++

	stored := *e
	stored.ID = id
	stored.EscrowBalance = 0
	stored.CreatedAt = time.Now().UTC()
	s.events[id] = &stored

	return id, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	cp := *e
	return &cp, nil
}

func (s *Store) Metadata(_ context.Context, id int64) (domain.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return domain.Metadata{}, nil
	}

	return domain.Metadata{Name: e.Name, Owner: e.Owner}, nil
}

func (s *Store) List(_ context.Context) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]*domain.Event, 0, len(s.events))
	for id := int64(1); id < s.nextEventID; id++ {
		if e, ok := s.events[id]; ok {
			cp := *e
			res = append(res, &cp)
		}
	}

	return res, nil
}

func (s *Store) GetDetails(_ context.Context, id int64) (*domain.EventDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	d := &domain.EventDetails{Event: *e}
	for _, r := range s.reservations {
		if r.EventID != id {
			continue
		}
		d.Reservations = append(d.Reservations, *r)
		if r.Status == domain.ReservationStaked {
			d.StakedCount++
		}
	}
	d.SlotsLeft = e.Capacity - d.StakedCount

	return d, nil
}

func (s *Store) Stats(_ context.Context) (domain.LedgerStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.LedgerStats{Events: len(s.events)}
	for _, e := range s.events {
		stats.EscrowTotal += e.EscrowBalance
	}
	for _, r := range s.reservations {
		switch r.Status {
		case domain.ReservationStaked:
			stats.StakedReservations++
		case domain.ReservationSettled:
			stats.SettledReservations++
		}
	}

	return stats, nil
}

// --- ReservationRepo ---

func (s *Store) Reserve(_ context.Context, eventID int64, participant string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := s.events[eventID]
	key := reservationKey{eventID, participant}

	if err := domain.ValidateReserve(event, s.reservations[key], s.stakedCount(eventID), amount); err != nil {
		return err
	}

	wallet := s.wallets[participant]
	if wallet == nil || wallet.Balance < amount {
		return domain.ErrInsufficientFunds
	}

	// Every precondition passed; apply all effects under the same lock.
	wallet.Balance -= amount
	wallet.UpdatedAt = time.Now().UTC()
	s.reservations[key] = &domain.Reservation{
		EventID:     eventID,
		Participant: participant,
		Status:      domain.ReservationStaked,
		Amount:      amount,
		ReservedAt:  time.Now().UTC(),
	}
	event.EscrowBalance += amount

	return nil
}

func (s *Store) CheckIn(_ context.Context, eventID int64, participant string, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := s.events[eventID]
	reservation := s.reservations[reservationKey{eventID, participant}]

	if err := domain.ValidateCheckIn(event, reservation, at); err != nil {
		return 0, err
	}

	refund := reservation.Amount
	settled := at
	reservation.Status = domain.ReservationSettled
	reservation.SettledAt = &settled
	event.EscrowBalance -= refund
	s.credit(participant, refund)

	return refund, nil
}

func (s *Store) Sweep(_ context.Context, eventID int64, caller string, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := s.events[eventID]

	if err := domain.ValidateSweep(event, caller, at); err != nil {
		return 0, err
	}

	amount := event.EscrowBalance
	event.EscrowBalance = 0
	s.credit(caller, amount)

	return amount, nil
}

func (s *Store) GetByEventAndParticipant(_ context.Context, eventID int64, participant string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[reservationKey{eventID, participant}]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	cp := *r
	return &cp, nil
}

func (s *Store) ListByEvent(_ context.Context, eventID int64) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Reservation
	for _, r := range s.reservations {
		if r.EventID == eventID {
			cp := *r
			res = append(res, &cp)
		}
	}

	return res, nil
}

func (s *Store) ListByParticipant(_ context.Context, participant string) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Reservation
	for _, r := range s.reservations {
		if r.Participant == participant {
			cp := *r
			res = append(res, &cp)
		}
	}

	return res, nil
}

// --- WalletRepo ---

func (s *Store) Deposit(_ context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credit(accountID, amount)

	cp := *s.wallets[accountID]
	return &cp, nil
}

func (s *Store) Withdraw(_ context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.wallets[accountID]
	if w == nil || w.Balance < amount {
		return nil, domain.ErrInsufficientFunds
	}

	w.Balance -= amount
	w.UpdatedAt = time.Now().UTC()

	cp := *w
	return &cp, nil
}

func (s *Store) Balance(_ context.Context, accountID string) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wallets[accountID]
	if !ok {
		return &domain.Wallet{AccountID: accountID}, nil
	}

	cp := *w
	return &cp, nil
}

// callers hold s.mu
func (s *Store) stakedCount(eventID int64) int {
	n := 0
	for _, r := range s.reservations {
		if r.EventID == eventID && r.Status == domain.ReservationStaked {
			n++
		}
	}
	return n
}

// callers hold s.mu
func (s *Store) credit(accountID string, amount int64) {
	now := time.Now().UTC()
	w, ok := s.wallets[accountID]
	if !ok {
		s.wallets[accountID] = &domain.Wallet{
			AccountID: accountID,
			Balance:   amount,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return
	}
	w.Balance += amount
	w.UpdatedAt = now
}
