package domain

import "time"

type Event struct {
	ID            int64         `json:"id"`
	Owner         string        `json:"owner"`
	Name          string        `json:"name"`
	Capacity      int           `json:"capacity"`
	Price         int64         `json:"price"`
	StartsAt      time.Time     `json:"starts_at"`
	Duration      time.Duration `json:"duration"`
	EscrowBalance int64         `json:"escrow_balance"`
	CreatedAt     time.Time     `json:"created_at"`
}

// EndsAt is the first instant after the attendance window.
func (e *Event) EndsAt() time.Time {
	return e.StartsAt.Add(e.Duration)
}

// InProgressAt reports whether t falls inside [StartsAt, StartsAt+Duration).
func (e *Event) InProgressAt(t time.Time) bool {
	return !t.Before(e.StartsAt) && t.Before(e.EndsAt())
}

// EndedAt reports whether the window is over at t. The boundary instant
// StartsAt+Duration counts as ended, not as in progress.
func (e *Event) EndedAt(t time.Time) bool {
	return !t.Before(e.EndsAt())
}

// Metadata is the permissive read surface for an event: lookups for unknown
// ids succeed and return the zero value. Owner doubles as the existence
// sentinel, it is never empty for a created event.
type Metadata struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

type EventDetails struct {
	Event        Event         `json:"event"`
	StakedCount  int           `json:"staked_count"`
	SlotsLeft    int           `json:"slots_left"`
	Reservations []Reservation `json:"reservations"`
}

type CreateEventInput struct {
	Owner    string
	Name     string
	Capacity int
	Price    int64
	StartsAt time.Time
	Duration time.Duration
}

// LedgerStats aggregates the whole ledger for monitoring gauges.
type LedgerStats struct {
	Events              int
	StakedReservations  int
	SettledReservations int
	EscrowTotal         int64
}
