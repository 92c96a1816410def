package domain

import "time"

type ReservationStatus string

const (
	ReservationStaked  ReservationStatus = "staked"
	ReservationSettled ReservationStatus = "settled"
)

// Reservation tracks one participant's stake for one event. A participant
// with no row is in the implicit "none" state; the status only ever moves
// forward (none -> staked -> settled) and settled is terminal.
type Reservation struct {
	EventID     int64             `json:"event_id"`
	Participant string            `json:"participant"`
	Status      ReservationStatus `json:"status"`
	Amount      int64             `json:"amount"`
	ReservedAt  time.Time         `json:"reserved_at"`
	SettledAt   *time.Time        `json:"settled_at,omitempty"`
}
