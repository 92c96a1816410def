package dto

import (
	"time"

	"github.com/philbirt/event-staking/internal/domain"
)

type EventResponse struct {
	ID            int64  `json:"id"`
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	Price         int64  `json:"price"`
	StartsAt      string `json:"starts_at"`
	EndsAt        string `json:"ends_at"`
	EscrowBalance int64  `json:"escrow_balance"`
	CreatedAt     string `json:"created_at"`
}

// MetadataResponse is the permissive lookup payload: unknown ids produce
// empty fields, never a 404.
type MetadataResponse struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

type EventDetailsResponse struct {
	Event        EventResponse         `json:"event"`
	StakedCount  int                   `json:"staked_count"`
	SlotsLeft    int                   `json:"slots_left"`
	Reservations []ReservationResponse `json:"reservations"`
}

type ReservationResponse struct {
	EventID     int64  `json:"event_id"`
	Participant string `json:"participant"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	ReservedAt  string `json:"reserved_at"`
	SettledAt   string `json:"settled_at,omitempty"`
}

type SweepResponse struct {
	EventID int64 `json:"event_id"`
	Amount  int64 `json:"amount"`
}

type WalletResponse struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Owner:         e.Owner,
		Name:          e.Name,
		Capacity:      e.Capacity,
		Price:         e.Price,
		StartsAt:      e.StartsAt.Format(time.RFC3339),
		EndsAt:        e.EndsAt().Format(time.RFC3339),
		EscrowBalance: e.EscrowBalance,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	reservations := make([]ReservationResponse, 0, len(d.Reservations))
	for _, r := range d.Reservations {
		reservations = append(reservations, ToReservationResponse(&r))
	}

	return EventDetailsResponse{
		Event:        ToEventResponse(&d.Event),
		StakedCount:  d.StakedCount,
		SlotsLeft:    d.SlotsLeft,
		Reservations: reservations,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		EventID:     r.EventID,
		Participant: r.Participant,
		Status:      string(r.Status),
		Amount:      r.Amount,
		ReservedAt:  r.ReservedAt.Format(time.RFC3339),
	}
	if r.SettledAt != nil {
		resp.SettledAt = r.SettledAt.Format(time.RFC3339)
	}

	return resp
}

func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		AccountID: w.AccountID,
		Balance:   w.Balance,
	}
}
