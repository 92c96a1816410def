package domain

import "time"

// The settlement rules below are the single source of truth for the escrow
// state machine. Storage backends load the relevant state, run the matching
// rule, and apply effects only when it returns nil; a non-nil result aborts
// the operation with no state change. Each rule checks its preconditions in
// the documented order and reports the first failure.

// ValidateNewEvent gates event creation: capacity, price, start time and
// duration must all be set, checked in that order.
func ValidateNewEvent(in CreateEventInput) error {
	if in.Capacity < 1 {
		return ErrMissingCapacity
	}
	if in.Price < 1 {
		return ErrMissingPrice
	}
	if in.StartsAt.IsZero() {
		return ErrMissingStartTime
	}
	if in.Duration <= 0 {
		return ErrMissingDuration
	}
	return nil
}

// ValidateReserve gates staking: event exists, amount covers the price, the
// participant holds no reservation yet, and a slot is free. r is the
// participant's current reservation, nil when none exists; staked is the
// event's current count of staked reservations.
func ValidateReserve(e *Event, r *Reservation, staked int, amount int64) error {
	if e == nil {
		return ErrEventNotFound
	}
	if amount < e.Price {
		return ErrPriceNotMet
	}
	if r != nil {
		if r.Status == ReservationSettled {
			return ErrAlreadyCheckedIn
		}
		return ErrAlreadyReserved
	}
	if staked >= e.Capacity {
		return ErrOverbooked
	}
	return nil
}

// ValidateCheckIn gates the refund: event exists, the participant holds a
// staked (not yet settled) reservation, and at falls inside the attendance
// window. A participant can neither check in before the event starts nor
// after it has ended.
func ValidateCheckIn(e *Event, r *Reservation, at time.Time) error {
	if e == nil {
		return ErrEventNotFound
	}
	if r != nil && r.Status == ReservationSettled {
		return ErrAlreadyCheckedIn
	}
	if r == nil {
		return ErrReservationNotFound
	}
	if !e.InProgressAt(at) {
		return ErrEventNotInProgress
	}
	return nil
}

// ValidateSweep gates the organizer payout: event exists, the caller created
// it, the window is over at the given instant, and escrow still holds funds.
func ValidateSweep(e *Event, caller string, at time.Time) error {
	if e == nil {
		return ErrEventNotFound
	}
	if caller != e.Owner {
		return ErrNotCreator
	}
	if !e.EndedAt(at) {
		return ErrEventNotEnded
	}
	if e.EscrowBalance <= 0 {
		return ErrNothingToWithdraw
	}
	return nil
}
