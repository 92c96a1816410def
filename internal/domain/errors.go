package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// Event creation failures. Fields are checked one at a time in declaration
// order and the first failing field is reported alone.
var (
	ErrMissingCapacity  = errors.New("capacity must be at least 1")
	ErrMissingPrice     = errors.New("price must be at least 1")
	ErrMissingStartTime = errors.New("start time is required")
	ErrMissingDuration  = errors.New("duration must be positive")
)

var (
	ErrPriceNotMet      = errors.New("amount sent is below the event price")
	ErrAlreadyReserved  = errors.New("participant already holds a reservation for this event")
	ErrAlreadyCheckedIn = errors.New("participant already checked in")
	ErrOverbooked       = errors.New("event is booked to capacity")
)

var (
	ErrEventNotInProgress = errors.New("event is not in progress")
	ErrEventNotEnded      = errors.New("event has not ended yet")
)

var (
	ErrNotCreator        = errors.New("caller did not create this event")
	ErrNothingToWithdraw = errors.New("no escrowed funds to withdraw")
)

// ErrInsufficientFunds is the custodian's failure mode: the wallet cannot
// cover the requested debit. Any operation that hits it aborts whole.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")

var ErrValidation = errors.New("validation error")
