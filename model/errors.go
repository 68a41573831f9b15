package model

import "errors"

// Domain error kinds. Handlers map these onto HTTP responses with
// errors.Is; nothing in the domain layer retries or swallows them.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientPayment = errors.New("paid amount is less than the amount owed")
	ErrSeatUnavailable     = errors.New("seat is not available")
	ErrSeatNotReserved     = errors.New("seat is not reserved")
	ErrSeatNotHeld         = errors.New("seat is not held by this session")
	ErrInsufficientPoints  = errors.New("loyalty balance is below the requested redemption")
	ErrDoubleCheckIn       = errors.New("ticket already checked in")
	ErrTicketNotActive     = errors.New("ticket is not in an active state")
)
