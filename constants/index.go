package constants

const (
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input from locals"
	ERROR_INVALID_BODY         = "Cannot parse request body"

	ROOM_NOT_FOUND      = "Room not found"
	SCREENING_NOT_FOUND = "Screening not found"
	MOVIE_NOT_FOUND     = "Movie not found"
	TICKET_NOT_FOUND    = "Ticket not found"
	CUSTOMER_NOT_FOUND  = "Customer not found"

	EMAIL_ALREADY_EXISTS = "Email is already registered"

	SEAT_NOT_AVAILABLE   = "Seat is not available for this screening"
	PAYMENT_INSUFFICIENT = "Paid amount does not cover the price"
	ALREADY_CHECKED_IN   = "Ticket has already been checked in"

	STAFF_KEY_MISSING = "Missing or invalid staff key"
)

// Payment methods accepted at the counter and online.
const (
	PAYMENT_CASH = "CASH"
	PAYMENT_CARD = "CARD"
)
